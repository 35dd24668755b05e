// pkg/compiler/templater.go
package compiler

import "fmt"

// Placeholder is the canonical, backend-neutral bind marker (1-based). The
// executor substitutes each marker with the backend's native syntax before
// dispatch; the compiler itself never learns the backend identity.
func Placeholder(i int) string {
	return fmt.Sprintf("?%d", i)
}

// deleteStatement templates the delete operation, binding exactly one
// parameter: the instance's primary-key value. With an unresolved primary key
// the text is degraded and the executor refuses to run it.
func deleteStatement(model, primaryKey string) string {
	return fmt.Sprintf("delete from %s where %s=%s;", model, primaryKey, Placeholder(1))
}
