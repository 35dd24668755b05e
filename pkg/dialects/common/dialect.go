// pkg/dialects/common/dialect.go
package common

// Dialect captures the per-backend syntax the executor needs: identifier
// quoting and bind-parameter markers. The compiler stays backend-agnostic;
// only the executor consults a Dialect.
type Dialect interface {
	// Name is the unique dialect name ("sqlite", "mysql", "postgres",
	// "sqlserver"). It doubles as the registry key.
	Name() string

	// DriverName is the database/sql driver to open connections with.
	DriverName() string

	// Quote wraps an identifier with the backend's quoting characters.
	Quote(identifier string) string

	// BindVar is the native placeholder for the i-th bound parameter,
	// 1-based. The executor rewrites the compiler's canonical "?N" markers
	// with it.
	BindVar(i int) string
}
