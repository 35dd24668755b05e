// pkg/compiler/resolver.go
package compiler

import "github.com/russenger/modelsql/pkg/schema"

// generated reports whether the database supplies the field's value on
// insert. True for explicit auto fields and for Serial columns; such a
// primary key never appears in the create-argument plan.
func generated(field *schema.FieldDescriptor) bool {
	return field.Auto || field.Type == schema.TypeSerial
}
