// pkg/schema/model.go
package schema

import "github.com/iancoleman/strcase"

// Definition is the parsed shape of one model: a name and an ordered field
// list. Field order is semantically significant — the compiler's argument
// planning depends on it — and is preserved end-to-end.
type Definition struct {
	Name   string
	Fields []*FieldDescriptor
}

// Field retrieves a descriptor by name.
func (d *Definition) Field(name string) (*FieldDescriptor, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// NamingStrategy converts Go struct field names to column names during
// extraction. Table names are always the struct name verbatim: the emitted
// artifacts quote no identifiers and downstream statements must match the DDL
// byte for byte.
type NamingStrategy interface {
	ColumnName(fieldName string) string
}

// SnakeNamingStrategy is the default: Go field names become snake_case
// columns ("CreatedAt" -> "created_at").
type SnakeNamingStrategy struct{}

func (SnakeNamingStrategy) ColumnName(fieldName string) string {
	return strcase.ToSnake(fieldName)
}

// VerbatimNamingStrategy keeps field names untouched.
type VerbatimNamingStrategy struct{}

func (VerbatimNamingStrategy) ColumnName(fieldName string) string { return fieldName }
