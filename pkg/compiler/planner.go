// pkg/compiler/planner.go
package compiler

import "github.com/russenger/modelsql/pkg/schema"

// planField appends one field to the create/update argument plans.
//
// A primary-key field joins createArgs only when the caller supplies its
// value (neither auto nor Serial) and never joins updateArgs. Every other
// field joins both. A declared default then suppresses the entry just added
// to createArgs — literally the last entry, which is why fields must be
// planned one at a time in declaration order.
func planField(field *schema.FieldDescriptor, createArgs, updateArgs *[]string) {
	if field.PrimaryKey {
		if !generated(field) {
			*createArgs = append(*createArgs, field.Name)
		}
	} else {
		*createArgs = append(*createArgs, field.Name)
		*updateArgs = append(*updateArgs, field.Name)
	}

	if field.HasDefault() && len(*createArgs) > 0 {
		*createArgs = (*createArgs)[:len(*createArgs)-1]
	}
}
