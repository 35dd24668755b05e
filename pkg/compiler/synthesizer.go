// pkg/compiler/synthesizer.go
package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/russenger/modelsql/pkg/schema"
)

// columnClause renders one column definition:
//
//	<name> <type> [primary key [autoincrement]] [unique] [default <expr>]
//	[not null] [references <table>(<column>)]
func columnClause(field *schema.FieldDescriptor) (string, error) {
	base, err := columnType(field)
	if err != nil {
		return "", err
	}
	parts := []string{field.Name, base}

	if field.PrimaryKey {
		if field.Auto {
			parts = append(parts, "primary key autoincrement")
		} else {
			parts = append(parts, "primary key")
		}
	}
	if field.Unique {
		parts = append(parts, "unique")
	}
	if field.HasDefault() {
		expr, err := defaultExpr(field)
		if err != nil {
			return "", err
		}
		parts = append(parts, "default "+expr)
	}
	// A generated key takes its value from the engine, so its clause omits
	// "not null"; every other non-nullable column carries it.
	if !field.Nullable && !(field.PrimaryKey && generated(field)) {
		parts = append(parts, "not null")
	}
	if fk := field.ForeignKey; fk != nil {
		parts = append(parts, fmt.Sprintf("references %s(%s)", fk.Table, fk.Column))
	}

	return strings.Join(parts, " "), nil
}

// defaultExpr renders the default-value expression. "now" resolves to the
// backend's current date/timestamp function and is rejected on any field
// that is not Date or DateTime.
func defaultExpr(field *schema.FieldDescriptor) (string, error) {
	switch field.Default.Kind {
	case schema.DefaultNow:
		switch field.Type {
		case schema.TypeDate:
			return "current_date", nil
		case schema.TypeDateTime:
			return "current_timestamp", nil
		default:
			return "", fmt.Errorf("%w: \"now\" works only with Date or DateTime, not %v",
				schema.ErrInvalidDefaultForType, field.Type)
		}
	case schema.DefaultBool:
		if field.Default.Bool {
			return "1", nil
		}
		return "0", nil
	case schema.DefaultInt:
		return strconv.FormatInt(field.Default.Int, 10), nil
	default:
		return "'" + field.Default.Str + "'", nil
	}
}
