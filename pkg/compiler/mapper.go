// pkg/compiler/mapper.go
package compiler

import (
	"fmt"

	"github.com/russenger/modelsql/pkg/schema"
)

const defaultStringSize = 255

// columnType maps a semantic type (plus size, for strings) to column-type
// syntax. Dates, datetimes and booleans are stored as portable text/integer
// encodings instead of backend-native temporal types.
func columnType(field *schema.FieldDescriptor) (string, error) {
	switch field.Type {
	case schema.TypeSerial:
		return "serial", nil
	case schema.TypeInteger:
		return "integer", nil
	case schema.TypeString:
		size := field.Size
		if size <= 0 {
			size = defaultStringSize
		}
		return fmt.Sprintf("varchar(%d)", size), nil
	case schema.TypeFloat:
		return "float", nil
	case schema.TypeText:
		return "text", nil
	case schema.TypeDate:
		return "varchar(10)", nil // ISO date stored as text
	case schema.TypeBoolean:
		return "integer", nil // 0/1 encoding
	case schema.TypeDateTime:
		return "varchar(40)", nil
	default:
		return "", fmt.Errorf("%w: %v", schema.ErrUnsupportedFieldType, field.Type)
	}
}
