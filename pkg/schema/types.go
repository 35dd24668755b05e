// pkg/schema/types.go
package schema

import (
	"fmt"
	"reflect"
)

// Type is the semantic column type of a declared field. It is deliberately
// small: portability over backend-native richness. Date, DateTime and Boolean
// are stored as text/integer encodings (see compiler type mapping).
type Type int

const (
	TypeInvalid Type = iota
	TypeSerial
	TypeInteger
	TypeString
	TypeFloat
	TypeText
	TypeDate
	TypeBoolean
	TypeDateTime
)

var typeNames = map[Type]string{
	TypeSerial:   "Serial",
	TypeInteger:  "Integer",
	TypeString:   "String",
	TypeFloat:    "Float",
	TypeText:     "Text",
	TypeDate:     "Date",
	TypeBoolean:  "Boolean",
	TypeDateTime: "DateTime",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a semantic type by name. The name is case-sensitive.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("%w: %q (expected one of Serial, Integer, String, Float, Text, Date, Boolean, DateTime)",
		ErrUnsupportedFieldType, name)
}

// Marker types for struct-based model declarations. A model struct uses these
// as field types; a pointer marks the field nullable.
//
//	type User struct {
//		ID        schema.Serial  `model:"primary_key;auto"`
//		Name      schema.String  `model:"size:50;unique"`
//		Email     *schema.String
//		CreatedAt schema.DateTime `model:"default:now"`
//	}
type (
	Serial   int64
	Integer  int64
	String   string
	Float    float64
	Text     string
	Date     string
	Boolean  bool
	DateTime string
)

var goTypes = map[reflect.Type]Type{
	reflect.TypeOf(Serial(0)):      TypeSerial,
	reflect.TypeOf(Integer(0)):     TypeInteger,
	reflect.TypeOf(String("")):     TypeString,
	reflect.TypeOf(Float(0)):       TypeFloat,
	reflect.TypeOf(Text("")):       TypeText,
	reflect.TypeOf(Date("")):       TypeDate,
	reflect.TypeOf(Boolean(false)): TypeBoolean,
	reflect.TypeOf(DateTime("")):   TypeDateTime,
}
