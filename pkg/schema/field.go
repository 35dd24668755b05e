// pkg/schema/field.go
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultKind discriminates the literal kinds a default value can carry.
type DefaultKind int

const (
	DefaultString DefaultKind = iota
	DefaultBool
	DefaultInt
	// DefaultNow is the literal keyword "now"; it renders as current_date or
	// current_timestamp and is only valid on Date/DateTime fields.
	DefaultNow
)

// Default is a declared default value for a column.
type Default struct {
	Kind DefaultKind
	Str  string
	Bool bool
	Int  int64
}

// ForeignKey references a column in another table.
type ForeignKey struct {
	Table  string
	Column string
}

// FieldDescriptor is the normalized in-memory representation of one declared
// field. Descriptors are built once per generation run and never mutated.
type FieldDescriptor struct {
	Name       string
	Type       Type
	Nullable   bool
	PrimaryKey bool
	Auto       bool
	Unique     bool
	Size       int // String only; ignored elsewhere
	Default    *Default
	ForeignKey *ForeignKey
}

// HasDefault reports whether the field declares a default value.
func (f *FieldDescriptor) HasDefault() bool { return f.Default != nil }

// ParseForeignKey splits a "table.column" reference. Both parts must be
// non-empty.
func ParseForeignKey(spec string) (*ForeignKey, error) {
	parts := strings.Split(spec, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: %q (want \"table.column\")", ErrInvalidForeignKeySpec, spec)
	}
	return &ForeignKey{Table: parts[0], Column: parts[1]}, nil
}

// ParseDefault classifies a raw default literal coming from a struct tag.
// "now" is the temporal keyword, "true"/"false" are booleans, digit strings
// are integers, everything else is a string literal. Surrounding single
// quotes are stripped so `default:'pending'` and `default:pending` agree.
func ParseDefault(raw string) *Default {
	switch raw {
	case "now":
		return &Default{Kind: DefaultNow}
	case "true":
		return &Default{Kind: DefaultBool, Bool: true}
	case "false":
		return &Default{Kind: DefaultBool, Bool: false}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &Default{Kind: DefaultInt, Int: n}
	}
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'")
	return &Default{Kind: DefaultString, Str: raw}
}
