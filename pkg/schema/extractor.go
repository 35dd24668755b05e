// pkg/schema/extractor.go
package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Extractor normalizes struct declarations into Definitions. Parsed types are
// cached: extraction of the same struct type always yields the same instance.
type Extractor struct {
	cache          sync.Map // reflect.Type -> *Definition
	namingStrategy NamingStrategy
}

// NewExtractor creates an extractor with the given naming strategy. A nil
// strategy selects SnakeNamingStrategy.
func NewExtractor(namingStrategy NamingStrategy) *Extractor {
	if namingStrategy == nil {
		namingStrategy = SnakeNamingStrategy{}
	}
	return &Extractor{namingStrategy: namingStrategy}
}

// Extract analyzes a model struct (value or pointer) and returns its
// Definition. Only structs with named fields of the schema marker types are
// supported; a pointer marker type makes the column nullable. Modifiers come
// from the `model` tag.
func (e *Extractor) Extract(target any) (*Definition, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: cannot extract nil value", ErrUnsupportedStructShape)
	}

	structType := reflect.TypeOf(target)
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: want a struct or pointer to struct, got %T", ErrUnsupportedStructShape, target)
	}

	if cached, ok := e.cache.Load(structType); ok {
		return cached.(*Definition), nil
	}

	def := &Definition{
		Name:   structType.Name(),
		Fields: make([]*FieldDescriptor, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if structField.Anonymous {
			return nil, fmt.Errorf("%w: %s embeds %s, only plain named fields are supported",
				ErrUnsupportedStructShape, def.Name, structField.Name)
		}
		if !structField.IsExported() {
			continue
		}
		if structField.Tag.Get("model") == "-" {
			continue
		}

		field, err := e.extractField(structField)
		if err != nil {
			return nil, fmt.Errorf("model %s, field %s: %w", def.Name, structField.Name, err)
		}
		def.Fields = append(def.Fields, field)
	}

	e.cache.Store(structType, def)
	return def, nil
}

// extractField builds one descriptor: unwrap the optional pointer exactly one
// level, resolve the marker type, then apply tag modifiers.
func (e *Extractor) extractField(structField reflect.StructField) (*FieldDescriptor, error) {
	fieldType := structField.Type
	nullable := false
	if fieldType.Kind() == reflect.Pointer {
		fieldType = fieldType.Elem()
		nullable = true
	}
	semantic, ok := goTypes[fieldType]
	if !ok {
		return nil, fmt.Errorf("%w: %s (expected a schema marker type, optionally behind one pointer)",
			ErrUnsupportedFieldType, structField.Type)
	}

	field := &FieldDescriptor{
		Name:     e.namingStrategy.ColumnName(structField.Name),
		Type:     semantic,
		Nullable: nullable,
	}
	if err := e.parseTag(field, structField.Tag.Get("model")); err != nil {
		return nil, err
	}
	return field, nil
}

// parseTag processes the `model` tag: semicolon-separated parts, each a bare
// flag or a key:value pair.
func (e *Extractor) parseTag(field *FieldDescriptor, tag string) error {
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, ":", 2)
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		var value string
		if len(kv) == 2 {
			value = strings.TrimSpace(kv[1])
		}

		switch key {
		case "primary_key", "primarykey", "pk":
			field.PrimaryKey = value != "false"
		case "auto":
			field.Auto = value != "false"
		case "unique":
			field.Unique = value != "false"
		case "size":
			size, err := strconv.Atoi(value)
			if err != nil || size <= 0 {
				return fmt.Errorf("invalid size value %q", value)
			}
			field.Size = size
		case "default":
			field.Default = ParseDefault(value)
		case "foreign_key", "foreignkey":
			fk, err := ParseForeignKey(value)
			if err != nil {
				return err
			}
			field.ForeignKey = fk
		case "column", "name":
			if value == "" {
				return fmt.Errorf("tag %q requires a value", key)
			}
			field.Name = value
		default:
			return fmt.Errorf("unknown tag key %q", key)
		}
	}
	return nil
}

// Global extractor with default settings.
var globalExtractor = NewExtractor(nil)

// Extract uses the global extractor instance.
func Extract(target any) (*Definition, error) {
	return globalExtractor.Extract(target)
}
