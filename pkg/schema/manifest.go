// pkg/schema/manifest.go
package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the declarative form of a model set: a YAML document
// enumerating models, fields and modifiers. It is the explicit-registry
// counterpart to struct extraction and feeds the migration runner in order.
//
//	models:
//	  - name: User
//	    fields:
//	      - name: id
//	        type: Serial
//	        primary_key: true
//	        auto: true
//	      - name: email
//	        type: String
//	        nullable: true
type Manifest struct {
	Models []*Definition
}

type manifestDoc struct {
	Models []modelSpec `yaml:"models"`
}

type modelSpec struct {
	Name   string      `yaml:"name"`
	Fields []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Nullable   bool   `yaml:"nullable"`
	PrimaryKey bool   `yaml:"primary_key"`
	Auto       bool   `yaml:"auto"`
	Unique     bool   `yaml:"unique"`
	Size       int    `yaml:"size"`
	Default    any    `yaml:"default"`
	ForeignKey string `yaml:"foreign_key"`
}

// LoadManifest decodes and normalizes a YAML manifest.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var doc manifestDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding model manifest: %w", err)
	}

	manifest := &Manifest{Models: make([]*Definition, 0, len(doc.Models))}
	for _, spec := range doc.Models {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: model without a name", ErrUnsupportedStructShape)
		}
		def := &Definition{Name: spec.Name, Fields: make([]*FieldDescriptor, 0, len(spec.Fields))}
		for _, fs := range spec.Fields {
			field, err := fs.descriptor()
			if err != nil {
				return nil, fmt.Errorf("model %s, field %s: %w", spec.Name, fs.Name, err)
			}
			def.Fields = append(def.Fields, field)
		}
		manifest.Models = append(manifest.Models, def)
	}
	return manifest, nil
}

// LoadManifestFile reads a manifest from disk.
func LoadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model manifest: %w", err)
	}
	defer f.Close()
	return LoadManifest(f)
}

func (fs fieldSpec) descriptor() (*FieldDescriptor, error) {
	if fs.Name == "" {
		return nil, fmt.Errorf("%w: field without a name", ErrUnsupportedStructShape)
	}
	semantic, err := ParseType(fs.Type)
	if err != nil {
		return nil, err
	}

	field := &FieldDescriptor{
		Name:       fs.Name,
		Type:       semantic,
		Nullable:   fs.Nullable,
		PrimaryKey: fs.PrimaryKey,
		Auto:       fs.Auto,
		Unique:     fs.Unique,
		Size:       fs.Size,
	}
	if fs.Default != nil {
		d, err := defaultFromValue(fs.Default)
		if err != nil {
			return nil, err
		}
		field.Default = d
	}
	if fs.ForeignKey != "" {
		fk, err := ParseForeignKey(fs.ForeignKey)
		if err != nil {
			return nil, err
		}
		field.ForeignKey = fk
	}
	return field, nil
}

// defaultFromValue keeps the YAML scalar's own kind: booleans and integers
// stay typed literals, the string "now" is the temporal keyword, any other
// string is a string literal.
func defaultFromValue(v any) (*Default, error) {
	switch d := v.(type) {
	case bool:
		return &Default{Kind: DefaultBool, Bool: d}, nil
	case int:
		return &Default{Kind: DefaultInt, Int: int64(d)}, nil
	case int64:
		return &Default{Kind: DefaultInt, Int: d}, nil
	case string:
		if d == "now" {
			return &Default{Kind: DefaultNow}, nil
		}
		return &Default{Kind: DefaultString, Str: d}, nil
	default:
		return nil, fmt.Errorf("default must be a bool, integer or string scalar, got %T", v)
	}
}
