// pkg/schema/errors.go
package schema

import "errors"

// Configuration errors. All of them are fatal at generation time: the whole
// artifact set for the model is aborted, never emitted partially. They signal
// programmer mistakes in a model declaration, not runtime conditions.
var (
	// ErrUnsupportedFieldType reports a declared type that is not one of the
	// semantic types after unwrapping the optional wrapper.
	ErrUnsupportedFieldType = errors.New("unsupported field type")

	// ErrUnsupportedStructShape reports a declaration that is not a simple
	// named-field struct.
	ErrUnsupportedStructShape = errors.New("unsupported struct shape")

	// ErrInvalidForeignKeySpec reports a foreign_key value that does not split
	// into exactly two non-empty dot-separated parts.
	ErrInvalidForeignKeySpec = errors.New("invalid foreign key spec")

	// ErrInvalidDefaultForType reports a "now" default on a field that is
	// neither Date nor DateTime.
	ErrInvalidDefaultForType = errors.New("invalid default for field type")
)
