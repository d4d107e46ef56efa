package format

import (
	"errors"
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

// ErrMalformedDocument is returned when a document is not a mapping at its
// top level, or when one of its fields doesn't have the expected shape.
var ErrMalformedDocument = errors.New("malformed document")

// FieldError describes a field of a document that doesn't have the expected
// shape.
type FieldError struct {
	// File is the file in which the error was found, if any.
	File string
	// Path refers to the location of the error in the document.
	// It is expressed as a YAMLPath, as described in https://pkg.go.dev/github.com/goccy/go-yaml#PathString
	Path    string
	Message string
	// AnnotatedSource is an extract of the source document highlighting the
	// error, when available.
	AnnotatedSource string
}

func (e FieldError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Path, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e FieldError) Unwrap() error {
	return ErrMalformedDocument
}

// ParseDocument decodes a YAML (or JSON) document whose top-level value must be
// a mapping. An empty document yields an empty mapping.
// Integral numbers are normalized to int.
// A key declared more than once takes its last value.
func ParseDocument(contents []byte) (map[string]any, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(contents, &raw, yaml.AllowDuplicateMapKey()); err != nil {
		return nil, err
	}

	if raw == nil {
		return map[string]any{}, nil
	}

	document, ok := Normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a mapping at the top level, got %s", ErrMalformedDocument, TypeName(raw))
	}

	return document, nil
}

// MappingField returns the field with the given name as a mapping.
// A missing or null field yields a nil mapping and no error.
func MappingField(document map[string]any, name string) (map[string]any, error) {
	value, found := document[name]
	if !found || value == nil {
		return nil, nil
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, FieldError{
			Path:    "$." + name,
			Message: fmt.Sprintf("'%s' must be a mapping, got %s", name, TypeName(value)),
		}
	}

	return mapping, nil
}

// AnnotateSource fills the File and AnnotatedSource of a FieldError using the
// given document source. Other errors are wrapped with the file name.
func AnnotateSource(filename string, contents []byte, err error) error {
	if err == nil {
		return nil
	}

	fieldErr := FieldError{}
	if !errors.As(err, &fieldErr) {
		return fmt.Errorf("could not parse '%s': %w", filename, err)
	}

	fieldErr.File = filename

	path, pathErr := yaml.PathString(fieldErr.Path)
	if pathErr != nil {
		return fieldErr
	}

	annotated, annotateErr := path.AnnotateSource(contents, !color.NoColor)
	if annotateErr != nil {
		return fieldErr
	}

	fieldErr.AnnotatedSource = string(annotated)

	return fieldErr
}

// Normalize converts decoded values to a canonical representation: mappings
// become map[string]any, lists []any and integral numbers int.
func Normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(typed))
		for key, item := range typed {
			normalized[key] = Normalize(item)
		}

		return normalized
	case map[any]any:
		normalized := make(map[string]any, len(typed))
		for key, item := range typed {
			normalized[fmt.Sprint(key)] = Normalize(item)
		}

		return normalized
	case []any:
		normalized := make([]any, len(typed))
		for i, item := range typed {
			normalized[i] = Normalize(item)
		}

		return normalized
	case int64:
		return int(typed)
	case uint64:
		if typed <= math.MaxInt64 {
			return int(typed)
		}

		return typed
	case float64:
		if typed == math.Trunc(typed) && math.Abs(typed) < math.MaxInt32 {
			return int(typed)
		}

		return typed
	default:
		return value
	}
}

// TypeName returns a human-readable name for the type of a decoded value.
func TypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any, map[any]any:
		return "a mapping"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int64, uint64, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
