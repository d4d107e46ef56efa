// Package merge combines generic documents, as decoded from YAML or JSON.
//
// Mappings are represented as map[string]any and lists as []any. Any other
// value is treated as a scalar.
package merge

import (
	"maps"
)

// Deep returns a new mapping holding the keys of both base and override.
//
// When a key exists in both and both values are mappings, they are merged
// recursively. Otherwise the value from override wins, lists included: lists
// are replaced, never merged element by element.
//
// Neither base nor override are modified, and the result does not share any
// mapping or list with them.
func Deep(base map[string]any, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))

	for key, value := range base {
		merged[key] = Clone(value)
	}

	for key, value := range override {
		baseMap, baseIsMap := merged[key].(map[string]any)
		overrideMap, overrideIsMap := value.(map[string]any)

		if baseIsMap && overrideIsMap {
			merged[key] = Deep(baseMap, overrideMap)
			continue
		}

		merged[key] = Clone(value)
	}

	return merged
}

// Shallow copies the keys of every mapping into a new one, in order.
// Later mappings overwrite the keys of earlier ones.
func Shallow(mappings ...map[string]any) map[string]any {
	combined := make(map[string]any)

	for _, mapping := range mappings {
		maps.Copy(combined, mapping)
	}

	return combined
}

// Clone returns a deep copy of the given value. Mappings and lists are copied
// recursively, scalars are returned as-is.
func Clone(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		if typed == nil {
			return typed
		}

		cloned := make(map[string]any, len(typed))
		for key, item := range typed {
			cloned[key] = Clone(item)
		}

		return cloned
	case []any:
		if typed == nil {
			return typed
		}

		cloned := make([]any, len(typed))
		for i, item := range typed {
			cloned[i] = Clone(item)
		}

		return cloned
	default:
		return value
	}
}

// CloneMap is a typed shorthand for Clone.
func CloneMap(value map[string]any) map[string]any {
	if value == nil {
		return nil
	}

	//nolint:forcetypeassert
	return Clone(value).(map[string]any)
}
