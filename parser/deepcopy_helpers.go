package parser

import (
	"maps"
	"slices"
)

// Deep-copy helpers for the polymorphic fields the generated DeepCopy
// methods cannot handle on their own: the same any-typed fields covered by
// equals.go.

// deepCopySchemaOrSlice handles Schema.Items: a *Schema, a []*Schema for
// tuple validation, or a raw YAML form that was never converted.
func deepCopySchemaOrSlice(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case *Schema:
		if t == nil {
			return nil
		}
		return t.DeepCopy()
	case []*Schema:
		cp := make([]*Schema, len(t))
		for i, s := range t {
			if s != nil {
				cp[i] = s.DeepCopy()
			}
		}
		return cp
	case map[string]any, []any:
		return deepCopyJSONValue(t)
	default:
		return v
	}
}

// deepCopySchemaOrBool handles Schema.AdditionalProperties: a *Schema, a
// bool, or a raw map when parsed from YAML.
func deepCopySchemaOrBool(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return t
	case *Schema:
		if t == nil {
			return nil
		}
		return t.DeepCopy()
	case map[string]any:
		return deepCopyJSONValue(t)
	default:
		return v
	}
}

// deepCopyJSONValue recursively copies any JSON-compatible value: defaults,
// examples, and extension payloads. Values of unknown types are returned
// as-is, which is a shallow copy.
func deepCopyJSONValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string, bool, float64, int, int64, float32, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return t
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyJSONValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyJSONValue(item)
		}
		return cp
	default:
		return v
	}
}

// deepCopyEnumSlice copies enum values, which are usually primitives but may
// carry nested structures.
func deepCopyEnumSlice(v []any) []any {
	if v == nil {
		return nil
	}
	cp := make([]any, len(v))
	for i, item := range v {
		cp[i] = deepCopyJSONValue(item)
	}
	return cp
}

// deepCopyExtensions copies an x-* extension map.
func deepCopyExtensions(v map[string]any) map[string]any {
	if v == nil {
		return nil
	}
	cp := make(map[string]any, len(v))
	for k, item := range v {
		cp[k] = deepCopyJSONValue(item)
	}
	return cp
}

func deepCopyPaths(v Paths) Paths {
	if v == nil {
		return nil
	}
	cp := make(Paths, len(v))
	for k, item := range v {
		if item != nil {
			cp[k] = item.DeepCopy()
		}
	}
	return cp
}

func deepCopySecurityRequirements(v []SecurityRequirement) []SecurityRequirement {
	if v == nil {
		return nil
	}
	cp := make([]SecurityRequirement, len(v))
	for i, req := range v {
		if req == nil {
			continue
		}
		cp[i] = make(SecurityRequirement, len(req))
		for k, scopes := range req {
			if scopes != nil {
				cp[i][k] = slices.Clone(scopes)
			}
		}
	}
	return cp
}

func deepCopyStringMap(v map[string]string) map[string]string {
	if v == nil {
		return nil
	}
	return maps.Clone(v)
}
