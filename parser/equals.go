package parser

// Equality helpers for the any-typed fields in the document model. Several
// Swagger 2.0 fields admit more than one concrete type (Schema.Items,
// additionalProperties, default/example values), so the generated Equals
// methods delegate those fields here rather than reaching for
// reflect.DeepEqual wholesale.

import (
	"maps"
	"reflect"
	"slices"
)

// equalStringSlice is an order-sensitive comparison. Nil and empty slices
// compare equal.
func equalStringSlice(a, b []string) bool {
	return slices.Equal(a, b)
}

// equalAnySlice compares element-wise with equalJSONValue.
func equalAnySlice(a, b []any) bool {
	return slices.EqualFunc(a, b, equalJSONValue)
}

// equalMapStringAny compares values with equalJSONValue. Nil and empty maps
// compare equal.
func equalMapStringAny(a, b map[string]any) bool {
	return maps.EqualFunc(a, b, equalJSONValue)
}

// equalSchemaOrSlice handles Schema.Items, which may be a *Schema, a
// []*Schema for tuple validation, or a raw YAML form that was never
// converted (map[string]any / []any).
func equalSchemaOrSlice(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch ta := a.(type) {
	case *Schema:
		tb, ok := b.(*Schema)
		return ok && ta.Equals(tb)
	case []*Schema:
		tb, ok := b.([]*Schema)
		return ok && equalSchemaSlice(ta, tb)
	case map[string]any:
		tb, ok := b.(map[string]any)
		return ok && equalMapStringAny(ta, tb)
	case []any:
		tb, ok := b.([]any)
		return ok && equalAnySlice(ta, tb)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// equalSchemaOrBool handles Schema.AdditionalProperties, which may be a
// *Schema or a bool.
func equalSchemaOrBool(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch ta := a.(type) {
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case *Schema:
		tb, ok := b.(*Schema)
		return ok && ta.Equals(tb)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// equalJSONValue compares arbitrary JSON-compatible values recursively. It
// covers default and example values plus anything carried in x-* extensions.
// Numeric comparison is type-strict: an int 1 and a float64 1 are not equal,
// matching what a decode of the same source into the same shape produces.
func equalJSONValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch ta := a.(type) {
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case float64:
		tb, ok := b.(float64)
		return ok && ta == tb
	case int:
		tb, ok := b.(int)
		return ok && ta == tb
	case int64:
		tb, ok := b.(int64)
		return ok && ta == tb
	case float32:
		tb, ok := b.(float32)
		return ok && ta == tb
	case int32:
		tb, ok := b.(int32)
		return ok && ta == tb
	case uint:
		tb, ok := b.(uint)
		return ok && ta == tb
	case uint64:
		tb, ok := b.(uint64)
		return ok && ta == tb
	case []any:
		tb, ok := b.([]any)
		return ok && slices.EqualFunc(ta, tb, equalJSONValue)
	case map[string]any:
		tb, ok := b.(map[string]any)
		return ok && maps.EqualFunc(ta, tb, equalJSONValue)
	default:
		// Custom types can show up inside extensions.
		return reflect.DeepEqual(a, b)
	}
}

// Equals reports whether two parse results represent the same document.
// Runtime metadata is deliberately left out of the comparison: SourcePath,
// SourceFormat, LoadTime, SourceSize, parse diagnostics, the raw Data map,
// the SourceMap, and Stats all describe how a document was loaded rather
// than what it says.
func (pr *ParseResult) Equals(other *ParseResult) bool {
	if pr == nil || other == nil {
		return pr == nil && other == nil
	}
	return pr.Document.Equals(other.Document)
}
