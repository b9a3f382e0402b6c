// Package jsonhelpers reduces boilerplate in the custom MarshalJSON and
// UnmarshalJSON implementations of the Swagger 2.0 document model. The key
// concern is extension fields (x-* properties, including x-depends-on): they
// are not part of any struct, so marshaling merges them back in and
// unmarshaling collects them from the raw object.
package jsonhelpers

import (
	"encoding/json"
	"maps"
	"reflect"
)

// MarshalWithExtras marshals base after merging the extension fields in.
// Extension keys win on collision, matching how they were split apart
// during unmarshaling.
//
// Example:
//
//	func (s *Schema) MarshalJSON() ([]byte, error) {
//	    base := map[string]any{
//	        "type": s.Type,
//	        "format": s.Format,
//	    }
//	    return jsonhelpers.MarshalWithExtras(base, s.Extra)
//	}
func MarshalWithExtras(base map[string]any, extras map[string]any) ([]byte, error) {
	maps.Copy(base, extras)
	return json.Marshal(base)
}

// SetIfNotEmpty sets key only when value is a non-empty string, so optional
// string fields are omitted from the output rather than serialized as "".
func SetIfNotEmpty(m map[string]any, key string, value string) {
	if value != "" {
		m[key] = value
	}
}

// SetIfNotNil sets key only when value is non-nil. Typed nils (a nil *float64
// stored in an any, for example) are also treated as absent; without that
// check optional pointer fields would serialize as explicit nulls.
func SetIfNotNil(m map[string]any, key string, value any) {
	if value == nil {
		return
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return
		}
	}
	m[key] = value
}

// SetIfTrue sets a boolean field only when it is true. Swagger 2.0 booleans
// like deprecated and exclusiveMaximum default to false, so false is never
// worth serializing.
func SetIfTrue(m map[string]any, key string, value bool) {
	if value {
		m[key] = value
	}
}

// SetIfSliceNotEmpty sets a slice field only when it has elements.
// Nil and empty slices are both omitted.
func SetIfSliceNotEmpty[T any](m map[string]any, key string, value []T) {
	if len(value) > 0 {
		m[key] = value
	}
}

// SetIfMapNotEmpty sets a map field only when it has entries.
// Nil and empty maps are both omitted.
func SetIfMapNotEmpty[K comparable, V any](m map[string]any, key string, value map[K]V) {
	if len(value) > 0 {
		m[key] = value
	}
}

// OAS2PrimitiveFields holds the primitive typing fields that Parameter,
// Items, and Header share in Swagger 2.0.
type OAS2PrimitiveFields struct {
	Type             string
	Format           string
	Items            any
	CollectionFormat string
	Default          any
}

// SetOAS2PrimitiveFields adds the shared primitive typing fields to a map.
// Items marshals its type separately because type is required there.
func SetOAS2PrimitiveFields(m map[string]any, f OAS2PrimitiveFields) {
	SetIfNotEmpty(m, "type", f.Type)
	SetIfNotEmpty(m, "format", f.Format)
	SetIfNotNil(m, "items", f.Items)
	SetIfNotEmpty(m, "collectionFormat", f.CollectionFormat)
	SetIfNotNil(m, "default", f.Default)
}

// SchemaConstraints holds the JSON Schema validation constraints that
// Parameter, Items, and Header marshal identically.
type SchemaConstraints struct {
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool
	MaxLength        *int
	MinLength        *int
	Pattern          string
	MaxItems         *int
	MinItems         *int
	UniqueItems      bool
	Enum             []any
	MultipleOf       *float64
}

// SetSchemaConstraints adds the validation constraint fields to a map.
func SetSchemaConstraints(m map[string]any, c SchemaConstraints) {
	SetIfNotNil(m, "maximum", c.Maximum)
	SetIfTrue(m, "exclusiveMaximum", c.ExclusiveMaximum)
	SetIfNotNil(m, "minimum", c.Minimum)
	SetIfTrue(m, "exclusiveMinimum", c.ExclusiveMinimum)
	SetIfNotNil(m, "maxLength", c.MaxLength)
	SetIfNotNil(m, "minLength", c.MinLength)
	SetIfNotEmpty(m, "pattern", c.Pattern)
	SetIfNotNil(m, "maxItems", c.MaxItems)
	SetIfNotNil(m, "minItems", c.MinItems)
	SetIfTrue(m, "uniqueItems", c.UniqueItems)
	SetIfNotNil(m, "enum", c.Enum)
	SetIfNotNil(m, "multipleOf", c.MultipleOf)
}

// ExtractExtensions returns the top-level x-* fields of a JSON object, or nil
// when there are none. Parse failures also yield nil; the caller has already
// unmarshaled the same bytes, so errors surface there.
//
// Example:
//
//	func (c *Contact) UnmarshalJSON(data []byte) error {
//	    type Alias Contact
//	    if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
//	        return err
//	    }
//	    c.Extra = jsonhelpers.ExtractExtensions(data)
//	    return nil
//	}
func ExtractExtensions(data []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}

	var extra map[string]any
	for k, v := range m {
		if len(k) >= 2 && k[0] == 'x' && k[1] == '-' {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = v
		}
	}
	return extra
}
