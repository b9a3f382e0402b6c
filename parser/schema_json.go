package parser

import (
	"encoding/json"

	"github.com/erraggy/scopetools/parser/internal/jsonhelpers"
)

// MarshalJSON implements json.Marshaler for Schema. Schema carries the full
// JSON Schema draft-4 subset plus Swagger's additions, so the extension path
// sets every field group through the jsonhelpers setters rather than spelling
// out thirty conditionals.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		type Alias Schema
		return json.Marshal((*Alias)(s))
	}

	m := make(map[string]any, 33+len(s.Extra))

	jsonhelpers.SetIfNotEmpty(m, "$ref", s.Ref)
	jsonhelpers.SetIfNotEmpty(m, "title", s.Title)
	jsonhelpers.SetIfNotEmpty(m, "description", s.Description)
	jsonhelpers.SetIfNotNil(m, "default", s.Default)
	jsonhelpers.SetIfNotEmpty(m, "type", s.Type)
	jsonhelpers.SetIfNotEmpty(m, "format", s.Format)
	jsonhelpers.SetSchemaConstraints(m, jsonhelpers.SchemaConstraints{
		Maximum: s.Maximum, ExclusiveMaximum: s.ExclusiveMaximum,
		Minimum: s.Minimum, ExclusiveMinimum: s.ExclusiveMinimum,
		MaxLength: s.MaxLength, MinLength: s.MinLength, Pattern: s.Pattern,
		MaxItems: s.MaxItems, MinItems: s.MinItems, UniqueItems: s.UniqueItems,
		Enum: s.Enum, MultipleOf: s.MultipleOf,
	})

	jsonhelpers.SetIfNotNil(m, "items", s.Items)
	jsonhelpers.SetIfMapNotEmpty(m, "properties", s.Properties)
	jsonhelpers.SetIfNotNil(m, "additionalProperties", s.AdditionalProperties)
	jsonhelpers.SetIfSliceNotEmpty(m, "required", s.Required)
	jsonhelpers.SetIfNotNil(m, "maxProperties", s.MaxProperties)
	jsonhelpers.SetIfNotNil(m, "minProperties", s.MinProperties)

	jsonhelpers.SetIfSliceNotEmpty(m, "allOf", s.AllOf)
	jsonhelpers.SetIfSliceNotEmpty(m, "anyOf", s.AnyOf)
	jsonhelpers.SetIfSliceNotEmpty(m, "oneOf", s.OneOf)
	jsonhelpers.SetIfNotNil(m, "not", s.Not)

	jsonhelpers.SetIfNotEmpty(m, "discriminator", s.Discriminator)
	jsonhelpers.SetIfTrue(m, "readOnly", s.ReadOnly)
	jsonhelpers.SetIfNotNil(m, "xml", s.XML)
	jsonhelpers.SetIfNotNil(m, "externalDocs", s.ExternalDocs)
	jsonhelpers.SetIfNotNil(m, "example", s.Example)

	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Schema, capturing x-*
// extensions in Extra.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type Alias Schema
	if err := json.Unmarshal(data, (*Alias)(s)); err != nil {
		return err
	}
	s.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for XML.
func (x *XML) MarshalJSON() ([]byte, error) {
	if len(x.Extra) == 0 {
		type Alias XML
		return json.Marshal((*Alias)(x))
	}

	m := make(map[string]any, 5+len(x.Extra))
	jsonhelpers.SetIfNotEmpty(m, "name", x.Name)
	jsonhelpers.SetIfNotEmpty(m, "namespace", x.Namespace)
	jsonhelpers.SetIfNotEmpty(m, "prefix", x.Prefix)
	jsonhelpers.SetIfTrue(m, "attribute", x.Attribute)
	jsonhelpers.SetIfTrue(m, "wrapped", x.Wrapped)
	return jsonhelpers.MarshalWithExtras(m, x.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for XML, capturing x-*
// extensions in Extra.
func (x *XML) UnmarshalJSON(data []byte) error {
	type Alias XML
	if err := json.Unmarshal(data, (*Alias)(x)); err != nil {
		return err
	}
	x.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}
