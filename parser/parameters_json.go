package parser

import (
	"encoding/json"

	"github.com/erraggy/scopetools/parser/internal/jsonhelpers"
)

// Parameter, Items, and Header share Swagger 2.0's primitive-field and
// validation-constraint vocabulary, so their marshalers funnel through the
// same jsonhelpers setters. As with the metadata types, a map is only built
// when Extra holds x-* extensions; otherwise the plain struct marshal wins.

// MarshalJSON implements json.Marshaler for Parameter.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	if len(p.Extra) == 0 {
		type Alias Parameter
		return marshalToJSON((*Alias)(p))
	}

	// name and in are required for every parameter location.
	m := map[string]any{
		"name": p.Name,
		"in":   p.In,
	}
	jsonhelpers.SetIfNotEmpty(m, "$ref", p.Ref)
	jsonhelpers.SetIfNotEmpty(m, "description", p.Description)
	jsonhelpers.SetIfTrue(m, "required", p.Required)
	jsonhelpers.SetIfTrue(m, "allowEmptyValue", p.AllowEmptyValue)
	jsonhelpers.SetIfNotNil(m, "schema", p.Schema)
	jsonhelpers.SetOAS2PrimitiveFields(m, jsonhelpers.OAS2PrimitiveFields{
		Type: p.Type, Format: p.Format, Items: p.Items,
		CollectionFormat: p.CollectionFormat, Default: p.Default,
	})
	jsonhelpers.SetSchemaConstraints(m, p.constraints())
	return jsonhelpers.MarshalWithExtras(m, p.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Parameter, capturing x-*
// extensions in Extra.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	type Alias Parameter
	if err := json.Unmarshal(data, (*Alias)(p)); err != nil {
		return err
	}
	p.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

func (p *Parameter) constraints() jsonhelpers.SchemaConstraints {
	return jsonhelpers.SchemaConstraints{
		Maximum: p.Maximum, ExclusiveMaximum: p.ExclusiveMaximum,
		Minimum: p.Minimum, ExclusiveMinimum: p.ExclusiveMinimum,
		MaxLength: p.MaxLength, MinLength: p.MinLength, Pattern: p.Pattern,
		MaxItems: p.MaxItems, MinItems: p.MinItems, UniqueItems: p.UniqueItems,
		Enum: p.Enum, MultipleOf: p.MultipleOf,
	}
}

// MarshalJSON implements json.Marshaler for Items.
func (i *Items) MarshalJSON() ([]byte, error) {
	if len(i.Extra) == 0 {
		type Alias Items
		return marshalToJSON((*Alias)(i))
	}

	// type is the only required field on an items object.
	m := map[string]any{
		"type": i.Type,
	}
	jsonhelpers.SetOAS2PrimitiveFields(m, jsonhelpers.OAS2PrimitiveFields{
		Format: i.Format, Items: i.Items,
		CollectionFormat: i.CollectionFormat, Default: i.Default,
	})
	jsonhelpers.SetSchemaConstraints(m, i.constraints())
	return jsonhelpers.MarshalWithExtras(m, i.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Items, capturing x-*
// extensions in Extra.
func (i *Items) UnmarshalJSON(data []byte) error {
	type Alias Items
	if err := json.Unmarshal(data, (*Alias)(i)); err != nil {
		return err
	}
	i.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

func (i *Items) constraints() jsonhelpers.SchemaConstraints {
	return jsonhelpers.SchemaConstraints{
		Maximum: i.Maximum, ExclusiveMaximum: i.ExclusiveMaximum,
		Minimum: i.Minimum, ExclusiveMinimum: i.ExclusiveMinimum,
		MaxLength: i.MaxLength, MinLength: i.MinLength, Pattern: i.Pattern,
		MaxItems: i.MaxItems, MinItems: i.MinItems, UniqueItems: i.UniqueItems,
		Enum: i.Enum, MultipleOf: i.MultipleOf,
	}
}

// MarshalJSON implements json.Marshaler for Header.
func (h *Header) MarshalJSON() ([]byte, error) {
	if len(h.Extra) == 0 {
		type Alias Header
		return marshalToJSON((*Alias)(h))
	}

	m := make(map[string]any, 18+len(h.Extra))
	jsonhelpers.SetIfNotEmpty(m, "description", h.Description)
	jsonhelpers.SetOAS2PrimitiveFields(m, jsonhelpers.OAS2PrimitiveFields{
		Type: h.Type, Format: h.Format, Items: h.Items,
		CollectionFormat: h.CollectionFormat, Default: h.Default,
	})
	jsonhelpers.SetSchemaConstraints(m, h.constraints())
	return jsonhelpers.MarshalWithExtras(m, h.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Header, capturing x-*
// extensions in Extra.
func (h *Header) UnmarshalJSON(data []byte) error {
	type Alias Header
	if err := json.Unmarshal(data, (*Alias)(h)); err != nil {
		return err
	}
	h.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

func (h *Header) constraints() jsonhelpers.SchemaConstraints {
	return jsonhelpers.SchemaConstraints{
		Maximum: h.Maximum, ExclusiveMaximum: h.ExclusiveMaximum,
		Minimum: h.Minimum, ExclusiveMinimum: h.ExclusiveMinimum,
		MaxLength: h.MaxLength, MinLength: h.MinLength, Pattern: h.Pattern,
		MaxItems: h.MaxItems, MinItems: h.MinItems, UniqueItems: h.UniqueItems,
		Enum: h.Enum, MultipleOf: h.MultipleOf,
	}
}
