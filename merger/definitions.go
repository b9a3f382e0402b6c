package merger

import "github.com/erraggy/scopetools/parser"

// mergeSchemas combines two schemas for the same definition name, field by
// field: a field the incoming schema sets wins, a field it leaves unset
// keeps the existing value. Properties and extension maps merge per key
// (colliding property schemas merge recursively); scalars, slices, and
// nested objects replace wholesale. Neither input is mutated.
func mergeSchemas(existing, incoming *parser.Schema) *parser.Schema {
	if existing == nil {
		return incoming.DeepCopy()
	}
	if incoming == nil {
		return existing.DeepCopy()
	}

	merged := existing.DeepCopy()
	in := incoming.DeepCopy()

	if in.Ref != "" {
		merged.Ref = in.Ref
	}
	if in.Title != "" {
		merged.Title = in.Title
	}
	if in.Description != "" {
		merged.Description = in.Description
	}
	if in.Default != nil {
		merged.Default = in.Default
	}
	if in.Type != "" {
		merged.Type = in.Type
	}
	if in.Enum != nil {
		merged.Enum = in.Enum
	}

	if in.MultipleOf != nil {
		merged.MultipleOf = in.MultipleOf
	}
	if in.Maximum != nil {
		merged.Maximum = in.Maximum
	}
	if in.ExclusiveMaximum {
		merged.ExclusiveMaximum = true
	}
	if in.Minimum != nil {
		merged.Minimum = in.Minimum
	}
	if in.ExclusiveMinimum {
		merged.ExclusiveMinimum = true
	}

	if in.MaxLength != nil {
		merged.MaxLength = in.MaxLength
	}
	if in.MinLength != nil {
		merged.MinLength = in.MinLength
	}
	if in.Pattern != "" {
		merged.Pattern = in.Pattern
	}

	if in.Items != nil {
		merged.Items = in.Items
	}
	if in.MaxItems != nil {
		merged.MaxItems = in.MaxItems
	}
	if in.MinItems != nil {
		merged.MinItems = in.MinItems
	}
	if in.UniqueItems {
		merged.UniqueItems = true
	}

	if len(in.Properties) > 0 {
		if merged.Properties == nil {
			merged.Properties = make(map[string]*parser.Schema, len(in.Properties))
		}
		for name, prop := range in.Properties {
			if prior, ok := merged.Properties[name]; ok && prior != nil {
				merged.Properties[name] = mergeSchemas(prior, prop)
				continue
			}
			merged.Properties[name] = prop
		}
	}
	if in.AdditionalProperties != nil {
		merged.AdditionalProperties = in.AdditionalProperties
	}
	if in.Required != nil {
		merged.Required = in.Required
	}
	if in.MaxProperties != nil {
		merged.MaxProperties = in.MaxProperties
	}
	if in.MinProperties != nil {
		merged.MinProperties = in.MinProperties
	}

	if in.AllOf != nil {
		merged.AllOf = in.AllOf
	}
	if in.AnyOf != nil {
		merged.AnyOf = in.AnyOf
	}
	if in.OneOf != nil {
		merged.OneOf = in.OneOf
	}
	if in.Not != nil {
		merged.Not = in.Not
	}

	if in.Discriminator != "" {
		merged.Discriminator = in.Discriminator
	}
	if in.ReadOnly {
		merged.ReadOnly = true
	}
	if in.XML != nil {
		merged.XML = in.XML
	}
	if in.ExternalDocs != nil {
		merged.ExternalDocs = in.ExternalDocs
	}
	if in.Example != nil {
		merged.Example = in.Example
	}
	if in.Format != "" {
		merged.Format = in.Format
	}

	if len(in.Extra) > 0 {
		if merged.Extra == nil {
			merged.Extra = make(map[string]any, len(in.Extra))
		}
		for k, v := range in.Extra {
			merged.Extra[k] = v
		}
	}

	return merged
}
