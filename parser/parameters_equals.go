package parser

import "github.com/erraggy/scopetools/internal/equalutil"

// Equality for the parameter-level types: Parameter, Items, and Header. The
// three share the primitive typing and constraint vocabulary, so the
// comparisons follow the same shape: scalars first, then pointers, then the
// nested and any-typed fields.

func equalParameter(a, b *Parameter) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Required != b.Required ||
		a.AllowEmptyValue != b.AllowEmptyValue ||
		a.ExclusiveMaximum != b.ExclusiveMaximum ||
		a.ExclusiveMinimum != b.ExclusiveMinimum ||
		a.UniqueItems != b.UniqueItems {
		return false
	}

	if a.Ref != b.Ref ||
		a.Name != b.Name ||
		a.In != b.In ||
		a.Description != b.Description ||
		a.Type != b.Type ||
		a.Format != b.Format ||
		a.CollectionFormat != b.CollectionFormat ||
		a.Pattern != b.Pattern {
		return false
	}

	if !equalutil.EqualPtr(a.Maximum, b.Maximum) ||
		!equalutil.EqualPtr(a.Minimum, b.Minimum) ||
		!equalutil.EqualPtr(a.MultipleOf, b.MultipleOf) ||
		!equalutil.EqualPtr(a.MaxLength, b.MaxLength) ||
		!equalutil.EqualPtr(a.MinLength, b.MinLength) ||
		!equalutil.EqualPtr(a.MaxItems, b.MaxItems) ||
		!equalutil.EqualPtr(a.MinItems, b.MinItems) {
		return false
	}

	return a.Schema.Equals(b.Schema) &&
		equalItems(a.Items, b.Items) &&
		equalJSONValue(a.Default, b.Default) &&
		equalAnySlice(a.Enum, b.Enum) &&
		equalMapStringAny(a.Extra, b.Extra)
}

// equalParameterSlice is order-sensitive. Nil and empty slices compare equal.
func equalParameterSlice(a, b []*Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalParameter(a[i], b[i]) {
			return false
		}
	}
	return true
}

// equalParameterMap treats nil and empty maps as equal.
func equalParameterMap(a, b map[string]*Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !equalParameter(va, vb) {
			return false
		}
	}
	return true
}

// equalItems recurses through nested Items for multi-dimensional arrays.
func equalItems(a, b *Items) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.ExclusiveMaximum != b.ExclusiveMaximum ||
		a.ExclusiveMinimum != b.ExclusiveMinimum ||
		a.UniqueItems != b.UniqueItems {
		return false
	}

	if a.Type != b.Type ||
		a.Format != b.Format ||
		a.CollectionFormat != b.CollectionFormat ||
		a.Pattern != b.Pattern {
		return false
	}

	if !equalutil.EqualPtr(a.Maximum, b.Maximum) ||
		!equalutil.EqualPtr(a.Minimum, b.Minimum) ||
		!equalutil.EqualPtr(a.MultipleOf, b.MultipleOf) ||
		!equalutil.EqualPtr(a.MaxLength, b.MaxLength) ||
		!equalutil.EqualPtr(a.MinLength, b.MinLength) ||
		!equalutil.EqualPtr(a.MaxItems, b.MaxItems) ||
		!equalutil.EqualPtr(a.MinItems, b.MinItems) {
		return false
	}

	return equalItems(a.Items, b.Items) &&
		equalJSONValue(a.Default, b.Default) &&
		equalAnySlice(a.Enum, b.Enum) &&
		equalMapStringAny(a.Extra, b.Extra)
}

func equalHeader(a, b *Header) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.ExclusiveMaximum != b.ExclusiveMaximum ||
		a.ExclusiveMinimum != b.ExclusiveMinimum ||
		a.UniqueItems != b.UniqueItems {
		return false
	}

	if a.Description != b.Description ||
		a.Type != b.Type ||
		a.Format != b.Format ||
		a.CollectionFormat != b.CollectionFormat ||
		a.Pattern != b.Pattern {
		return false
	}

	if !equalutil.EqualPtr(a.Maximum, b.Maximum) ||
		!equalutil.EqualPtr(a.Minimum, b.Minimum) ||
		!equalutil.EqualPtr(a.MultipleOf, b.MultipleOf) ||
		!equalutil.EqualPtr(a.MaxLength, b.MaxLength) ||
		!equalutil.EqualPtr(a.MinLength, b.MinLength) ||
		!equalutil.EqualPtr(a.MaxItems, b.MaxItems) ||
		!equalutil.EqualPtr(a.MinItems, b.MinItems) {
		return false
	}

	return equalItems(a.Items, b.Items) &&
		equalJSONValue(a.Default, b.Default) &&
		equalAnySlice(a.Enum, b.Enum) &&
		equalMapStringAny(a.Extra, b.Extra)
}
