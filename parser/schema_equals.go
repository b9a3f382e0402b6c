package parser

import "github.com/erraggy/scopetools/internal/equalutil"

// schemaPair keys the visited set during cyclic schema comparison.
type schemaPair struct {
	a, b *Schema
}

// Equals reports structural equality of two schemas. Self-referential
// definitions (Account.properties.parent -> Account) are handled safely.
func (s *Schema) Equals(other *Schema) bool {
	return s.equalsWithVisited(other, make(map[schemaPair]bool))
}

// equalsWithVisited is the cycle-aware comparison. Cheap scalar fields are
// checked before any recursion so mismatched schemas bail out early.
func (s *Schema) equalsWithVisited(other *Schema, visited map[schemaPair]bool) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}

	// A pair already on the comparison stack is treated as equal; every
	// field checked before re-entry matched, so the cycle itself cannot
	// introduce a difference.
	pair := schemaPair{s, other}
	if visited[pair] {
		return true
	}
	visited[pair] = true

	if s.ReadOnly != other.ReadOnly ||
		s.UniqueItems != other.UniqueItems ||
		s.ExclusiveMaximum != other.ExclusiveMaximum ||
		s.ExclusiveMinimum != other.ExclusiveMinimum {
		return false
	}

	if s.Ref != other.Ref ||
		s.Title != other.Title ||
		s.Description != other.Description ||
		s.Type != other.Type ||
		s.Pattern != other.Pattern ||
		s.Format != other.Format ||
		s.Discriminator != other.Discriminator {
		return false
	}

	if !equalutil.EqualPtr(s.Maximum, other.Maximum) ||
		!equalutil.EqualPtr(s.Minimum, other.Minimum) ||
		!equalutil.EqualPtr(s.MultipleOf, other.MultipleOf) ||
		!equalutil.EqualPtr(s.MaxLength, other.MaxLength) ||
		!equalutil.EqualPtr(s.MinLength, other.MinLength) ||
		!equalutil.EqualPtr(s.MaxItems, other.MaxItems) ||
		!equalutil.EqualPtr(s.MinItems, other.MinItems) ||
		!equalutil.EqualPtr(s.MaxProperties, other.MaxProperties) ||
		!equalutil.EqualPtr(s.MinProperties, other.MinProperties) {
		return false
	}

	if !equalStringSlice(s.Required, other.Required) ||
		!equalAnySlice(s.Enum, other.Enum) ||
		!equalJSONValue(s.Default, other.Default) ||
		!equalJSONValue(s.Example, other.Example) {
		return false
	}

	// The recursive fields come last, all threading the visited set.
	if !equalSchemaOrSliceWithVisited(s.Items, other.Items, visited) ||
		!equalSchemaOrBoolWithVisited(s.AdditionalProperties, other.AdditionalProperties, visited) ||
		!s.Not.equalsWithVisited(other.Not, visited) ||
		!equalSchemaSliceWithVisited(s.AllOf, other.AllOf, visited) ||
		!equalSchemaSliceWithVisited(s.AnyOf, other.AnyOf, visited) ||
		!equalSchemaSliceWithVisited(s.OneOf, other.OneOf, visited) ||
		!equalSchemaMapWithVisited(s.Properties, other.Properties, visited) {
		return false
	}

	return equalXML(s.XML, other.XML) &&
		equalExternalDocs(s.ExternalDocs, other.ExternalDocs) &&
		equalMapStringAny(s.Extra, other.Extra)
}

// equalSchemaSlice is order-sensitive. Nil and empty slices compare equal.
func equalSchemaSlice(a, b []*Schema) bool {
	return equalSchemaSliceWithVisited(a, b, make(map[schemaPair]bool))
}

func equalSchemaSliceWithVisited(a, b []*Schema, visited map[schemaPair]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equalsWithVisited(b[i], visited) {
			return false
		}
	}
	return true
}

// equalSchemaMap treats nil and empty maps as equal.
func equalSchemaMap(a, b map[string]*Schema) bool {
	return equalSchemaMapWithVisited(a, b, make(map[schemaPair]bool))
}

func equalSchemaMapWithVisited(a, b map[string]*Schema, visited map[schemaPair]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !va.equalsWithVisited(vb, visited) {
			return false
		}
	}
	return true
}

func equalXML(a, b *XML) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name &&
		a.Namespace == b.Namespace &&
		a.Prefix == b.Prefix &&
		a.Attribute == b.Attribute &&
		a.Wrapped == b.Wrapped &&
		equalMapStringAny(a.Extra, b.Extra)
}

// equalSchemaOrSliceWithVisited handles Schema.Items (*Schema or []*Schema)
// with cycle detection; raw YAML forms fall through to the visited-free
// helper.
func equalSchemaOrSliceWithVisited(a, b any, visited map[schemaPair]bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch ta := a.(type) {
	case *Schema:
		tb, ok := b.(*Schema)
		return ok && ta.equalsWithVisited(tb, visited)
	case []*Schema:
		tb, ok := b.([]*Schema)
		return ok && equalSchemaSliceWithVisited(ta, tb, visited)
	default:
		return equalSchemaOrSlice(a, b)
	}
}

// equalSchemaOrBoolWithVisited handles Schema.AdditionalProperties (*Schema
// or bool) with cycle detection.
func equalSchemaOrBoolWithVisited(a, b any, visited map[schemaPair]bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch ta := a.(type) {
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case *Schema:
		tb, ok := b.(*Schema)
		return ok && ta.equalsWithVisited(tb, visited)
	default:
		return equalSchemaOrBool(a, b)
	}
}
