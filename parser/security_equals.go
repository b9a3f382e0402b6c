package parser

import "maps"

// Equality for SecurityRequirement and SecurityScheme.

// equalSecurityRequirement compares scheme-name to scope-list maps. Scope
// order within a scheme is significant.
func equalSecurityRequirement(a, b SecurityRequirement) bool {
	return maps.EqualFunc(a, b, equalStringSlice)
}

// equalSecurityRequirementSlice is order-sensitive. Nil and empty slices
// compare equal.
func equalSecurityRequirementSlice(a, b []SecurityRequirement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalSecurityRequirement(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalSecurityScheme(a, b *SecurityScheme) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Type == b.Type &&
		a.Description == b.Description &&
		a.Name == b.Name &&
		a.In == b.In &&
		a.Flow == b.Flow &&
		a.AuthorizationURL == b.AuthorizationURL &&
		a.TokenURL == b.TokenURL &&
		maps.Equal(a.Scopes, b.Scopes) &&
		equalMapStringAny(a.Extra, b.Extra)
}

// equalSecuritySchemeMap treats nil and empty maps as equal.
func equalSecuritySchemeMap(a, b map[string]*SecurityScheme) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !equalSecurityScheme(va, vb) {
			return false
		}
	}
	return true
}
