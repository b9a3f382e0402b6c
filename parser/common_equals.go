package parser

// Equality for the shared metadata types: Info, Contact, License,
// ExternalDocs, and Tag.

func equalInfo(a, b *Info) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Title == b.Title &&
		a.Description == b.Description &&
		a.TermsOfService == b.TermsOfService &&
		a.Version == b.Version &&
		equalContact(a.Contact, b.Contact) &&
		equalLicense(a.License, b.License) &&
		equalMapStringAny(a.Extra, b.Extra)
}

func equalContact(a, b *Contact) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name &&
		a.URL == b.URL &&
		a.Email == b.Email &&
		equalMapStringAny(a.Extra, b.Extra)
}

func equalLicense(a, b *License) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name &&
		a.URL == b.URL &&
		equalMapStringAny(a.Extra, b.Extra)
}

func equalExternalDocs(a, b *ExternalDocs) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Description == b.Description &&
		a.URL == b.URL &&
		equalMapStringAny(a.Extra, b.Extra)
}

func equalTag(a, b *Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name &&
		a.Description == b.Description &&
		equalExternalDocs(a.ExternalDocs, b.ExternalDocs) &&
		equalMapStringAny(a.Extra, b.Extra)
}

// equalTagSlice is order-sensitive. Nil and empty slices compare equal.
func equalTagSlice(a, b []*Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalTag(a[i], b[i]) {
			return false
		}
	}
	return true
}
