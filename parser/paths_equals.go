package parser

// Equality for the path-level types: Paths, PathItem, Operation, Responses,
// and Response. Document.Equals drives these from the top.

// equalPaths treats nil and empty maps as equal.
func equalPaths(a, b Paths) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !equalPathItem(va, vb) {
			return false
		}
	}
	return true
}

func equalPathItem(a, b *PathItem) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Ref == b.Ref &&
		equalOperation(a.Get, b.Get) &&
		equalOperation(a.Put, b.Put) &&
		equalOperation(a.Post, b.Post) &&
		equalOperation(a.Delete, b.Delete) &&
		equalOperation(a.Options, b.Options) &&
		equalOperation(a.Head, b.Head) &&
		equalOperation(a.Patch, b.Patch) &&
		equalParameterSlice(a.Parameters, b.Parameters) &&
		equalMapStringAny(a.Extra, b.Extra)
}

func equalOperation(a, b *Operation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Deprecated != b.Deprecated ||
		a.Summary != b.Summary ||
		a.Description != b.Description ||
		a.OperationID != b.OperationID {
		return false
	}

	if !equalStringSlice(a.Tags, b.Tags) ||
		!equalStringSlice(a.Consumes, b.Consumes) ||
		!equalStringSlice(a.Produces, b.Produces) ||
		!equalStringSlice(a.Schemes, b.Schemes) {
		return false
	}

	return equalExternalDocs(a.ExternalDocs, b.ExternalDocs) &&
		equalResponses(a.Responses, b.Responses) &&
		equalParameterSlice(a.Parameters, b.Parameters) &&
		equalSecurityRequirementSlice(a.Security, b.Security) &&
		equalMapStringAny(a.Extra, b.Extra)
}

func equalResponses(a, b *Responses) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalResponse(a.Default, b.Default) && equalResponseMap(a.Codes, b.Codes)
}

func equalResponse(a, b *Response) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Ref == b.Ref &&
		a.Description == b.Description &&
		a.Schema.Equals(b.Schema) &&
		equalHeaderMap(a.Headers, b.Headers) &&
		equalMapStringAny(a.Examples, b.Examples) &&
		equalMapStringAny(a.Extra, b.Extra)
}

// equalResponseMap treats nil and empty maps as equal.
func equalResponseMap(a, b map[string]*Response) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !equalResponse(va, vb) {
			return false
		}
	}
	return true
}

// equalHeaderMap treats nil and empty maps as equal.
func equalHeaderMap(a, b map[string]*Header) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !equalHeader(va, vb) {
			return false
		}
	}
	return true
}
