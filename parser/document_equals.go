package parser

// Equals reports structural equality of two documents. The scoper relies on
// it to verify that filtering a role never mutates the master document it
// was given. Cheap scalar fields are compared before the paths and
// definitions maps so unrelated documents fail fast.
func (d *Document) Equals(other *Document) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}

	if d.Swagger != other.Swagger ||
		d.Host != other.Host ||
		d.BasePath != other.BasePath {
		return false
	}

	if !equalInfo(d.Info, other.Info) ||
		!equalExternalDocs(d.ExternalDocs, other.ExternalDocs) {
		return false
	}

	if !equalStringSlice(d.Schemes, other.Schemes) ||
		!equalStringSlice(d.Consumes, other.Consumes) ||
		!equalStringSlice(d.Produces, other.Produces) ||
		!equalSecurityRequirementSlice(d.Security, other.Security) ||
		!equalTagSlice(d.Tags, other.Tags) {
		return false
	}

	return equalPaths(d.Paths, other.Paths) &&
		equalSchemaMap(d.Definitions, other.Definitions) &&
		equalParameterMap(d.Parameters, other.Parameters) &&
		equalResponseMap(d.Responses, other.Responses) &&
		equalSecuritySchemeMap(d.SecurityDefinitions, other.SecurityDefinitions) &&
		equalMapStringAny(d.Extra, other.Extra)
}
