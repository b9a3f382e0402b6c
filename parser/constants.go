package parser

// SwaggerVersion is the only document version this module handles.
const SwaggerVersion = "2.0"

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInFormData indicates the parameter is passed as form data
	ParamInFormData = "formData"
	// ParamInBody indicates the parameter is in the request body
	ParamInBody = "body"
)
