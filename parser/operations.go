package parser

import "github.com/erraggy/scopetools/internal/httputil"

// GetOperations extracts a map of all operations from a PathItem.
// Returns a map with keys for the seven Swagger 2.0 HTTP methods and values
// pointing to the corresponding Operation (or nil if not defined).
func GetOperations(pathItem *PathItem) map[string]*Operation {
	if pathItem == nil {
		return map[string]*Operation{}
	}
	return map[string]*Operation{
		httputil.MethodGet:     pathItem.Get,
		httputil.MethodPut:     pathItem.Put,
		httputil.MethodPost:    pathItem.Post,
		httputil.MethodDelete:  pathItem.Delete,
		httputil.MethodOptions: pathItem.Options,
		httputil.MethodHead:    pathItem.Head,
		httputil.MethodPatch:   pathItem.Patch,
	}
}

// SetOperation assigns op to the method slot on pathItem. Method must be one
// of the lowercase Swagger 2.0 method names; unknown methods are ignored.
func SetOperation(pathItem *PathItem, method string, op *Operation) {
	if pathItem == nil {
		return
	}
	switch method {
	case httputil.MethodGet:
		pathItem.Get = op
	case httputil.MethodPut:
		pathItem.Put = op
	case httputil.MethodPost:
		pathItem.Post = op
	case httputil.MethodDelete:
		pathItem.Delete = op
	case httputil.MethodOptions:
		pathItem.Options = op
	case httputil.MethodHead:
		pathItem.Head = op
	case httputil.MethodPatch:
		pathItem.Patch = op
	}
}
