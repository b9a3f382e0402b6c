package merger

import "github.com/erraggy/scopetools/parser"

// copySecurityRequirements creates a copy of security requirements
func copySecurityRequirements(reqs []parser.SecurityRequirement) []parser.SecurityRequirement {
	if reqs == nil {
		return nil
	}
	result := make([]parser.SecurityRequirement, len(reqs))
	for i, req := range reqs {
		copied := make(parser.SecurityRequirement)
		for k, v := range req {
			scopes := make([]string, len(v))
			copy(scopes, v)
			copied[k] = scopes
		}
		result[i] = copied
	}
	return result
}
