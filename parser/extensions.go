package parser

// ExtensionDependsOn is the specification extension that declares which other
// operations an operation depends on. Its value is a sequence of operationIds:
//
//	post:
//	  operationId: createOrder
//	  x-depends-on:
//	    - getAccount
//	    - listPaymentMethods
//
// Dependencies declared here are collected across all merged documents and
// surface as dependency chains when deriving role-scoped documents.
const ExtensionDependsOn = "x-depends-on"

// DependencyOperationIDs returns the operationIds this operation declares as
// dependencies via the x-depends-on extension, in declaration order.
//
// A missing extension, a value that is not a sequence, and sequence entries
// that are not strings all yield no dependencies rather than an error; the
// extension is advisory and malformed values are ignored.
func (o *Operation) DependencyOperationIDs() []string {
	if o == nil || len(o.Extra) == 0 {
		return nil
	}
	return ExtensionStringSlice(o.Extra, ExtensionDependsOn)
}

// ExtensionStringSlice extracts a []string value from an extension map.
// Extension values arrive as []any from YAML/JSON decoding and as []string
// from programmatically built documents; both are handled. Any other shape
// returns nil, and non-string sequence entries are skipped.
func ExtensionStringSlice(extra map[string]any, key string) []string {
	raw, ok := extra[key]
	if !ok {
		return nil
	}

	switch vals := raw.(type) {
	case []string:
		if len(vals) == 0 {
			return nil
		}
		out := make([]string, len(vals))
		copy(out, vals)
		return out
	case []any:
		out := make([]string, 0, len(vals))
		for _, v := range vals {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
