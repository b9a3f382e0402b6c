// Package httputil holds the HTTP vocabulary of Swagger 2.0 documents:
// the method set, response-key validation, and media type checks.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// Swagger 2.0 path items support exactly these seven methods, always
// lowercase in the document.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// Methods lists the seven Swagger 2.0 path item methods in specification
// order. Iterate this instead of a method map when output order matters.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
}

// StandardHTTPStatusCodes contains the status codes defined by RFC 9110.
// Structural validation warns about codes outside this set without
// rejecting them.
var StandardHTTPStatusCodes = map[string]bool{
	// 1xx Informational
	"100": true, "101": true, "102": true, "103": true,
	// 2xx Success
	"200": true, "201": true, "202": true, "203": true, "204": true, "205": true,
	"206": true, "207": true, "208": true, "226": true,
	// 3xx Redirection
	"300": true, "301": true, "302": true, "303": true, "304": true, "305": true,
	"307": true, "308": true,
	// 4xx Client Error
	"400": true, "401": true, "402": true, "403": true, "404": true, "405": true,
	"406": true, "407": true, "408": true, "409": true, "410": true, "411": true,
	"412": true, "413": true, "414": true, "415": true, "416": true, "417": true,
	"418": true, "421": true, "422": true, "423": true, "424": true, "425": true,
	"426": true, "428": true, "429": true, "431": true, "451": true,
	// 5xx Server Error
	"500": true, "501": true, "502": true, "503": true, "504": true, "505": true,
	"506": true, "507": true, "508": true, "510": true, "511": true,
}

// ValidateStatusCode reports whether a responses key is acceptable:
// "default", an x-* extension, a wildcard pattern 1XX through 5XX, or a
// numeric code in 100-599. Wildcards are not part of Swagger 2.0 proper
// but appear in real-world documents, so they are tolerated.
func ValidateStatusCode(code string) bool {
	if code == "default" || strings.HasPrefix(code, "x-") {
		return true
	}
	if len(code) != 3 {
		return false
	}

	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}

	n, err := strconv.Atoi(code)
	return err == nil && n >= 100 && n <= 599
}

// IsStandardStatusCode reports whether code appears in RFC 9110.
func IsStandardStatusCode(code string) bool {
	return StandardHTTPStatusCodes[code]
}

// IsValidMediaType validates a consumes/produces entry per RFC 2045/2046,
// accepting the */* and type/* wildcard forms but not */subtype.
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if sub, found := strings.CutSuffix(mediaType, "/*"); found {
		return sub != "" && sub != "*" && !strings.Contains(sub, "/")
	}

	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
