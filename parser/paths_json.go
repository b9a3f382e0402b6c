package parser

import (
	"encoding/json"
	"fmt"

	"github.com/erraggy/scopetools/internal/httputil"
	"github.com/erraggy/scopetools/parser/internal/jsonhelpers"
)

// MarshalJSON implements json.Marshaler for PathItem.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	if len(p.Extra) == 0 {
		type Alias PathItem
		return marshalToJSON((*Alias)(p))
	}

	m := make(map[string]any, 9+len(p.Extra))
	jsonhelpers.SetIfNotEmpty(m, "$ref", p.Ref)
	jsonhelpers.SetIfNotNil(m, "get", p.Get)
	jsonhelpers.SetIfNotNil(m, "put", p.Put)
	jsonhelpers.SetIfNotNil(m, "post", p.Post)
	jsonhelpers.SetIfNotNil(m, "delete", p.Delete)
	jsonhelpers.SetIfNotNil(m, "options", p.Options)
	jsonhelpers.SetIfNotNil(m, "head", p.Head)
	jsonhelpers.SetIfNotNil(m, "patch", p.Patch)
	jsonhelpers.SetIfSliceNotEmpty(m, "parameters", p.Parameters)
	return jsonhelpers.MarshalWithExtras(m, p.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for PathItem, capturing x-*
// extensions in Extra.
func (p *PathItem) UnmarshalJSON(data []byte) error {
	type Alias PathItem
	if err := json.Unmarshal(data, (*Alias)(p)); err != nil {
		return err
	}
	p.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for Operation.
func (o *Operation) MarshalJSON() ([]byte, error) {
	if len(o.Extra) == 0 {
		type Alias Operation
		return marshalToJSON((*Alias)(o))
	}

	// responses is the one required field on an operation.
	m := map[string]any{
		"responses": o.Responses,
	}
	jsonhelpers.SetIfSliceNotEmpty(m, "tags", o.Tags)
	jsonhelpers.SetIfNotEmpty(m, "summary", o.Summary)
	jsonhelpers.SetIfNotEmpty(m, "description", o.Description)
	jsonhelpers.SetIfNotNil(m, "externalDocs", o.ExternalDocs)
	jsonhelpers.SetIfNotEmpty(m, "operationId", o.OperationID)
	jsonhelpers.SetIfSliceNotEmpty(m, "consumes", o.Consumes)
	jsonhelpers.SetIfSliceNotEmpty(m, "produces", o.Produces)
	jsonhelpers.SetIfSliceNotEmpty(m, "parameters", o.Parameters)
	jsonhelpers.SetIfSliceNotEmpty(m, "schemes", o.Schemes)
	jsonhelpers.SetIfTrue(m, "deprecated", o.Deprecated)
	jsonhelpers.SetIfSliceNotEmpty(m, "security", o.Security)
	return jsonhelpers.MarshalWithExtras(m, o.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Operation, capturing x-*
// extensions in Extra. Extensions carried here (x-depends-on, x-features,
// x-internal and the rest) are what the scoper and dependency resolver
// consume downstream.
func (o *Operation) UnmarshalJSON(data []byte) error {
	type Alias Operation
	if err := json.Unmarshal(data, (*Alias)(o)); err != nil {
		return err
	}
	o.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for Response.
func (r *Response) MarshalJSON() ([]byte, error) {
	if len(r.Extra) == 0 {
		type Alias Response
		return marshalToJSON((*Alias)(r))
	}

	// description is required on every response.
	m := map[string]any{
		"description": r.Description,
	}
	jsonhelpers.SetIfNotEmpty(m, "$ref", r.Ref)
	jsonhelpers.SetIfNotNil(m, "schema", r.Schema)
	jsonhelpers.SetIfMapNotEmpty(m, "headers", r.Headers)
	jsonhelpers.SetIfMapNotEmpty(m, "examples", r.Examples)
	return jsonhelpers.MarshalWithExtras(m, r.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Response, capturing x-*
// extensions in Extra.
func (r *Response) UnmarshalJSON(data []byte) error {
	type Alias Response
	if err := json.Unmarshal(data, (*Alias)(r)); err != nil {
		return err
	}
	r.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for Responses. Status codes and
// wildcard patterns from the Codes map become top-level keys alongside
// "default", which is how the responses object is laid out on the wire.
func (r *Responses) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 1+len(r.Codes))
	if r.Default != nil {
		m["default"] = r.Default
	}
	for code, response := range r.Codes {
		m[code] = response
	}
	return marshalToJSON(m)
}

// UnmarshalJSON implements json.Unmarshaler for Responses. Every key other
// than "default" must be a valid HTTP status code ("200"), a wildcard
// pattern ("2XX"), or an extension field ("x-custom"); anything else is an
// error rather than silently dropped.
func (r *Responses) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	r.Codes = make(map[string]*Response)
	for key, value := range m {
		if key != "default" && !httputil.ValidateStatusCode(key) {
			return fmt.Errorf("invalid status code '%s' in responses: must be a valid HTTP status code (e.g., \"200\", \"404\"), wildcard pattern (e.g., \"2XX\"), or extension field (e.g., \"x-custom\")", key)
		}
		var resp Response
		if err := json.Unmarshal(value, &resp); err != nil {
			return err
		}
		if key == "default" {
			r.Default = &resp
		} else {
			r.Codes[key] = &resp
		}
	}
	return nil
}
