package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scopetools/internal/httputil"
)

// Paths maps path templates to the operations served under them.
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref        string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Get        *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put        *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post       *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete     *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options    *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head       *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch      *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures x-* extensions.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation describes a single API operation on a path. The Extra map is
// where the scoping extensions (x-features, x-internal, x-depends-on) ride.
type Operation struct {
	Tags         []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Consumes     []string              `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces     []string              `yaml:"produces,omitempty" json:"produces,omitempty"`
	Parameters   []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses    *Responses            `yaml:"responses" json:"responses"`
	Schemes      []string              `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Deprecated   bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	// Extra captures x-* extensions.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses holds the expected responses of an operation.
type Responses struct {
	Default *Response            `yaml:"default,omitempty" json:"default,omitempty"`
	Codes   map[string]*Response `yaml:",inline" json:"-"` // Handled by custom marshaler
}

// UnmarshalYAML validates status codes while decoding so a typo like "20O"
// fails loudly rather than riding along in the Codes map.
func (r *Responses) UnmarshalYAML(unmarshal func(any) error) error {
	var raw map[string]any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	r.Codes = make(map[string]*Response)
	for key, value := range raw {
		if key != "default" && !httputil.ValidateStatusCode(key) {
			return fmt.Errorf("invalid status code '%s' in responses: must be a valid HTTP status code (e.g., \"200\", \"404\"), wildcard pattern (e.g., \"2XX\"), or extension field (e.g., \"x-custom\")", key)
		}

		resp, err := decodeResponseValue(value)
		if err != nil {
			if key == "default" {
				return fmt.Errorf("failed to decode default response: %w", err)
			}
			return fmt.Errorf("failed to decode response for status code %s: %w", key, err)
		}

		if key == "default" {
			r.Default = resp
		} else {
			r.Codes[key] = resp
		}
	}
	return nil
}

// decodeResponseValue round-trips a raw YAML value into a typed Response.
func decodeResponseValue(value any) (*Response, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, err
	}
	var resp Response
	if err := yaml.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Response describes a single response from an API operation.
type Response struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Description is omitempty because a response defined via $ref leaves
	// it empty in the referencing object; the value lives in the referenced
	// definition.
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Schema      *Schema            `yaml:"schema,omitempty" json:"schema,omitempty"`
	Headers     map[string]*Header `yaml:"headers,omitempty" json:"headers,omitempty"`
	Examples    map[string]any     `yaml:"examples,omitempty" json:"examples,omitempty"`
	// Extra captures x-* extensions.
	Extra map[string]any `yaml:",inline" json:"-"`
}
