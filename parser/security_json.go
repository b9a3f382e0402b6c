package parser

import (
	"encoding/json"

	"github.com/erraggy/scopetools/parser/internal/jsonhelpers"
)

// MarshalJSON implements json.Marshaler for SecurityScheme.
func (ss *SecurityScheme) MarshalJSON() ([]byte, error) {
	if len(ss.Extra) == 0 {
		type Alias SecurityScheme
		return json.Marshal((*Alias)(ss))
	}

	// type is required for every scheme kind (basic, apiKey, oauth2).
	m := map[string]any{
		"type": ss.Type,
	}
	jsonhelpers.SetIfNotEmpty(m, "description", ss.Description)
	jsonhelpers.SetIfNotEmpty(m, "name", ss.Name)
	jsonhelpers.SetIfNotEmpty(m, "in", ss.In)
	jsonhelpers.SetIfNotEmpty(m, "flow", ss.Flow)
	jsonhelpers.SetIfNotEmpty(m, "authorizationUrl", ss.AuthorizationURL)
	jsonhelpers.SetIfNotEmpty(m, "tokenUrl", ss.TokenURL)
	jsonhelpers.SetIfMapNotEmpty(m, "scopes", ss.Scopes)
	return jsonhelpers.MarshalWithExtras(m, ss.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for SecurityScheme, capturing
// x-* extensions in Extra.
func (ss *SecurityScheme) UnmarshalJSON(data []byte) error {
	type Alias SecurityScheme
	if err := json.Unmarshal(data, (*Alias)(ss)); err != nil {
		return err
	}
	ss.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}
