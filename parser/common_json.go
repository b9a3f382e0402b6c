package parser

import (
	"encoding/json"

	"github.com/erraggy/scopetools/parser/internal/jsonhelpers"
)

// The metadata types marshal through a map so that Extra fields (x-*
// extensions) land at the top level of the object; encoding/json has no
// equivalent of yaml's ",inline" for maps. When there are no extensions the
// plain struct marshal is used instead.

// MarshalJSON implements json.Marshaler for Info.
func (i *Info) MarshalJSON() ([]byte, error) {
	if len(i.Extra) == 0 {
		type Alias Info
		return json.Marshal((*Alias)(i))
	}

	m := map[string]any{
		"title":   i.Title,
		"version": i.Version,
	}
	jsonhelpers.SetIfNotEmpty(m, "description", i.Description)
	jsonhelpers.SetIfNotEmpty(m, "termsOfService", i.TermsOfService)
	if i.Contact != nil {
		m["contact"] = i.Contact
	}
	if i.License != nil {
		m["license"] = i.License
	}
	return jsonhelpers.MarshalWithExtras(m, i.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Info, capturing x-*
// extensions in Extra.
func (i *Info) UnmarshalJSON(data []byte) error {
	type Alias Info
	if err := json.Unmarshal(data, (*Alias)(i)); err != nil {
		return err
	}
	i.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for Contact.
func (c *Contact) MarshalJSON() ([]byte, error) {
	if len(c.Extra) == 0 {
		type Alias Contact
		return json.Marshal((*Alias)(c))
	}

	m := make(map[string]any, 3+len(c.Extra))
	jsonhelpers.SetIfNotEmpty(m, "name", c.Name)
	jsonhelpers.SetIfNotEmpty(m, "url", c.URL)
	jsonhelpers.SetIfNotEmpty(m, "email", c.Email)
	return jsonhelpers.MarshalWithExtras(m, c.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Contact.
func (c *Contact) UnmarshalJSON(data []byte) error {
	type Alias Contact
	if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
		return err
	}
	c.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for License.
func (l *License) MarshalJSON() ([]byte, error) {
	if len(l.Extra) == 0 {
		type Alias License
		return json.Marshal((*Alias)(l))
	}

	m := make(map[string]any, 2+len(l.Extra))
	jsonhelpers.SetIfNotEmpty(m, "name", l.Name)
	jsonhelpers.SetIfNotEmpty(m, "url", l.URL)
	return jsonhelpers.MarshalWithExtras(m, l.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for License.
func (l *License) UnmarshalJSON(data []byte) error {
	type Alias License
	if err := json.Unmarshal(data, (*Alias)(l)); err != nil {
		return err
	}
	l.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for ExternalDocs.
func (e *ExternalDocs) MarshalJSON() ([]byte, error) {
	if len(e.Extra) == 0 {
		type Alias ExternalDocs
		return json.Marshal((*Alias)(e))
	}

	// url is required, description is not
	m := map[string]any{"url": e.URL}
	jsonhelpers.SetIfNotEmpty(m, "description", e.Description)
	return jsonhelpers.MarshalWithExtras(m, e.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for ExternalDocs.
func (e *ExternalDocs) UnmarshalJSON(data []byte) error {
	type Alias ExternalDocs
	if err := json.Unmarshal(data, (*Alias)(e)); err != nil {
		return err
	}
	e.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements json.Marshaler for Tag.
func (t *Tag) MarshalJSON() ([]byte, error) {
	if len(t.Extra) == 0 {
		type Alias Tag
		return json.Marshal((*Alias)(t))
	}

	m := map[string]any{"name": t.Name}
	jsonhelpers.SetIfNotEmpty(m, "description", t.Description)
	if t.ExternalDocs != nil {
		m["externalDocs"] = t.ExternalDocs
	}
	return jsonhelpers.MarshalWithExtras(m, t.Extra)
}

// UnmarshalJSON implements json.Unmarshaler for Tag.
func (t *Tag) UnmarshalJSON(data []byte) error {
	type Alias Tag
	if err := json.Unmarshal(data, (*Alias)(t)); err != nil {
		return err
	}
	t.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}
