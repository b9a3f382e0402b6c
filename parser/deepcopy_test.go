package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nil slices and maps must stay nil after a copy, and empty ones must stay
// empty, so serialization of the copy is byte-identical to the original.
func TestSchemaDeepCopy_NilVsEmpty(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		cp := (&Schema{}).DeepCopy()
		assert.Nil(t, cp.Properties)
		assert.Nil(t, cp.Required)
		assert.Nil(t, cp.Extra)
		assert.Nil(t, cp.Enum)
	})

	t.Run("empty stays empty", func(t *testing.T) {
		cp := (&Schema{
			Properties: map[string]*Schema{},
			Required:   []string{},
			Extra:      map[string]any{},
			Enum:       []any{},
		}).DeepCopy()
		require.NotNil(t, cp.Properties)
		assert.Empty(t, cp.Properties)
		require.NotNil(t, cp.Required)
		assert.Empty(t, cp.Required)
		require.NotNil(t, cp.Extra)
		assert.Empty(t, cp.Extra)
		require.NotNil(t, cp.Enum)
		assert.Empty(t, cp.Enum)
	})
}

// Items, AdditionalProperties, Default, and Enum hold any; the copy has to
// preserve the dynamic type and still be independent of the original.
func TestSchemaDeepCopy_AnyFields(t *testing.T) {
	t.Run("Items as *Schema", func(t *testing.T) {
		item := &Schema{Type: "string", Format: "email"}
		cp := (&Schema{Type: "array", Items: item}).DeepCopy()

		cpItems, ok := cp.Items.(*Schema)
		require.True(t, ok)
		assert.NotSame(t, item, cpItems)

		item.Format = "uri"
		assert.Equal(t, "email", cpItems.Format)
	})

	t.Run("Items as []*Schema tuple", func(t *testing.T) {
		s := &Schema{Type: "array", Items: []*Schema{{Type: "string"}, {Type: "integer"}}}
		cp := s.DeepCopy()

		cpItems, ok := cp.Items.([]*Schema)
		require.True(t, ok)
		require.Len(t, cpItems, 2)

		s.Items.([]*Schema)[0].Type = "modified"
		assert.Equal(t, "string", cpItems[0].Type)
	})

	t.Run("Items as raw map from YAML decoding", func(t *testing.T) {
		s := &Schema{Type: "array", Items: map[string]any{"$ref": "#/definitions/LineItem"}}
		cp := s.DeepCopy()

		cpItems, ok := cp.Items.(map[string]any)
		require.True(t, ok)

		s.Items.(map[string]any)["$ref"] = "#/definitions/Modified"
		assert.Equal(t, "#/definitions/LineItem", cpItems["$ref"])
	})

	t.Run("AdditionalProperties as *Schema", func(t *testing.T) {
		addProps := &Schema{Type: "integer"}
		cp := (&Schema{Type: "object", AdditionalProperties: addProps}).DeepCopy()

		cpAddProps, ok := cp.AdditionalProperties.(*Schema)
		require.True(t, ok)
		assert.NotSame(t, addProps, cpAddProps)
		assert.Equal(t, "integer", cpAddProps.Type)
	})

	t.Run("AdditionalProperties as bool", func(t *testing.T) {
		cp := (&Schema{Type: "object", AdditionalProperties: false}).DeepCopy()
		assert.Equal(t, false, cp.AdditionalProperties)
	})

	t.Run("Default with nested map", func(t *testing.T) {
		s := &Schema{Default: map[string]any{"nested": map[string]any{"value": "original"}}}
		cp := s.DeepCopy()

		s.Default.(map[string]any)["nested"].(map[string]any)["value"] = "modified"
		assert.Equal(t, "original", cp.Default.(map[string]any)["nested"].(map[string]any)["value"])
	})

	t.Run("Enum with mixed types", func(t *testing.T) {
		s := &Schema{Enum: []any{"red", "green", "blue", 1, 2, 3, true, nil}}
		cp := s.DeepCopy()
		assert.Equal(t, s.Enum, cp.Enum)

		s.Enum[0] = "modified"
		assert.Equal(t, "red", cp.Enum[0])
	})
}

func TestSchemaDeepCopy_Extensions(t *testing.T) {
	s := &Schema{
		Type: "object",
		Extra: map[string]any{
			"x-deprecated-since": "v2.0",
			"x-custom": map[string]any{
				"nested": "value",
				"deep":   map[string]any{"level": 3},
			},
		},
	}
	cp := s.DeepCopy()

	s.Extra["x-deprecated-since"] = "modified"
	s.Extra["x-custom"].(map[string]any)["nested"] = "modified"
	s.Extra["x-custom"].(map[string]any)["deep"].(map[string]any)["level"] = 999

	assert.Equal(t, "v2.0", cp.Extra["x-deprecated-since"])
	assert.Equal(t, "value", cp.Extra["x-custom"].(map[string]any)["nested"])
	assert.Equal(t, 3, cp.Extra["x-custom"].(map[string]any)["deep"].(map[string]any)["level"])
}

func TestSchemaDeepCopy_PointerFields(t *testing.T) {
	t.Run("primitive pointers", func(t *testing.T) {
		multipleOf, maximum, maxLength := 2.0, 100.0, 50
		s := &Schema{MultipleOf: &multipleOf, Maximum: &maximum, MaxLength: &maxLength}
		cp := s.DeepCopy()

		assert.NotSame(t, s.MultipleOf, cp.MultipleOf)
		assert.NotSame(t, s.Maximum, cp.Maximum)
		assert.NotSame(t, s.MaxLength, cp.MaxLength)

		*s.MultipleOf = 999.0
		assert.Equal(t, 2.0, *cp.MultipleOf)
		assert.Equal(t, 100.0, *cp.Maximum)
		assert.Equal(t, 50, *cp.MaxLength)
	})

	t.Run("struct pointers", func(t *testing.T) {
		s := &Schema{
			XML:          &XML{Name: "account", Namespace: "http://example.com"},
			ExternalDocs: &ExternalDocs{URL: "https://docs.example.com"},
		}
		cp := s.DeepCopy()

		assert.NotSame(t, s.XML, cp.XML)
		assert.NotSame(t, s.ExternalDocs, cp.ExternalDocs)

		s.XML.Name = "modified"
		assert.Equal(t, "account", cp.XML.Name)
		assert.Equal(t, "https://docs.example.com", cp.ExternalDocs.URL)
	})
}

func TestSchemaDeepCopy_NestedSchemas(t *testing.T) {
	t.Run("allOf composition", func(t *testing.T) {
		s := &Schema{
			AllOf: []*Schema{
				{Type: "object", Properties: map[string]*Schema{"id": {Type: "integer"}}},
				{Type: "object", Properties: map[string]*Schema{"name": {Type: "string"}}},
			},
		}
		cp := s.DeepCopy()

		require.Len(t, cp.AllOf, 2)
		assert.NotSame(t, s.AllOf[0], cp.AllOf[0])

		s.AllOf[0].Properties["id"].Type = "modified"
		assert.Equal(t, "integer", cp.AllOf[0].Properties["id"].Type)
	})

	t.Run("nested properties", func(t *testing.T) {
		s := &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"account": {
					Type:       "object",
					Properties: map[string]*Schema{"email": {Type: "string", Format: "email"}},
				},
			},
		}
		cp := s.DeepCopy()

		s.Properties["account"].Properties["email"].Format = "modified"
		require.NotNil(t, cp.Properties["account"])
		assert.Equal(t, "email", cp.Properties["account"].Properties["email"].Format)
	})
}

func TestDocumentDeepCopy(t *testing.T) {
	doc := &Document{
		Swagger:  "2.0",
		Info:     &Info{Title: "Users API", Version: "1.2.0"},
		Host:     "api.example.com",
		BasePath: "/users",
		Schemes:  []string{"https"},
		Paths: Paths{
			"/accounts": &PathItem{
				Get: &Operation{
					Summary:     "List accounts",
					OperationID: "listAccounts",
					Responses: &Responses{
						Codes: map[string]*Response{"200": {Description: "Success"}},
					},
				},
			},
		},
		Definitions: map[string]*Schema{"Account": {Type: "object"}},
		Tags:        []*Tag{{Name: "accounts"}},
	}
	cp := doc.DeepCopy()

	doc.Info.Title = "Modified"
	doc.Schemes[0] = "http"
	doc.Paths["/accounts"].Get.Summary = "Modified"
	doc.Definitions["Account"].Type = "modified"
	doc.Tags[0].Name = "modified"

	assert.Equal(t, "Users API", cp.Info.Title)
	assert.Equal(t, "https", cp.Schemes[0])
	assert.Equal(t, "List accounts", cp.Paths["/accounts"].Get.Summary)
	assert.Equal(t, "object", cp.Definitions["Account"].Type)
	assert.Equal(t, "accounts", cp.Tags[0].Name)
}

// Dependency declarations ride in Extra; a shallow copy there would let
// scoping mutate the master document.
func TestOperationDeepCopy_Extensions(t *testing.T) {
	op := &Operation{
		OperationID: "createAccount",
		Extra: map[string]any{
			ExtensionDependsOn: []any{"getAccount", "listAccounts"},
		},
	}
	cp := op.DeepCopy()

	op.Extra[ExtensionDependsOn].([]any)[0] = "modified"
	assert.Equal(t, []string{"getAccount", "listAccounts"}, cp.DependencyOperationIDs())
}

func TestParameterDeepCopy(t *testing.T) {
	t.Run("$ref only", func(t *testing.T) {
		cp := (&Parameter{Ref: "#/parameters/LimitParam"}).DeepCopy()
		assert.Equal(t, "#/parameters/LimitParam", cp.Ref)
		assert.Empty(t, cp.Name)
		assert.Empty(t, cp.In)
	})

	t.Run("all fields", func(t *testing.T) {
		maximum := 500.0
		param := &Parameter{
			Name:        "limit",
			In:          "query",
			Description: "Number of items",
			Required:    true,
			Type:        "integer",
			Format:      "int32",
			Maximum:     &maximum,
			Default:     float64(20),
			Extra:       map[string]any{"x-custom": "value"},
		}
		cp := param.DeepCopy()

		*param.Maximum = 999.0
		param.Extra["x-custom"] = "modified"

		assert.Equal(t, "limit", cp.Name)
		assert.Equal(t, "query", cp.In)
		assert.True(t, cp.Required)
		require.NotNil(t, cp.Maximum)
		assert.Equal(t, 500.0, *cp.Maximum)
		assert.Equal(t, float64(20), cp.Default)
		assert.Equal(t, "value", cp.Extra["x-custom"])
	})

	t.Run("body parameter schema", func(t *testing.T) {
		param := &Parameter{Name: "body", In: "body", Schema: &Schema{Ref: "#/definitions/NewAccount"}}
		cp := param.DeepCopy()

		require.NotNil(t, cp.Schema)
		assert.NotSame(t, param.Schema, cp.Schema)
		assert.Equal(t, "#/definitions/NewAccount", cp.Schema.Ref)
	})

	t.Run("nested array items", func(t *testing.T) {
		param := &Parameter{
			Name:  "ids",
			In:    "query",
			Type:  "array",
			Items: &Items{Type: "array", Items: &Items{Type: "string"}},
		}
		cp := param.DeepCopy()

		require.NotNil(t, cp.Items)
		assert.NotSame(t, param.Items, cp.Items)

		param.Items.Items.Type = "modified"
		assert.Equal(t, "string", cp.Items.Items.Type)
	})
}

func TestResponseDeepCopy(t *testing.T) {
	t.Run("$ref only", func(t *testing.T) {
		cp := (&Response{Ref: "#/responses/NotFound"}).DeepCopy()
		assert.Equal(t, "#/responses/NotFound", cp.Ref)
		assert.Empty(t, cp.Description)
	})

	t.Run("schema and headers", func(t *testing.T) {
		resp := &Response{
			Description: "OK",
			Schema:      &Schema{Ref: "#/definitions/Account"},
			Headers:     map[string]*Header{"X-Rate-Limit": {Type: "integer"}},
		}
		cp := resp.DeepCopy()

		assert.NotSame(t, resp.Schema, cp.Schema)

		resp.Headers["X-Rate-Limit"].Type = "modified"
		require.NotNil(t, cp.Headers["X-Rate-Limit"])
		assert.Equal(t, "integer", cp.Headers["X-Rate-Limit"].Type)
	})
}

func TestSecurityRequirementDeepCopy(t *testing.T) {
	reqs := []SecurityRequirement{
		{"oauth2": {"read:accounts", "write:accounts"}},
		{"apiKey": {}},
	}
	cp := deepCopySecurityRequirements(reqs)

	require.Len(t, cp, 2)
	assert.Empty(t, cp[1]["apiKey"])

	reqs[0]["oauth2"][0] = "modified"
	assert.Equal(t, []string{"read:accounts", "write:accounts"}, cp[0]["oauth2"])
}

func TestDeepCopy_NilReceivers(t *testing.T) {
	assert.Nil(t, (*Schema)(nil).DeepCopy())
	assert.Nil(t, (*Document)(nil).DeepCopy())
	assert.Nil(t, (*Parameter)(nil).DeepCopy())
	assert.Nil(t, (*Responses)(nil).DeepCopy())
}
