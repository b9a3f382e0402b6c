package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecuritySchemeMarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		scheme *SecurityScheme
		want   map[string]any
	}{
		{
			name: "apiKey scheme",
			scheme: &SecurityScheme{
				Type:        "apiKey",
				Name:        "api_key",
				In:          "header",
				Description: "API key authentication",
			},
			want: map[string]any{
				"type":        "apiKey",
				"name":        "api_key",
				"in":          "header",
				"description": "API key authentication",
			},
		},
		{
			name: "basic scheme",
			scheme: &SecurityScheme{
				Type:        "basic",
				Description: "HTTP basic authentication",
			},
			want: map[string]any{
				"type":        "basic",
				"description": "HTTP basic authentication",
			},
		},
		{
			name: "oauth2 implicit flow",
			scheme: &SecurityScheme{
				Type:             "oauth2",
				Flow:             "implicit",
				AuthorizationURL: "https://example.com/oauth/authorize",
				Scopes: map[string]string{
					"read":  "Read access",
					"write": "Write access",
				},
			},
			want: map[string]any{
				"type":             "oauth2",
				"flow":             "implicit",
				"authorizationUrl": "https://example.com/oauth/authorize",
				"scopes": map[string]any{
					"read":  "Read access",
					"write": "Write access",
				},
			},
		},
		{
			name: "oauth2 accessCode flow",
			scheme: &SecurityScheme{
				Type:             "oauth2",
				Flow:             "accessCode",
				AuthorizationURL: "https://example.com/oauth/authorize",
				TokenURL:         "https://example.com/oauth/token",
				Scopes:           map[string]string{"accounts:read": "Read account data"},
			},
			want: map[string]any{
				"type":             "oauth2",
				"flow":             "accessCode",
				"authorizationUrl": "https://example.com/oauth/authorize",
				"tokenUrl":         "https://example.com/oauth/token",
				"scopes":           map[string]any{"accounts:read": "Read account data"},
			},
		},
		{
			name: "extensions inlined",
			scheme: &SecurityScheme{
				Type: "apiKey",
				Name: "api_key",
				In:   "header",
				Extra: map[string]any{
					"x-example":    "sk_test_1234567890",
					"x-deprecated": false,
				},
			},
			want: map[string]any{
				"type":         "apiKey",
				"name":         "api_key",
				"in":           "header",
				"x-example":    "sk_test_1234567890",
				"x-deprecated": false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, marshalToMap(t, tt.scheme))
		})
	}
}

func TestSecuritySchemeUnmarshalJSON(t *testing.T) {
	t.Run("apiKey scheme", func(t *testing.T) {
		var scheme SecurityScheme
		input := `{"type":"apiKey","name":"api_key","in":"header","description":"API key authentication"}`
		require.NoError(t, json.Unmarshal([]byte(input), &scheme))

		assert.Equal(t, "apiKey", scheme.Type)
		assert.Equal(t, "api_key", scheme.Name)
		assert.Equal(t, "header", scheme.In)
		assert.Equal(t, "API key authentication", scheme.Description)
		assert.Nil(t, scheme.Extra)
	})

	t.Run("oauth2 password flow", func(t *testing.T) {
		var scheme SecurityScheme
		input := `{"type":"oauth2","flow":"password","tokenUrl":"https://example.com/oauth/token","scopes":{"read":"Read access"}}`
		require.NoError(t, json.Unmarshal([]byte(input), &scheme))

		assert.Equal(t, "oauth2", scheme.Type)
		assert.Equal(t, "password", scheme.Flow)
		assert.Equal(t, "https://example.com/oauth/token", scheme.TokenURL)
		assert.Equal(t, map[string]string{"read": "Read access"}, scheme.Scopes)
	})

	t.Run("x- extensions land in Extra", func(t *testing.T) {
		var scheme SecurityScheme
		input := `{"type":"apiKey","name":"api_key","in":"header","x-example":"sk_test_1234567890","x-deprecated":false}`
		require.NoError(t, json.Unmarshal([]byte(input), &scheme))

		assert.Equal(t, map[string]any{
			"x-example":    "sk_test_1234567890",
			"x-deprecated": false,
		}, scheme.Extra)
	})
}

func TestSecurityJSONRoundTrip(t *testing.T) {
	t.Run("scheme", func(t *testing.T) {
		original := &SecurityScheme{
			Type:             "oauth2",
			Flow:             "accessCode",
			AuthorizationURL: "https://example.com/oauth/authorize",
			TokenURL:         "https://example.com/oauth/token",
			Description:      "OAuth2 authentication",
			Scopes: map[string]string{
				"accounts:read":  "Read account data",
				"accounts:write": "Modify account data",
			},
			Extra: map[string]any{"x-token-ttl": float64(3600)},
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded SecurityScheme
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, equalSecurityScheme(original, &decoded))
	})

	t.Run("requirement", func(t *testing.T) {
		original := SecurityRequirement{
			"oauth": {"accounts:read", "accounts:write"},
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded SecurityRequirement
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})
}
