package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionError(t *testing.T) {
	t.Run("message variants", func(t *testing.T) {
		tests := []struct {
			name string
			err  *VersionError
			want string
		}{
			{"all fields", &VersionError{Source: "billing-service.yaml", Value: "0.x.5", Component: "x"},
				`malformed version "0.x.5" in billing-service.yaml: non-numeric component "x"`},
			{"empty", &VersionError{}, "malformed version"},
			{"no source", &VersionError{Value: "1.two", Component: "two"},
				`malformed version "1.two": non-numeric component "two"`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.EqualError(t, tt.err, tt.want)
			})
		}
	})

	t.Run("constructor", func(t *testing.T) {
		err := NewVersionError("users.yaml", "1.2.beta", "beta")
		assert.Equal(t, &VersionError{Source: "users.yaml", Value: "1.2.beta", Component: "beta"}, err)
	})

	t.Run("sentinel matching", func(t *testing.T) {
		err := &VersionError{Value: "a.b"}
		assert.Nil(t, err.Unwrap())
		assert.ErrorIs(t, err, ErrMalformedVersion)
		assert.NotErrorIs(t, err, ErrConfig)
		assert.NotErrorIs(t, err, ErrNoDocument)
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		err := fmt.Errorf("merger: %w", &VersionError{Source: "svc.yaml", Value: "1.oops"})
		var verErr *VersionError
		require.ErrorAs(t, err, &verErr)
		assert.Equal(t, "svc.yaml", verErr.Source)
		assert.Equal(t, "1.oops", verErr.Value)
	})
}

func TestResourceLimitError(t *testing.T) {
	t.Run("message variants", func(t *testing.T) {
		tests := []struct {
			name string
			err  *ResourceLimitError
			want string
		}{
			{"all fields",
				&ResourceLimitError{ResourceType: "schema_depth", Limit: 100, Actual: 101, Message: "schema nesting too deep"},
				"resource limit exceeded: schema_depth (limit: 100, actual: 101): schema nesting too deep"},
			{"limit only", &ResourceLimitError{ResourceType: "walk_depth", Limit: 50},
				"resource limit exceeded: walk_depth (limit: 50)"},
			{"empty", &ResourceLimitError{}, "resource limit exceeded"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.EqualError(t, tt.err, tt.want)
			})
		}
	})

	t.Run("sentinel matching", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "schema_depth"}
		assert.Nil(t, err.Unwrap())
		assert.ErrorIs(t, err, ErrResourceLimit)
		assert.NotErrorIs(t, err, ErrMalformedVersion)
	})
}

func TestConfigError(t *testing.T) {
	t.Run("message variants", func(t *testing.T) {
		tests := []struct {
			name string
			err  *ConfigError
			want string
		}{
			// empty-string Value is non-nil, so it shows up
			{"all fields",
				&ConfigError{Option: "WithSkeletonFile", Value: "", Message: "skeleton path cannot be empty", Cause: errors.New("underlying error")},
				"configuration error for WithSkeletonFile (value: ): skeleton path cannot be empty: underlying error"},
			{"empty", &ConfigError{}, "configuration error"},
			{"option only", &ConfigError{Option: "WithRoles"}, "configuration error for WithRoles"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.EqualError(t, tt.err, tt.want)
			})
		}
	})

	t.Run("unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		assert.Same(t, cause, (&ConfigError{Cause: cause}).Unwrap())
		assert.Nil(t, (&ConfigError{}).Unwrap())
	})

	t.Run("sentinel matching", func(t *testing.T) {
		assert.ErrorIs(t, &ConfigError{Message: "test"}, ErrConfig)
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		err := fmt.Errorf("scoper: invalid options: %w", &ConfigError{Option: "WithFeatures"})
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "WithFeatures", cfgErr.Option)
	})
}

func TestSentinelWrapping(t *testing.T) {
	t.Run("wrapped sentinels still match", func(t *testing.T) {
		err := fmt.Errorf("parser: %w: 3.0.3 (only 2.0 is supported)", ErrUnsupportedVersion)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
		assert.EqualError(t, err, "parser: unsupported document version: 3.0.3 (only 2.0 is supported)")

		assert.ErrorIs(t, fmt.Errorf("parser: %w: no swagger field", ErrVersionNotDetected), ErrVersionNotDetected)
		assert.ErrorIs(t, fmt.Errorf("merger: skeleton: %w", ErrNoDocument), ErrNoDocument)
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		sentinels := []error{
			ErrNoDocument,
			ErrVersionNotDetected,
			ErrUnsupportedVersion,
			ErrMalformedVersion,
			ErrResourceLimit,
			ErrConfig,
		}
		for i, a := range sentinels {
			for j, b := range sentinels {
				if i != j {
					assert.NotErrorIs(t, a, b)
				}
			}
		}
	})
}
