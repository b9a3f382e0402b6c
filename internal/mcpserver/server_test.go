package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, paginate(items, 0, 3))
	assert.Equal(t, []int{3, 4, 5}, paginate(items, 2, 10))
	assert.Nil(t, paginate(items, 5, 3))
	assert.Nil(t, paginate(items, -1, 3))
	assert.Nil(t, paginate([]int(nil), 0, 3))

	// Zero limit falls back to the configured default.
	assert.Equal(t, items, paginate(items, 0, 0))

	orig := cfg.MaxLimit
	cfg.MaxLimit = 2
	defer func() { cfg.MaxLimit = orig }()
	assert.Equal(t, []int{1, 2}, paginate(items, 0, 100))
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	require.NotNil(t, s)
	assert.Len(t, s, 0)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))

	err := errors.New("failed to open /home/alice/specs/users.yaml: permission denied")
	assert.Equal(t, "failed to open <path>: permission denied", sanitizeError(err))

	err = errors.New("duplicate operationId listAccounts")
	assert.Equal(t, "duplicate operationId listAccounts", sanitizeError(err))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	require.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom", text.Text)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0 roles", formatCount(0, "role"))
	assert.Equal(t, "1 role", formatCount(1, "role"))
	assert.Equal(t, "4 roles", formatCount(4, "role"))
}

func TestGroupAndSort(t *testing.T) {
	items := []operationSummary{
		{Method: "get", Tags: []string{"accounts"}},
		{Method: "get", Tags: []string{"accounts", "admin"}},
		{Method: "post", Tags: []string{"invoices"}},
	}

	byTag := groupAndSort(items, func(op operationSummary) []string { return op.Tags })
	require.Len(t, byTag, 3)
	assert.Equal(t, groupCount{Key: "accounts", Count: 2}, byTag[0])
	// Ties are broken alphabetically.
	assert.Equal(t, groupCount{Key: "admin", Count: 1}, byTag[1])
	assert.Equal(t, groupCount{Key: "invoices", Count: 1}, byTag[2])

	byMethod := groupAndSort(items, func(op operationSummary) []string { return []string{op.Method} })
	require.Len(t, byMethod, 2)
	assert.Equal(t, groupCount{Key: "get", Count: 2}, byMethod[0])
}

func TestValidateGroupBy(t *testing.T) {
	allowed := []string{"tag", "method"}
	assert.NoError(t, validateGroupBy("", allowed))
	assert.NoError(t, validateGroupBy("tag", allowed))
	assert.NoError(t, validateGroupBy("METHOD", allowed))

	err := validateGroupBy("path", allowed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag, method")
}
