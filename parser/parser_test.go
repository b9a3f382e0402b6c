package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	result, err := New().Parse("../testdata/users-service.yaml")
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Empty(t, result.Errors)

	doc := result.Document
	require.NotNil(t, doc)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Users API", doc.Info.Title)
	assert.Equal(t, "1.2.0", doc.Info.Version)
	assert.Equal(t, "/users", doc.BasePath)
}

func TestParseOperationDetails(t *testing.T) {
	result, err := New().Parse("../testdata/users-service.yaml")
	require.NoError(t, err)

	doc := result.Document
	accounts := doc.Paths["/accounts"]
	require.NotNil(t, accounts)
	require.NotNil(t, accounts.Get)
	assert.Equal(t, "listAccounts", accounts.Get.OperationID)

	require.NotNil(t, accounts.Post)
	assert.Equal(t, []string{"getAccount"}, accounts.Post.DependencyOperationIDs())

	assert.Contains(t, doc.Definitions, "Account")
}

func TestParseErrors(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		_, err := New().Parse("nonexistent.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("invalid: yaml: content: ["))
		assert.Error(t, err)
	})

	t.Run("missing version field", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("info:\n  title: Test API\n  version: 1.0.0\npaths: {}\n"))
		assert.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("swagger: \"1.2\"\ninfo:\n  title: Test API\n  version: 1.0.0\npaths: {}\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "unsupported document version")
	})
}

func TestParseJSONFile(t *testing.T) {
	jsonData := `{
		"swagger": "2.0",
		"info": {"title": "Test API", "version": "1.0.0"},
		"paths": {}
	}`
	path := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonData), 0600))

	result, err := New().Parse(path)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "Test API", result.Document.Info.Title)
}

func TestParseAbsolutePath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	result, err := New().Parse(filepath.Join(cwd, "../testdata/billing-service.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Billing API", result.Document.Info.Title)
}

func TestParseResultSourcePath(t *testing.T) {
	t.Run("Parse records the file path", func(t *testing.T) {
		result, err := New().Parse("../testdata/users-service.yaml")
		require.NoError(t, err)
		assert.Equal(t, "../testdata/users-service.yaml", result.SourcePath)
	})

	t.Run("ParseBytes records a synthetic path", func(t *testing.T) {
		result, err := New().ParseBytes([]byte("swagger: \"2.0\"\ninfo:\n  title: Test\n  version: 1.0.0\npaths: {}\n"))
		require.NoError(t, err)
		assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
	})

	t.Run("ParseReader records a synthetic path", func(t *testing.T) {
		file, err := os.Open("../testdata/users-service.yaml")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		result, err := New().ParseReader(file)
		require.NoError(t, err)
		assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	})
}

func TestParseResultCopy(t *testing.T) {
	original, err := ParseWithOptions(
		WithFilePath("../testdata/users-service.yaml"),
		WithValidateStructure(true),
	)
	require.NoError(t, err)

	copied := original.Copy()
	require.NotNil(t, copied)

	assert.Equal(t, original.SourcePath, copied.SourcePath)
	assert.Equal(t, original.SourceFormat, copied.SourceFormat)
	assert.Len(t, copied.Errors, len(original.Errors))
	assert.Len(t, copied.Warnings, len(original.Warnings))

	// mutations to the copy must not reach the original
	copied.Document.Info.Title = "Modified API"
	assert.Equal(t, "Users API", original.Document.Info.Title)

	copied.Document.Paths["/extra"] = &PathItem{}
	assert.NotContains(t, original.Document.Paths, "/extra")

	delete(copied.Document.Definitions, "Account")
	assert.Contains(t, original.Document.Definitions, "Account")
}

func TestParseResultCopyNil(t *testing.T) {
	assert.Nil(t, (*ParseResult)(nil).Copy())
}

func TestParseResultCopyPreservesMetadata(t *testing.T) {
	original, err := ParseWithOptions(WithFilePath("../testdata/users-service.yaml"))
	require.NoError(t, err)

	copied := original.Copy()
	require.NotNil(t, copied)

	assert.Equal(t, original.LoadTime, copied.LoadTime)
	assert.Equal(t, original.SourceSize, copied.SourceSize)
	assert.Equal(t, original.Stats, copied.Stats)
}
