// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scopetools/parser"
)

// NewSimpleDocument creates a minimal Swagger 2.0 document for testing.
// Contains only required fields: swagger, info, host, basePath, schemes, paths.
func NewSimpleDocument() *parser.Document {
	return &parser.Document{
		Swagger: "2.0",
		Info: &parser.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Host:     "api.example.com",
		BasePath: "/v1",
		Schemes:  []string{"https"},
		Paths:    make(map[string]*parser.PathItem),
	}
}

// NewDetailedDocument creates a complete Swagger 2.0 document with common
// features for testing. Includes paths, operations, and definitions.
func NewDetailedDocument() *parser.Document {
	doc := NewSimpleDocument()
	doc.Definitions = map[string]*parser.Schema{
		"Account": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"id":   {Type: "integer"},
				"name": {Type: "string"},
			},
		},
	}
	doc.Paths = map[string]*parser.PathItem{
		"/accounts": {
			Get: &parser.Operation{
				Summary:     "List accounts",
				OperationID: "listAccounts",
			},
		},
	}
	return doc
}

// NewServiceDocument creates a Swagger 2.0 document shaped like a service
// contribution: its own basePath, one tagged operation, and one definition.
// Useful for merge tests that combine several services into a master.
func NewServiceDocument(title, version, basePath, operationID string) *parser.Document {
	doc := NewSimpleDocument()
	doc.Info.Title = title
	doc.Info.Version = version
	doc.BasePath = basePath
	doc.Paths = map[string]*parser.PathItem{
		"/items": {
			Get: &parser.Operation{
				OperationID: operationID,
				Tags:        []string{title},
			},
		},
	}
	return doc
}

// WriteTempYAML marshals a document to YAML and writes it under t.TempDir,
// returning the file path. Cleanup happens when the test finishes.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()
	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling document to YAML: %v", err)
	}
	return writeTemp(t, "test.yaml", data)
}

// WriteTempJSON marshals a document to indented JSON and writes it under
// t.TempDir, returning the file path. Cleanup happens when the test finishes.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshaling document to JSON: %v", err)
	}
	return writeTemp(t, "test.json", data)
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
