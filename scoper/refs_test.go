package scoper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/parser"
)

func TestDefinitionName(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{
			name:     "plain definitions ref",
			ref:      "#/definitions/Account",
			expected: "Account",
		},
		{
			name:     "URL-encoded ref",
			ref:      "%23%2Fdefinitions%2FAccount",
			expected: "Account",
		},
		{
			name:     "encoded name survives as written",
			ref:      "#/definitions/Foo%20Bar",
			expected: "Foo%20Bar",
		},
		{
			name:     "parameters table ref ignored",
			ref:      "#/parameters/PageParam",
			expected: "",
		},
		{
			name:     "responses table ref ignored",
			ref:      "#/responses/NotFound",
			expected: "",
		},
		{
			name:     "OAS3 components ref ignored",
			ref:      "#/components/schemas/User",
			expected: "",
		},
		{
			name:     "empty ref",
			ref:      "",
			expected: "",
		},
		{
			name:     "plain string",
			ref:      "Account",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, definitionName(tt.ref))
		})
	}
}

func TestRefCollectorSchema(t *testing.T) {
	schema := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"owner": {Ref: "#/definitions/Owner"},
			"tags": {
				Type:  "array",
				Items: &parser.Schema{Ref: "#/definitions/Tag"},
			},
			"metadata": {
				Type: "object",
				Properties: map[string]*parser.Schema{
					"region": {Ref: "#/definitions/Region"},
				},
			},
		},
		AllOf: []*parser.Schema{
			{Ref: "#/definitions/Base"},
			{Type: "object"},
		},
		Not: &parser.Schema{Ref: "#/definitions/Excluded"},
	}

	c := newRefCollector()
	c.collectSchema(schema)

	assert.Equal(t,
		[]string{"Base", "Excluded", "Owner", "Region", "Tag"},
		maputil.SortedKeys(c.names))
}

func TestRefCollectorSchemaCycle(t *testing.T) {
	node := &parser.Schema{
		Ref:        "#/definitions/Node",
		Properties: map[string]*parser.Schema{},
	}
	node.Properties["next"] = node

	sibling := &parser.Schema{Ref: "#/definitions/Sibling"}
	sibling.Properties = map[string]*parser.Schema{"back": node}
	node.Properties["sibling"] = sibling

	c := newRefCollector()
	c.collectSchema(node)

	assert.Equal(t, []string{"Node", "Sibling"}, maputil.SortedKeys(c.names))
}

func TestRefCollectorRawValues(t *testing.T) {
	tests := []struct {
		name     string
		schema   *parser.Schema
		expected []string
	}{
		{
			name: "items as raw map with direct ref",
			schema: &parser.Schema{
				Type:  "array",
				Items: map[string]any{"$ref": "#/definitions/Feather"},
			},
			expected: []string{"Feather"},
		},
		{
			name: "items as raw map with nested properties",
			schema: &parser.Schema{
				Type: "array",
				Items: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"owner": map[string]any{"$ref": "#/definitions/Owner"},
						"count": map[string]any{"type": "integer"},
					},
				},
			},
			expected: []string{"Owner"},
		},
		{
			name: "items as raw slice",
			schema: &parser.Schema{
				Type: "array",
				Items: []any{
					map[string]any{"$ref": "#/definitions/First"},
					map[string]any{"$ref": "#/definitions/Second"},
				},
			},
			expected: []string{"First", "Second"},
		},
		{
			name: "additionalProperties as raw map",
			schema: &parser.Schema{
				Type:                 "object",
				AdditionalProperties: map[string]any{"$ref": "#/definitions/Value"},
			},
			expected: []string{"Value"},
		},
		{
			name: "additionalProperties as bool contributes nothing",
			schema: &parser.Schema{
				Type:                 "object",
				AdditionalProperties: true,
			},
			expected: []string{},
		},
		{
			name: "raw allOf branches",
			schema: &parser.Schema{
				Items: map[string]any{
					"allOf": []any{
						map[string]any{"$ref": "#/definitions/Base"},
						map[string]any{"$ref": "#/definitions/Extension"},
					},
				},
			},
			expected: []string{"Base", "Extension"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRefCollector()
			c.collectSchema(tt.schema)
			assert.Equal(t, tt.expected, maputil.SortedKeys(c.names))
		})
	}
}

func TestRefCollectorRawDepthCap(t *testing.T) {
	buildNested := func(levels int) map[string]any {
		v := map[string]any{"$ref": "#/definitions/Buried"}
		for i := 0; i < levels; i++ {
			v = map[string]any{"nested": v}
		}
		return v
	}

	t.Run("within limit", func(t *testing.T) {
		c := newRefCollector()
		c.collectSchema(&parser.Schema{Items: buildNested(10)})
		assert.Equal(t, []string{"Buried"}, maputil.SortedKeys(c.names))
	})

	t.Run("beyond limit", func(t *testing.T) {
		c := newRefCollector()
		c.collectSchema(&parser.Schema{Items: buildNested(maxRawRefDepth + 10)})
		assert.Empty(t, c.names)
	})
}

func TestRefCollectorOperation(t *testing.T) {
	op := &parser.Operation{
		OperationID: "createAccount",
		Parameters: []*parser.Parameter{
			{
				Name:   "body",
				In:     "body",
				Schema: &parser.Schema{Ref: "#/definitions/NewAccount"},
			},
			{Name: "verbose", In: "query", Type: "boolean"},
		},
		Responses: &parser.Responses{
			Default: &parser.Response{
				Description: "Error",
				Schema:      &parser.Schema{Ref: "#/definitions/ApiError"},
			},
			Codes: map[string]*parser.Response{
				"201": {
					Description: "Created",
					Schema:      &parser.Schema{Ref: "#/definitions/Account"},
				},
			},
		},
	}

	c := newRefCollector()
	c.collectOperation(op)

	assert.Equal(t,
		[]string{"Account", "ApiError", "NewAccount"},
		maputil.SortedKeys(c.names))
}

func TestRefCollectorPathItem(t *testing.T) {
	item := &parser.PathItem{
		Parameters: []*parser.Parameter{
			{
				Name:   "filter",
				In:     "body",
				Schema: &parser.Schema{Ref: "#/definitions/Filter"},
			},
		},
		Get: &parser.Operation{
			OperationID: "listThings",
			Responses: &parser.Responses{
				Codes: map[string]*parser.Response{
					"200": {
						Description: "OK",
						Schema:      &parser.Schema{Ref: "#/definitions/ThingList"},
					},
				},
			},
		},
		Post: &parser.Operation{
			OperationID: "createThing",
			Parameters: []*parser.Parameter{
				{
					Name:   "body",
					In:     "body",
					Schema: &parser.Schema{Ref: "#/definitions/NewThing"},
				},
			},
		},
	}

	c := newRefCollector()
	c.collectPathItem(item)

	assert.Equal(t,
		[]string{"Filter", "NewThing", "ThingList"},
		maputil.SortedKeys(c.names))
}

func TestRefCollectorNilSafety(t *testing.T) {
	c := newRefCollector()
	c.collectPathItem(nil)
	c.collectOperation(nil)
	c.collectResponses(nil)
	c.collectResponse(nil)
	c.collectParameter(nil)
	c.collectSchema(nil)
	c.collectSchemaValue(nil)
	assert.Empty(t, c.names)
}

// Reference-shaped text in descriptions, examples, and enums is plain data,
// not a reference. Only structural reference positions count.
func TestRefCollectorIgnoresNonSchemaText(t *testing.T) {
	schema := &parser.Schema{
		Type:        "object",
		Description: "See #/definitions/Bogus for details",
		Example:     map[string]any{"$ref": "#/definitions/ExampleOnly"},
		Default:     "#/definitions/DefaultOnly",
		Enum:        []any{"#/definitions/EnumOnly"},
		Properties: map[string]*parser.Schema{
			"real": {Ref: "#/definitions/Real"},
		},
	}

	c := newRefCollector()
	c.collectSchema(schema)

	assert.Equal(t, []string{"Real"}, maputil.SortedKeys(c.names))
}

func TestRefCollectorSharedSchemaScannedOnce(t *testing.T) {
	shared := &parser.Schema{Ref: "#/definitions/Shared"}
	c := newRefCollector()
	for i := 0; i < 3; i++ {
		c.collectSchema(shared)
	}
	assert.Equal(t, []string{"Shared"}, maputil.SortedKeys(c.names))
	assert.Len(t, c.visited, 1, "repeat visits should not add entries")
}
