package scoper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/parser"
)

// refTo builds a schema body that is a bare reference to a definition.
func refTo(name string) *parser.Schema {
	return &parser.Schema{Ref: "#/definitions/" + name}
}

func TestReachableDefinitions(t *testing.T) {
	tests := []struct {
		name        string
		definitions map[string]*parser.Schema
		seeds       []string
		expected    []string
	}{
		{
			name: "linear chain",
			definitions: map[string]*parser.Schema{
				"A": {Properties: map[string]*parser.Schema{"b": refTo("B")}},
				"B": {Properties: map[string]*parser.Schema{"c": refTo("C")}},
				"C": {Type: "object"},
			},
			seeds:    []string{"A"},
			expected: []string{"A", "B", "C"},
		},
		{
			name: "diamond",
			definitions: map[string]*parser.Schema{
				"A": {Properties: map[string]*parser.Schema{"b": refTo("B"), "c": refTo("C")}},
				"B": {Properties: map[string]*parser.Schema{"d": refTo("D")}},
				"C": {Properties: map[string]*parser.Schema{"d": refTo("D")}},
				"D": {Type: "object"},
			},
			seeds:    []string{"A"},
			expected: []string{"A", "B", "C", "D"},
		},
		{
			name: "cycle terminates",
			definitions: map[string]*parser.Schema{
				"A": {Properties: map[string]*parser.Schema{"b": refTo("B")}},
				"B": {Properties: map[string]*parser.Schema{"a": refTo("A")}},
				"C": {Type: "object"},
			},
			seeds:    []string{"A"},
			expected: []string{"A", "B"},
		},
		{
			name: "self reference terminates",
			definitions: map[string]*parser.Schema{
				"A": {Properties: map[string]*parser.Schema{"next": refTo("A")}},
			},
			seeds:    []string{"A"},
			expected: []string{"A"},
		},
		{
			name: "dangling target kept but not expanded",
			definitions: map[string]*parser.Schema{
				"A": {Properties: map[string]*parser.Schema{"ghost": refTo("Ghost")}},
			},
			seeds:    []string{"A"},
			expected: []string{"A", "Ghost"},
		},
		{
			name:        "dangling seed kept",
			definitions: map[string]*parser.Schema{},
			seeds:       []string{"Missing"},
			expected:    []string{"Missing"},
		},
		{
			name: "empty seeds reach nothing",
			definitions: map[string]*parser.Schema{
				"A": {Type: "object"},
			},
			seeds:    nil,
			expected: []string{},
		},
		{
			name: "unreferenced definitions excluded",
			definitions: map[string]*parser.Schema{
				"A":      {Properties: map[string]*parser.Schema{"b": refTo("B")}},
				"B":      {Type: "object"},
				"Orphan": {Properties: map[string]*parser.Schema{"a": refTo("A")}},
			},
			seeds:    []string{"A"},
			expected: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds := make(map[string]bool, len(tt.seeds))
			for _, name := range tt.seeds {
				seeds[name] = true
			}
			reachable := reachableDefinitions(tt.definitions, seeds)
			assert.Equal(t, tt.expected, maputil.SortedKeys(reachable))
		})
	}
}

func TestPruneDefinitions(t *testing.T) {
	doc := &parser.Document{
		Definitions: map[string]*parser.Schema{
			"Keep":    {Type: "object"},
			"Drop":    {Type: "object"},
			"AlsoOut": {Type: "string"},
		},
	}

	pruneDefinitions(doc, map[string]bool{"Keep": true, "NotPresent": true})

	assert.Equal(t, []string{"Keep"}, maputil.SortedKeys(doc.Definitions))
}

func TestHasOperations(t *testing.T) {
	tests := []struct {
		name     string
		item     *parser.PathItem
		expected bool
	}{
		{
			name:     "nil item",
			item:     nil,
			expected: false,
		},
		{
			name:     "empty item",
			item:     &parser.PathItem{},
			expected: false,
		},
		{
			name: "only shared parameters",
			item: &parser.PathItem{
				Parameters: []*parser.Parameter{{Name: "id", In: "path"}},
			},
			expected: false,
		},
		{
			name:     "only a reference",
			item:     &parser.PathItem{Ref: "#/paths/other"},
			expected: false,
		},
		{
			name:     "get operation",
			item:     &parser.PathItem{Get: &parser.Operation{OperationID: "listThings"}},
			expected: true,
		},
		{
			name:     "patch operation",
			item:     &parser.PathItem{Patch: &parser.Operation{OperationID: "patchThing"}},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasOperations(tt.item))
		})
	}
}

func TestPathRefSeeds(t *testing.T) {
	paths := parser.Paths{
		"/things": {
			Get: &parser.Operation{
				OperationID: "listThings",
				Responses: &parser.Responses{
					Codes: map[string]*parser.Response{
						"200": {Description: "OK", Schema: refTo("ThingList")},
					},
				},
			},
		},
		"/widgets": {
			Parameters: []*parser.Parameter{
				{Name: "body", In: "body", Schema: refTo("WidgetFilter")},
			},
			Post: &parser.Operation{
				OperationID: "createWidget",
				Parameters: []*parser.Parameter{
					{Name: "body", In: "body", Schema: refTo("NewWidget")},
				},
			},
		},
	}

	seeds := pathRefSeeds(paths)

	assert.Equal(t,
		[]string{"NewWidget", "ThingList", "WidgetFilter"},
		maputil.SortedKeys(seeds))
}
