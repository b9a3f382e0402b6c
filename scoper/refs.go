package scoper

import (
	"net/url"
	"strings"

	"github.com/erraggy/scopetools/parser"
)

// definitionRefPrefix is the reference prefix for the definitions table.
const definitionRefPrefix = "#/definitions/"

// maxRawRefDepth is the maximum recursion depth when scanning raw map
// values. This prevents stack overflow from malformed or circular
// structures left untyped by unmarshaling.
const maxRawRefDepth = 100

// refCollector gathers the names of definitions referenced from document
// nodes. It walks typed structures rather than scanning serialized text, so
// reference-shaped strings inside descriptions or example values are never
// mistaken for references. Visited schemas are tracked so reference cycles
// terminate.
type refCollector struct {
	names   map[string]bool
	visited map[*parser.Schema]bool
}

// newRefCollector creates a refCollector ready for use.
func newRefCollector() *refCollector {
	return &refCollector{
		names:   make(map[string]bool),
		visited: make(map[*parser.Schema]bool),
	}
}

// addRef records the definition name a reference token points at.
// References to other tables (parameters, responses) are ignored.
func (c *refCollector) addRef(ref string) {
	if name := definitionName(ref); name != "" {
		c.names[name] = true
	}
}

// definitionName extracts the definition name from a reference token,
// or "" if the token does not point at the definitions table.
// Handles both plain and URL-encoded references.
func definitionName(ref string) string {
	if strings.HasPrefix(ref, definitionRefPrefix) {
		return strings.TrimPrefix(ref, definitionRefPrefix)
	}

	decoded, err := url.PathUnescape(ref)
	if err == nil && strings.HasPrefix(decoded, definitionRefPrefix) {
		return strings.TrimPrefix(decoded, definitionRefPrefix)
	}

	return ""
}

// collectPathItem gathers references from a path item's shared parameters
// and every operation it defines.
func (c *refCollector) collectPathItem(item *parser.PathItem) {
	if item == nil {
		return
	}

	c.addRef(item.Ref)

	for _, param := range item.Parameters {
		c.collectParameter(param)
	}

	for _, op := range parser.GetOperations(item) {
		c.collectOperation(op)
	}
}

// collectOperation gathers references from an operation's parameters and
// responses.
func (c *refCollector) collectOperation(op *parser.Operation) {
	if op == nil {
		return
	}

	for _, param := range op.Parameters {
		c.collectParameter(param)
	}

	c.collectResponses(op.Responses)
}

// collectResponses gathers references from a responses container.
func (c *refCollector) collectResponses(responses *parser.Responses) {
	if responses == nil {
		return
	}

	if responses.Default != nil {
		c.collectResponse(responses.Default)
	}
	for _, resp := range responses.Codes {
		c.collectResponse(resp)
	}
}

// collectResponse gathers references from a single response.
func (c *refCollector) collectResponse(resp *parser.Response) {
	if resp == nil {
		return
	}

	c.addRef(resp.Ref)

	if resp.Schema != nil {
		c.collectSchema(resp.Schema)
	}
}

// collectParameter gathers references from a parameter. Only body
// parameters carry a schema; simple-typed parameters contribute nothing.
func (c *refCollector) collectParameter(param *parser.Parameter) {
	if param == nil {
		return
	}

	c.addRef(param.Ref)

	if param.Schema != nil {
		c.collectSchema(param.Schema)
	}
}

// collectSchema recursively gathers references from a schema body,
// including nested properties, array items, and composition branches.
func (c *refCollector) collectSchema(schema *parser.Schema) {
	if schema == nil || c.visited[schema] {
		return
	}
	c.visited[schema] = true

	c.addRef(schema.Ref)

	for _, prop := range schema.Properties {
		c.collectSchema(prop)
	}

	c.collectSchemaValue(schema.Items)
	c.collectSchemaValue(schema.AdditionalProperties)

	for _, s := range schema.AllOf {
		c.collectSchema(s)
	}
	for _, s := range schema.AnyOf {
		c.collectSchema(s)
	}
	for _, s := range schema.OneOf {
		c.collectSchema(s)
	}
	if schema.Not != nil {
		c.collectSchema(schema.Not)
	}
}

// collectSchemaValue handles polymorphic schema positions (Items,
// AdditionalProperties) that may hold a typed schema, a slice of schemas,
// a boolean, or a raw value left untyped by unmarshaling.
func (c *refCollector) collectSchemaValue(v any) {
	switch t := v.(type) {
	case *parser.Schema:
		c.collectSchema(t)
	case []*parser.Schema:
		for _, s := range t {
			c.collectSchema(s)
		}
	case map[string]any:
		c.collectRawValue(t, 0)
	case []any:
		c.collectRawValue(t, 0)
	}
}

// collectRawValue scans an untyped value for $ref keys. Raw values only
// appear in schema positions, so every nested map and slice is treated as
// schema-shaped.
func (c *refCollector) collectRawValue(v any, depth int) {
	if depth > maxRawRefDepth {
		return
	}

	switch t := v.(type) {
	case map[string]any:
		if ref, ok := t["$ref"].(string); ok {
			c.addRef(ref)
		}
		for key, nested := range t {
			if key == "$ref" {
				continue
			}
			c.collectRawValue(nested, depth+1)
		}
	case []any:
		for _, item := range t {
			c.collectRawValue(item, depth+1)
		}
	}
}
