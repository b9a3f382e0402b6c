package walker

import (
	"fmt"

	"github.com/erraggy/scopetools/internal/httputil"
	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/parser"
)

// walkDocument traverses the document root and each top-level section.
func (w *Walker) walkDocument(doc *parser.Document) error {
	if w.onDocument != nil {
		if !w.handleAction(w.onDocument(doc, "$")) {
			return nil
		}
	}

	// Info
	if doc.Info != nil && w.onInfo != nil {
		if !w.handleAction(w.onInfo(doc.Info, "$.info")) {
			if w.stopped {
				return nil
			}
		}
	}

	// ExternalDocs (root level)
	if doc.ExternalDocs != nil && w.onExternalDocs != nil {
		if !w.handleAction(w.onExternalDocs(doc.ExternalDocs, "$.externalDocs")) {
			if w.stopped {
				return nil
			}
		}
	}

	// Paths
	if doc.Paths != nil {
		if err := w.walkPaths(doc.Paths, "$.paths"); err != nil {
			return err
		}
	}

	// Definitions
	for _, name := range maputil.SortedKeys(doc.Definitions) {
		if w.stopped {
			return nil
		}
		if schema := doc.Definitions[name]; schema != nil {
			if err := w.walkSchema(schema, "$.definitions['"+name+"']", 0); err != nil {
				return err
			}
		}
	}

	// Reusable parameters
	for _, name := range maputil.SortedKeys(doc.Parameters) {
		if w.stopped {
			return nil
		}
		if param := doc.Parameters[name]; param != nil {
			if err := w.walkParameter(param, "$.parameters['"+name+"']"); err != nil {
				return err
			}
		}
	}

	// Reusable responses; the map key stands in for the status code
	for _, name := range maputil.SortedKeys(doc.Responses) {
		if w.stopped {
			return nil
		}
		if resp := doc.Responses[name]; resp != nil {
			if err := w.walkResponse(name, resp, "$.responses['"+name+"']"); err != nil {
				return err
			}
		}
	}

	// SecurityDefinitions
	for _, name := range maputil.SortedKeys(doc.SecurityDefinitions) {
		if w.stopped {
			return nil
		}
		if ss := doc.SecurityDefinitions[name]; ss != nil && w.onSecurityScheme != nil {
			w.handleAction(w.onSecurityScheme(name, ss, "$.securityDefinitions['"+name+"']"))
		}
	}

	// Tags
	for i, tag := range doc.Tags {
		if w.stopped {
			return nil
		}
		if tag != nil && w.onTag != nil {
			w.handleAction(w.onTag(tag, fmt.Sprintf("$.tags[%d]", i)))
		}
	}

	return nil
}

// walkPaths walks all paths in sorted order.
func (w *Walker) walkPaths(paths parser.Paths, basePath string) error {
	for _, pathTemplate := range maputil.SortedKeys(paths) {
		if w.stopped {
			return nil
		}
		pathItem := paths[pathTemplate]
		if pathItem == nil {
			continue
		}

		itemPath := basePath + "['" + pathTemplate + "']"

		continueToChildren := true
		if w.onPath != nil {
			continueToChildren = w.handleAction(w.onPath(pathTemplate, pathItem, itemPath))
			if w.stopped {
				return nil
			}
		}

		if continueToChildren {
			if err := w.walkPathItem(pathItem, itemPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkPathItem walks a single PathItem.
func (w *Walker) walkPathItem(pathItem *parser.PathItem, basePath string) error {
	continueToChildren := true
	if w.onPathItem != nil {
		continueToChildren = w.handleAction(w.onPathItem(pathItem, basePath))
		if w.stopped {
			return nil
		}
	}

	if !continueToChildren {
		return nil
	}

	// PathItem-level parameters
	for i, param := range pathItem.Parameters {
		if w.stopped {
			return nil
		}
		if err := w.walkParameter(param, fmt.Sprintf("%s.parameters[%d]", basePath, i)); err != nil {
			return err
		}
	}

	// Operations in specification method order
	ops := parser.GetOperations(pathItem)
	for _, method := range httputil.Methods {
		if w.stopped {
			return nil
		}
		if op := ops[method]; op != nil {
			if err := w.walkOperation(method, op, basePath+"."+method); err != nil {
				return err
			}
		}
	}

	return nil
}

// walkOperation walks a single Operation.
func (w *Walker) walkOperation(method string, op *parser.Operation, basePath string) error {
	continueToChildren := true
	if w.onOperation != nil {
		continueToChildren = w.handleAction(w.onOperation(method, op, basePath))
		if w.stopped {
			return nil
		}
	}

	if !continueToChildren {
		return nil
	}

	// ExternalDocs
	if op.ExternalDocs != nil && w.onExternalDocs != nil {
		w.handleAction(w.onExternalDocs(op.ExternalDocs, basePath+".externalDocs"))
		if w.stopped {
			return nil
		}
	}

	// Parameters
	for i, param := range op.Parameters {
		if w.stopped {
			return nil
		}
		if err := w.walkParameter(param, fmt.Sprintf("%s.parameters[%d]", basePath, i)); err != nil {
			return err
		}
	}

	// Responses
	if op.Responses != nil {
		if err := w.walkResponses(op.Responses, basePath+".responses"); err != nil {
			return err
		}
	}

	return nil
}

// walkResponses walks an operation's Responses.
func (w *Walker) walkResponses(responses *parser.Responses, basePath string) error {
	if responses.Default != nil {
		if err := w.walkResponse("default", responses.Default, basePath+".default"); err != nil {
			return err
		}
	}

	for _, code := range maputil.SortedKeys(responses.Codes) {
		if w.stopped {
			return nil
		}
		if resp := responses.Codes[code]; resp != nil {
			if err := w.walkResponse(code, resp, basePath+"['"+code+"']"); err != nil {
				return err
			}
		}
	}

	return nil
}

// walkResponse walks a single Response.
func (w *Walker) walkResponse(statusCode string, resp *parser.Response, basePath string) error {
	continueToChildren := true
	if w.onResponse != nil {
		continueToChildren = w.handleAction(w.onResponse(statusCode, resp, basePath))
		if w.stopped {
			return nil
		}
	}

	if !continueToChildren {
		return nil
	}

	// Headers are leaves: Swagger 2.0 headers describe simple types only
	for _, name := range maputil.SortedKeys(resp.Headers) {
		if w.stopped {
			return nil
		}
		if header := resp.Headers[name]; header != nil && w.onHeader != nil {
			w.handleAction(w.onHeader(name, header, basePath+".headers['"+name+"']"))
		}
	}

	if resp.Schema != nil {
		if err := w.walkSchema(resp.Schema, basePath+".schema", 0); err != nil {
			return err
		}
	}

	return nil
}

// walkParameter walks a Parameter. Body parameters carry a schema; other
// parameter kinds are leaves.
func (w *Walker) walkParameter(param *parser.Parameter, basePath string) error {
	if param == nil {
		return nil
	}

	continueToChildren := true
	if w.onParameter != nil {
		continueToChildren = w.handleAction(w.onParameter(param, basePath))
		if w.stopped {
			return nil
		}
	}

	if !continueToChildren {
		return nil
	}

	if param.Schema != nil {
		if err := w.walkSchema(param.Schema, basePath+".schema", 0); err != nil {
			return err
		}
	}

	return nil
}

// walkSchema walks a Schema and all its nested schemas.
func (w *Walker) walkSchema(schema *parser.Schema, basePath string, depth int) error {
	if schema == nil || w.stopped {
		return nil
	}

	// Depth limit
	if depth > w.maxDepth {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped("depth", schema, basePath)
		}
		return nil
	}

	// Cycle: the same schema pointer is already on the recursion stack.
	// Schemas shared across branches without a cycle are visited once per
	// reference.
	if w.visitedSchemas[schema] {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped("cycle", schema, basePath)
		}
		return nil
	}

	w.visitedSchemas[schema] = true
	defer delete(w.visitedSchemas, schema)

	if w.onSchema != nil {
		if !w.handleAction(w.onSchema(schema, basePath)) {
			return nil
		}
	}

	if err := w.walkSchemaProperties(schema, basePath, depth); err != nil {
		return err
	}
	if err := w.walkSchemaItems(schema, basePath, depth); err != nil {
		return err
	}
	return w.walkSchemaComposition(schema, basePath, depth)
}

// walkSchemaProperties walks object-related schema keywords.
func (w *Walker) walkSchemaProperties(schema *parser.Schema, basePath string, depth int) error {
	for _, name := range maputil.SortedKeys(schema.Properties) {
		if w.stopped {
			return nil
		}
		if prop := schema.Properties[name]; prop != nil {
			if err := w.walkSchema(prop, basePath+".properties['"+name+"']", depth+1); err != nil {
				return err
			}
		}
	}

	// additionalProperties holds *Schema, bool, or a raw map when the
	// document was parsed from YAML; only typed schemas are descended.
	if addProps, ok := schema.AdditionalProperties.(*parser.Schema); ok {
		if err := w.walkSchema(addProps, basePath+".additionalProperties", depth+1); err != nil {
			return err
		}
	}

	return nil
}

// walkSchemaItems walks array-related schema keywords. Items holds *Schema,
// []*Schema, or a raw value when the document was parsed from YAML; only
// typed schemas are descended.
func (w *Walker) walkSchemaItems(schema *parser.Schema, basePath string, depth int) error {
	switch items := schema.Items.(type) {
	case *parser.Schema:
		if err := w.walkSchema(items, basePath+".items", depth+1); err != nil {
			return err
		}
	case []*parser.Schema:
		for i, item := range items {
			if w.stopped {
				return nil
			}
			if item != nil {
				if err := w.walkSchema(item, fmt.Sprintf("%s.items[%d]", basePath, i), depth+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// walkSchemaComposition walks allOf/anyOf/oneOf/not keywords.
func (w *Walker) walkSchemaComposition(schema *parser.Schema, basePath string, depth int) error {
	for i, sub := range schema.AllOf {
		if w.stopped {
			return nil
		}
		if sub != nil {
			if err := w.walkSchema(sub, fmt.Sprintf("%s.allOf[%d]", basePath, i), depth+1); err != nil {
				return err
			}
		}
	}

	for i, sub := range schema.AnyOf {
		if w.stopped {
			return nil
		}
		if sub != nil {
			if err := w.walkSchema(sub, fmt.Sprintf("%s.anyOf[%d]", basePath, i), depth+1); err != nil {
				return err
			}
		}
	}

	for i, sub := range schema.OneOf {
		if w.stopped {
			return nil
		}
		if sub != nil {
			if err := w.walkSchema(sub, fmt.Sprintf("%s.oneOf[%d]", basePath, i), depth+1); err != nil {
				return err
			}
		}
	}

	if schema.Not != nil {
		return w.walkSchema(schema.Not, basePath+".not", depth+1)
	}

	return nil
}
