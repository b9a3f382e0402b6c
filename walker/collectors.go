package walker

import (
	"strings"

	"github.com/erraggy/scopetools/parser"
)

// SchemaInfo describes one collected schema.
type SchemaInfo struct {
	Schema *parser.Schema

	// Name is the definition name for definition schemas and the property
	// name for named nested schemas. Anonymous schemas (array items,
	// composition branches) have no name.
	Name string

	// JSONPath is the full JSON path to the schema.
	JSONPath string

	// IsDefinition is true when the schema lives under $.definitions.
	IsDefinition bool
}

// SchemaCollector indexes the schemas found by a walk.
type SchemaCollector struct {
	// All, in traversal order.
	All []*SchemaInfo

	// Definitions holds only schemas under $.definitions.
	Definitions []*SchemaInfo

	// Inline holds the rest: parameter and response schemas and everything
	// nested inside them.
	Inline []*SchemaInfo

	// ByPath looks up a schema by JSON path.
	ByPath map[string]*SchemaInfo

	// ByName looks up named schemas. For top-level definitions the key is
	// the definition name ("Account"); for nested property schemas it is
	// the property name. A duplicated name keeps only the last occurrence.
	ByName map[string]*SchemaInfo
}

// CollectSchemas walks the document and indexes every schema it visits. The
// scoper's pruning pass starts from the Definitions slice.
func CollectSchemas(result *parser.ParseResult) (*SchemaCollector, error) {
	c := &SchemaCollector{
		All:         make([]*SchemaInfo, 0),
		Definitions: make([]*SchemaInfo, 0),
		Inline:      make([]*SchemaInfo, 0),
		ByPath:      make(map[string]*SchemaInfo),
		ByName:      make(map[string]*SchemaInfo),
	}

	err := Walk(result, WithSchemaHandler(func(schema *parser.Schema, path string) Action {
		info := &SchemaInfo{
			Schema:       schema,
			Name:         nameFromJSONPath(path),
			JSONPath:     path,
			IsDefinition: strings.HasPrefix(path, "$.definitions["),
		}

		c.All = append(c.All, info)
		c.ByPath[path] = info

		switch {
		case info.IsDefinition:
			c.Definitions = append(c.Definitions, info)
			if info.Name != "" {
				c.ByName[info.Name] = info
			}
		default:
			c.Inline = append(c.Inline, info)
		}
		return Continue
	}))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// nameFromJSONPath extracts the trailing map key from a JSON path, such as
// "Account" from "$.definitions['Account']" or "street" from
// "$.definitions['Address'].properties['street']". Paths ending in a field
// or index segment ("....schema", "....allOf[0]") have no name.
func nameFromJSONPath(path string) string {
	if !strings.HasSuffix(path, "']") {
		return ""
	}
	start := strings.LastIndex(path, "['")
	if start < 0 {
		return ""
	}
	return path[start+2 : len(path)-2]
}

// OperationInfo describes one collected operation.
type OperationInfo struct {
	Operation *parser.Operation

	// PathTemplate is the URL path template ("/accounts/{accountId}").
	PathTemplate string

	// Method is the lowercase HTTP method ("get", "post").
	Method string

	// JSONPath is the full JSON path to the operation.
	JSONPath string
}

// OperationCollector indexes the operations found by a walk.
type OperationCollector struct {
	// All, in traversal order.
	All []*OperationInfo

	// ByPath groups operations by path template.
	ByPath map[string][]*OperationInfo

	// ByMethod groups operations by HTTP method.
	ByMethod map[string][]*OperationInfo

	// ByTag groups operations by tag name. Multi-tag operations appear once
	// per tag; untagged operations are absent.
	ByTag map[string][]*OperationInfo
}

// CollectOperations walks the document and indexes every operation.
func CollectOperations(result *parser.ParseResult) (*OperationCollector, error) {
	c := &OperationCollector{
		All:      make([]*OperationInfo, 0),
		ByPath:   make(map[string][]*OperationInfo),
		ByMethod: make(map[string][]*OperationInfo),
		ByTag:    make(map[string][]*OperationInfo),
	}

	// Operations nest under their path entry, so the path handler records
	// the template the operation handler will attribute.
	var currentTemplate string
	err := Walk(result,
		WithPathHandler(func(pathTemplate string, pathItem *parser.PathItem, path string) Action {
			currentTemplate = pathTemplate
			return Continue
		}),
		WithOperationHandler(func(method string, op *parser.Operation, path string) Action {
			info := &OperationInfo{
				Operation:    op,
				PathTemplate: currentTemplate,
				Method:       method,
				JSONPath:     path,
			}

			c.All = append(c.All, info)
			c.ByPath[currentTemplate] = append(c.ByPath[currentTemplate], info)
			c.ByMethod[method] = append(c.ByMethod[method], info)
			for _, tag := range op.Tags {
				c.ByTag[tag] = append(c.ByTag[tag], info)
			}
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RefInfo describes one $ref occurrence.
type RefInfo struct {
	// Ref is the $ref value ("#/definitions/Account").
	Ref string

	// SourcePath is the JSON path where the ref appeared.
	SourcePath string

	// NodeType is the kind of node carrying the ref: "schema", "parameter",
	// "response", or "pathItem".
	NodeType string
}

// RefCollector indexes the $ref occurrences found by a walk.
type RefCollector struct {
	// All, in traversal order.
	All []*RefInfo

	// ByTarget groups refs by their target string.
	ByTarget map[string][]*RefInfo
}

// CollectRefs walks the document and records every $ref carried by a typed
// node. Refs buried in raw YAML values (such as untyped items maps) are not
// reported.
func CollectRefs(result *parser.ParseResult) (*RefCollector, error) {
	c := &RefCollector{
		All:      make([]*RefInfo, 0),
		ByTarget: make(map[string][]*RefInfo),
	}

	add := func(ref, path, nodeType string) {
		if ref == "" {
			return
		}
		info := &RefInfo{Ref: ref, SourcePath: path, NodeType: nodeType}
		c.All = append(c.All, info)
		c.ByTarget[ref] = append(c.ByTarget[ref], info)
	}

	err := Walk(result,
		WithPathHandler(func(pathTemplate string, pathItem *parser.PathItem, path string) Action {
			add(pathItem.Ref, path, "pathItem")
			return Continue
		}),
		WithParameterHandler(func(param *parser.Parameter, path string) Action {
			add(param.Ref, path, "parameter")
			return Continue
		}),
		WithResponseHandler(func(statusCode string, resp *parser.Response, path string) Action {
			add(resp.Ref, path, "response")
			return Continue
		}),
		WithSchemaHandler(func(schema *parser.Schema, path string) Action {
			add(schema.Ref, path, "schema")
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
