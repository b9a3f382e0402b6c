// Package walker provides a document traversal API for Swagger 2.0 documents.
//
// A walk visits every node of a parsed document exactly once, invoking the
// typed handlers registered for the node kinds the caller cares about. The
// merger uses it to gather dependency declarations, the scoper to find which
// definitions surviving operations still reference; the same machinery serves
// any analysis or in-place transformation.
//
// # Quick Start
//
// Collect every operation id in a merged master document:
//
//	result, _ := parser.ParseWithOptions(parser.WithFilePath("master.yaml"))
//
//	var operationIDs []string
//	err := walker.Walk(result,
//	    walker.WithOperationHandler(func(method string, op *parser.Operation, path string) walker.Action {
//	        operationIDs = append(operationIDs, op.OperationID)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers steer the walk through their returned [Action]:
//
//   - [Continue]: descend into children, then move to siblings
//   - [SkipChildren]: skip the current node's children, keep going with siblings
//   - [Stop]: abort the whole walk
//
// SkipChildren is how a handler prunes subtrees it has no interest in:
//
//	walker.Walk(result,
//	    walker.WithPathHandler(func(pathTemplate string, pathItem *parser.PathItem, path string) walker.Action {
//	        if strings.HasPrefix(pathTemplate, "/internal") {
//	            return walker.SkipChildren
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Handler Types
//
// A typed handler exists for each major node kind: [DocumentHandler],
// [InfoHandler], [TagHandler], [PathHandler], [PathItemHandler],
// [OperationHandler], [ParameterHandler], [ResponseHandler], [SchemaHandler],
// [SecuritySchemeHandler], [HeaderHandler], and [ExternalDocsHandler].
//
// Every handler also receives the node's JSON path:
//
//	$.info                              // Info object
//	$.paths['/accounts/{accountId}']    // Path entry
//	$.paths['/accounts'].get            // Operation
//	$.definitions['Account']            // Schema
//
// Handlers get pointers into the live document, so mutations stick:
//
//	walker.Walk(result,
//	    walker.WithSchemaHandler(func(schema *parser.Schema, path string) walker.Action {
//	        if schema.Extra == nil {
//	            schema.Extra = make(map[string]any)
//	        }
//	        schema.Extra["x-processed"] = true
//	        return walker.Continue
//	    }),
//	)
//
// # Built-in Collectors
//
// [CollectOperations], [CollectSchemas], and [CollectRefs] wrap the common
// gather-everything walks: operations grouped by path template, method, and
// tag; schemas indexed by JSON path and definition name; and every $ref
// grouped by target.
//
//	ops, err := walker.CollectOperations(result)
//	for _, info := range ops.All {
//	    fmt.Printf("%s %s -> %s\n", info.Method, info.PathTemplate, info.Operation.OperationID)
//	}
//
// # Schema Cycle Detection
//
// Circular schema references are detected and cut off rather than walked
// forever; [WithSchemaSkippedHandler] observes the schemas that were skipped.
// [WithMaxSchemaDepth] caps recursion for deeply nested schemas (default 100).
//
// # Performance
//
// Parse once and walk the same [parser.ParseResult] as many times as needed:
//
//	result, _ := parser.ParseWithOptions(parser.WithFilePath("master.yaml"))
//	walker.Walk(result, handlers1...)
//	walker.Walk(result, handlers2...)
//
// # Related Packages
//
//   - [github.com/erraggy/scopetools/parser] - Parse documents before walking
//   - [github.com/erraggy/scopetools/merger] - Merge service documents into a master
//   - [github.com/erraggy/scopetools/scoper] - Derive per-role documents from a master
package walker
