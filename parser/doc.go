// Package parser provides parsing for Swagger 2.0 service documents.
//
// The parser reads Swagger 2.0 documents in YAML and JSON formats. It can
// validate structure and preserves unknown fields (specification extensions
// like x-*) so that downstream tools never lose information a service author
// put in the document.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("swagger.yaml"),
//		parser.WithValidateStructure(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if len(result.Errors) > 0 {
//		fmt.Printf("Parse errors: %d\n", len(result.Errors))
//	}
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.ValidateStructure = false
//	result1, _ := p.Parse("users.yaml")
//	result2, _ := p.Parse("billing.yaml")
//
// # Validation
//
// With structural validation enabled the parser collects errors for missing
// required fields (swagger, info.title, info.version, responses), invalid path
// patterns, invalid status codes, duplicate operationIds, and invalid
// parameter locations. Errors are collected into result.Errors rather than
// aborting the parse, so a single pass reports everything that is wrong with
// a document. Warnings (non-standard status codes, unrecognized media types)
// go to result.Warnings.
//
// # Specification Extensions
//
// Fields starting with "x-" are captured in the Extra map of every document
// type and survive a marshal round-trip in both YAML and JSON. Operation
// dependency declarations use the "x-depends-on" extension; see
// [Operation.DependencyOperationIDs] for the accessor that merging and
// scoping build on.
//
// # Immutability
//
// ParseResult.Document is owned by the caller. Use [ParseResult.Copy] or
// [Document.DeepCopy] to obtain an isolated copy before mutating a document
// that is shared across goroutines or derivations.
//
// # Related Packages
//
// After parsing, use these packages for additional operations:
//   - [github.com/erraggy/scopetools/merger] - Merge per-service documents into one master document
//   - [github.com/erraggy/scopetools/scoper] - Derive role-scoped documents from a master document
//   - [github.com/erraggy/scopetools/walker] - Walk documents and visit every node
package parser
