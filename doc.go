// Package scopetools provides tools for deriving role-scoped API documents
// from a set of Swagger 2.0 service specifications.
//
// scopetools merges many per-service Swagger documents into a single master
// document, then derives one pruned document per role: only the operations
// granted to that role survive, along with the definitions those operations
// actually reference.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Parse and analyze Swagger 2.0 documents
//   - merger: Merge multiple service documents into one master document
//   - scoper: Derive per-role documents from the master
//
// All packages work with the Swagger 2.0 document shape:
// https://spec.openapis.org/oas/v2.0.html
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/scopetools
//
// # Quick Start
//
// Parse a Swagger document:
//
//	import "github.com/erraggy/scopetools/parser"
//
//	p := parser.New()
//	result, err := p.Parse("swagger.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Title: %s\n", result.Document.Info.Title)
//
// Merge multiple service documents:
//
//	import "github.com/erraggy/scopetools/merger"
//
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge("skeleton.yaml", []string{"pets.yaml", "stores.yaml"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = m.WriteResult(result, "master.yaml")
//
// Derive role-scoped documents:
//
//	import "github.com/erraggy/scopetools/scoper"
//
//	s, err := scoper.New(
//		scoper.WithSkeletonFile("skeleton.yaml"),
//		scoper.WithServiceFiles("pets.yaml", "stores.yaml"),
//		scoper.WithFeatures(features),
//		scoper.WithRoles(roles),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := s.Spec("viewer")
//
// # Parser Package
//
// The parser package parses Swagger 2.0 documents in YAML or JSON format into
// a fully typed model. Extension fields (x-*) are preserved, including the
// x-depends-on extension that declares dependencies between operations.
//
// Key features:
//   - Multi-format support (YAML, JSON)
//   - Fully typed document model with deep-copy support
//   - Extension field preservation
//   - Optional structural validation
//
// Example:
//
//	p := parser.New()
//	p.ValidateStructure = true
//
//	result, err := p.Parse("swagger.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Paths: %d\n", len(result.Document.Paths))
//
// See the parser package documentation for more details.
//
// # Merger Package
//
// The merger package combines multiple service documents into a single master
// document. Each service's paths are prefixed with that service's basePath,
// definitions are merged field-by-field, tags are deduplicated, and versions
// are summed component-wise. The merger also builds the operation dependency
// table from x-depends-on extensions across all services.
//
// Key features:
//   - basePath-prefixed path merging (later services win on collision)
//   - Field-level definition merging
//   - First-seen tag deduplication
//   - Component-wise version summing
//   - Operation dependency table extraction
//
// Example:
//
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge("skeleton.yaml", []string{"pets.yaml", "stores.yaml"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Merged %d paths\n", result.Stats.PathCount)
//
// See the merger package documentation for more details.
//
// # Scoper Package
//
// The scoper package derives one document per role from the master document.
// Roles grant features, features grant operations; everything else is removed,
// including definitions that no surviving operation references.
//
// Key features:
//   - Role/feature/operation resolution
//   - Operation and path pruning
//   - Definition reachability analysis (cycle tolerant)
//   - Tag rebuilding from surviving operations
//   - Transitive operation dependency resolution
//
// Example:
//
//	s, err := scoper.New(
//		scoper.WithSkeletonFile("skeleton.yaml"),
//		scoper.WithServiceFiles("pets.yaml"),
//		scoper.WithFeatures(features),
//		scoper.WithRoles(roles),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, role := range s.Roles() {
//		ids, _ := s.OperationIDs(role)
//		fmt.Printf("%s: %d operations\n", role, len(ids))
//	}
//
// See the scoper package documentation for more details.
//
// # Common Workflows
//
// Merge then inspect before scoping:
//
//	// Merge the service documents
//	m := merger.New(merger.DefaultConfig())
//	mResult, err := m.Merge("skeleton.yaml", serviceFiles)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Inspect the dependency table
//	for opID, deps := range mResult.Dependencies {
//		fmt.Printf("%s depends on %v\n", opID, deps)
//	}
//
//	// Scope from the already merged master
//	s, err := scoper.New(
//		scoper.WithMaster(mResult.Document),
//		scoper.WithFeatures(features),
//		scoper.WithRoles(roles),
//	)
//
// # Security Considerations
//
// All packages implement conservative defaults:
//
//   - Resource limits: Schema traversal depth is bounded (default: 100) to
//     prevent resource exhaustion on malformed input
//   - Input validation: User-provided option values are validated before use
//   - File permissions: Output files are created with restrictive permissions (0600)
//   - No remote references: HTTP(S) URLs in $ref are not supported
//
// # Limitations
//
// Current limitations across all packages:
//
//   - Swagger 2.0 only: OpenAPI 3.x documents are not supported
//   - External reference resolution: $ref values are preserved as-is and never
//     resolved across documents; references that leave the document dangling
//     after scoping are reported as warnings, not repaired
//   - Custom extensions: Extension fields (x-*) other than x-depends-on are
//     preserved but not interpreted
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - File I/O errors: Returned directly (e.g., os.ErrNotExist)
//   - Parse errors: Returned with context about what failed
//   - Malformed version strings: Returned as errors during merging
//   - Recoverable oddities (unknown features, dangling refs, collisions):
//     collected as warnings in result objects, never returned as errors
//
// Always check both the error return value and any warning collections in
// result objects.
//
// # Command-Line Interface
//
// In addition to the library packages, scopetools provides a command-line interface:
//
//	# Merge service documents into a master document
//	scopetools merge -s skeleton.yaml -o master.yaml pets.yaml stores.yaml
//
//	# Derive a role-scoped document
//	scopetools scope -s skeleton.yaml -c scoping.yaml -r viewer -o viewer.yaml pets.yaml
//
//	# List the operations granted to a role
//	scopetools operations -s skeleton.yaml -c scoping.yaml -r viewer pets.yaml
//
//	# Walk a document and print its references
//	scopetools walk refs swagger.yaml
//
// Install the CLI:
//
//	go install github.com/erraggy/scopetools/cmd/scopetools@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/scopetools
//   - Swagger 2.0 Specification: https://spec.openapis.org/oas/v2.0.html
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/scopetools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package scopetools
