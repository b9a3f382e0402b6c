// Package merger builds a master Swagger 2.0 document from per-service documents.
//
// The merger starts from a skeleton document (the template providing the
// master's identity: title, host, top-level metadata) and folds one service
// document after another into it, in input order:
//
//   - every service path is prefixed with that service's basePath before
//     insertion, and a later service silently overwrites a colliding exact
//     path string
//   - definitions with the same name deep-merge field by field, later
//     services winning per field, so partial schema declarations compose
//   - every operation's x-depends-on declarations are collected into a
//     DependencyTable spanning all services
//   - tags deduplicate by name in first-seen order
//   - the master version is the component-wise numeric sum of the service
//     versions ("1.2.0" + "0.1.5" = "1.3.5"); the skeleton's version is
//     replaced, not summed
//
// # Quick Start
//
// Merge files using functional options:
//
//	result, err := merger.MergeWithOptions(
//		merger.WithSkeletonFile("skeleton.yaml"),
//		merger.WithServiceFiles("users.yaml", "billing.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = merger.New(merger.DefaultConfig()).WriteResult(result, "master.yaml")
//
// Or create a reusable Merger instance:
//
//	m := merger.New(merger.DefaultConfig())
//	result1, _ := m.Merge("skeleton.yaml", []string{"users.yaml", "billing.yaml"})
//	result2, _ := m.Merge("skeleton.yaml", []string{"users.yaml", "search.yaml"})
//
// # Override Mode
//
// A pre-built master can short-circuit merging entirely:
//
//	result, err := merger.MergeWithOptions(
//		merger.WithMasterOverride(doc),
//	)
//
// The override document is deep-copied and returned as-is: no base-path
// prefixing, no version arithmetic, and an empty dependency table unless
// one is supplied with WithDependencies.
//
// # Dependency Chains
//
// The DependencyTable resolves transitive dependency chains for any
// operation id:
//
//	chains := result.Dependencies.Chains("createOrder")
//	// e.g. ["createOrder.getAccount", "createOrder.getAccount.listRegions"]
//
// Chains are always rooted at the requested id, follow declaration order,
// and terminate structurally on cycles.
//
// # Tolerated Anomalies
//
// Exact-path collisions, duplicate operation ids, and operations without an
// operationId are absorbed silently (last writer wins); enable a Logger to
// see them at debug level. Divergent document-level metadata (host, schemes,
// security definitions) is merged last-wins and surfaces as warnings on the
// MergeResult. The only fatal arithmetic condition is a non-numeric version
// component, reported as an oaserrors.VersionError.
package merger
