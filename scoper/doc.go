// Package scoper derives role-specific API documents from a merged master.
//
// A scoper is built once: the constructor merges the skeleton and service
// documents into a master (or loads a supplied pre-merged master), then
// derives one filtered document per role. Each role names a set of features,
// each feature names the operation ids it exposes, and the role's document
// keeps exactly the operations those features grant:
//
//   - operations outside the granted set are removed, as is any operation
//     without an operationId
//   - paths left with no operations are removed
//   - definitions not transitively referenced by a surviving operation are
//     removed; references are followed through nested schemas, cycles and
//     all, so the surviving definitions table is closed under reference
//   - tags are rebuilt from the surviving operations in first-appearance
//     order
//   - the document title becomes the role id with its first character
//     upper-cased
//   - the transitive dependency chains of every surviving operation are
//     resolved against the master's dependency table and deduplicated
//
// # Quick Start
//
//	s, err := scoper.New(
//		scoper.WithSkeletonFile("skeleton.yaml"),
//		scoper.WithServiceFiles("users.yaml", "billing.yaml"),
//		scoper.WithFeatures(map[string]scoper.Feature{
//			"accounts": {OperationIDs: []string{"listAccounts", "getAccount"}},
//		}),
//		scoper.WithRoles(map[string][]string{
//			"viewer": {"accounts"},
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, _ := s.Spec("viewer")
//
// # Isolation
//
// Every role document is an independent deep copy of the master: pruning one
// role never affects another role or the master itself. The build is fully
// synchronous inside New; once it returns, the stored documents are never
// mutated again and every accessor is safe for arbitrarily many concurrent
// readers. Callers must not modify a returned document in place.
//
// # Tolerated Anomalies
//
// A role naming a feature absent from the feature table contributes no
// operations from it; the mismatch is recorded as a warning, not an error.
// Operations without an operationId can never be granted and disappear from
// every role. A reference pointing at a definition the master never defined
// is carried through unchanged rather than repaired.
package scoper
