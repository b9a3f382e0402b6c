package scoper

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/scopetools/internal/httputil"
	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/parser"
)

// roleResult holds one role's filtered document and the id lists derived
// from it.
type roleResult struct {
	doc    *parser.Document
	opIDs  []string
	chains []string
}

// filterRole derives one role's document from the master: a deep copy with
// operations outside the granted set removed, empty paths removed,
// unreachable definitions removed, tags rebuilt, and the title set from the
// role id. The master itself is never touched.
func filterRole(roleID string, master *parser.Document, deps merger.DependencyTable, granted map[string]bool) *roleResult {
	doc := master.DeepCopy()

	// Remove operations the role was not granted, then paths left with no
	// operations. An operation without an id can never be granted.
	for _, path := range maputil.SortedKeys(doc.Paths) {
		item := doc.Paths[path]
		if item == nil {
			delete(doc.Paths, path)
			continue
		}
		ops := parser.GetOperations(item)
		for _, method := range httputil.Methods {
			op := ops[method]
			if op == nil {
				continue
			}
			if op.OperationID == "" || !granted[op.OperationID] {
				parser.SetOperation(item, method, nil)
			}
		}
		if !hasOperations(item) {
			delete(doc.Paths, path)
		}
	}

	// Keep only definitions reachable from the surviving operations.
	seeds := pathRefSeeds(doc.Paths)
	pruneDefinitions(doc, reachableDefinitions(doc.Definitions, seeds))

	doc.Tags = merger.RebuildTags(doc)

	if doc.Info == nil {
		doc.Info = &parser.Info{}
	}
	doc.Info.Title = roleTitle(roleID)

	return &roleResult{
		doc:    doc,
		opIDs:  collectOperationIDs(doc.Paths),
		chains: resolveChains(doc.Paths, deps),
	}
}

// collectOperationIDs returns the distinct operation ids present across all
// paths and methods, sorted.
func collectOperationIDs(paths parser.Paths) []string {
	ids := make(map[string]bool)
	for _, item := range paths {
		for _, op := range parser.GetOperations(item) {
			if op != nil && op.OperationID != "" {
				ids[op.OperationID] = true
			}
		}
	}
	return maputil.SortedKeys(ids)
}

// resolveChains resolves the transitive dependency chains of every
// operation in the paths and deduplicates them, keeping first occurrences
// in sorted path and method order.
func resolveChains(paths parser.Paths, deps merger.DependencyTable) []string {
	seen := make(map[string]bool)
	chains := make([]string, 0)
	for _, path := range maputil.SortedKeys(paths) {
		ops := parser.GetOperations(paths[path])
		for _, method := range httputil.Methods {
			op := ops[method]
			if op == nil || op.OperationID == "" {
				continue
			}
			for _, chain := range deps.Chains(op.OperationID) {
				if seen[chain] {
					continue
				}
				seen[chain] = true
				chains = append(chains, chain)
			}
		}
	}
	return chains
}

// roleTitle returns the role id with its first character upper-cased, for
// use as the filtered document's title. Only the first character changes.
func roleTitle(roleID string) string {
	if roleID == "" {
		return ""
	}
	titleCaser := cases.Title(language.English, cases.NoLower)
	r, size := utf8.DecodeRuneInString(roleID)
	return titleCaser.String(string(r)) + roleID[size:]
}
