package scoper

import (
	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/parser"
)

// pathRefSeeds collects the definition names referenced from the given
// paths: every operation plus each path item's shared parameters.
func pathRefSeeds(paths parser.Paths) map[string]bool {
	c := newRefCollector()
	for _, path := range maputil.SortedKeys(paths) {
		c.collectPathItem(paths[path])
	}
	return c.names
}

// reachableDefinitions computes the set of definition names reachable from
// the seed set by following schema references.
//
// Worklist fixed point: the queue starts as the seed; each dequeued name's
// definition body is scanned for further references and strictly-new names
// join both the result and the queue. A referenced name absent from the
// definitions table stays in the result but is never expanded, so dangling
// references terminate cleanly and reference cycles cannot loop.
func reachableDefinitions(definitions map[string]*parser.Schema, seeds map[string]bool) map[string]bool {
	known := make(map[string]bool, len(seeds))
	queue := make([]string, 0, len(seeds))
	for _, name := range maputil.SortedKeys(seeds) {
		known[name] = true
		queue = append(queue, name)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		schema := definitions[name]
		if schema == nil {
			continue
		}

		c := newRefCollector()
		c.collectSchema(schema)
		for _, ref := range maputil.SortedKeys(c.names) {
			if !known[ref] {
				known[ref] = true
				queue = append(queue, ref)
			}
		}
	}

	return known
}

// pruneDefinitions deletes every definition whose name is not in the keep
// set.
func pruneDefinitions(doc *parser.Document, keep map[string]bool) {
	for _, name := range maputil.SortedKeys(doc.Definitions) {
		if !keep[name] {
			delete(doc.Definitions, name)
		}
	}
}

// hasOperations reports whether a path item defines at least one operation.
// A path item carrying only shared parameters or a $ref counts as empty.
func hasOperations(item *parser.PathItem) bool {
	if item == nil {
		return false
	}
	return item.Get != nil ||
		item.Put != nil ||
		item.Post != nil ||
		item.Delete != nil ||
		item.Options != nil ||
		item.Head != nil ||
		item.Patch != nil
}
