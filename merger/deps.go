package merger

import "github.com/erraggy/scopetools/internal/maputil"

// DependencyTable records the declared x-depends-on relationships between
// operations: each key is an operationId and each value is the list of
// operationIds it directly depends on, in declaration order.
//
// The table is declarative. Entries may reference operationIds that no
// document defines, and cycles are permitted; both are resolved when chains
// are expanded, not when the table is built.
type DependencyTable map[string][]string

// Set records the direct dependencies for an operation, replacing any
// earlier entry. The slice is copied so the caller retains ownership.
func (t DependencyTable) Set(operationID string, deps []string) {
	copied := make([]string, len(deps))
	copy(copied, deps)
	t[operationID] = copied
}

// DirectDependencies returns a copy of the operation's declared direct
// dependencies, or nil when the operation has none recorded.
func (t DependencyTable) DirectDependencies(operationID string) []string {
	deps, ok := t[operationID]
	if !ok {
		return nil
	}
	copied := make([]string, len(deps))
	copy(copied, deps)
	return copied
}

// OperationIDs returns the sorted operationIds that have recorded
// dependencies.
func (t DependencyTable) OperationIDs() []string {
	return maputil.SortedKeys(t)
}

// Copy returns a deep copy of the table.
func (t DependencyTable) Copy() DependencyTable {
	copied := make(DependencyTable, len(t))
	for id, deps := range t {
		copied.Set(id, deps)
	}
	return copied
}

// chainItem pairs a pending dependency with the dotted chain that led to it.
type chainItem struct {
	prefix string
	id     string
}

// Chains expands the transitive dependencies of rootID into dotted chain
// strings, breadth-first. Each chain names the path that reached a
// dependency: a root "A" depending on "B" which depends on "C" expands to
// ["A.B", "A.B.C"].
//
// Expansion is cycle-tolerant: each dependency is visited at most once,
// with the root's direct dependencies seeding the visited set. The root
// itself is not pre-excluded, so a cycle back to the root produces one
// chain ending in the root's own id. An operation with no recorded
// dependencies expands to nil.
func (t DependencyTable) Chains(rootID string) []string {
	direct := t[rootID]
	if len(direct) == 0 {
		return nil
	}

	excluded := make(map[string]bool, len(direct))
	queue := make([]chainItem, 0, len(direct))
	for _, dep := range direct {
		if excluded[dep] {
			continue
		}
		excluded[dep] = true
		queue = append(queue, chainItem{prefix: rootID, id: dep})
	}

	var chains []string
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		chain := item.prefix + "." + item.id
		chains = append(chains, chain)

		for _, dep := range t[item.id] {
			if excluded[dep] {
				continue
			}
			excluded[dep] = true
			queue = append(queue, chainItem{prefix: chain, id: dep})
		}
	}
	return chains
}
