package parser

import (
	"fmt"
	"sort"
	"strings"

	"go.yaml.in/yaml/v4"
)

// SourceLocation is a position in a source document. Line and Column are
// 1-based; a zero Line means the location is unknown.
type SourceLocation struct {
	// Line is the 1-based line number (0 if unknown)
	Line int
	// Column is the 1-based column number (0 if unknown)
	Column int
	// File is the source file path (empty for the main document)
	File string
}

// IsKnown reports whether the location carries line information.
func (s SourceLocation) IsKnown() bool {
	return s.Line > 0
}

// String renders the location as "file:line:column", dropping the file part
// when none is known. Unknown locations render as "<unknown>".
func (s SourceLocation) String() string {
	if !s.IsKnown() {
		if s.File != "" {
			return s.File
		}
		return "<unknown>"
	}
	if s.File != "" {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// RefLocation records where a $ref is written and what it points at, so
// dangling-reference warnings can name both ends.
type RefLocation struct {
	// Origin is where the $ref is written in the source
	Origin SourceLocation
	// Target is where the referenced content is defined
	Target SourceLocation
	// TargetRef is the $ref string value (e.g., "#/definitions/Account")
	TargetRef string
}

// SourceMap maps JSON paths (e.g. "$.paths./accounts.get.responses.200") to
// positions in the source document. It is built during parsing when
// WithSourceMap(true) is set; the merger uses it to report where colliding
// paths and definitions were declared.
type SourceMap struct {
	// value positions, keyed by JSON path
	locations map[string]SourceLocation
	// key positions, for errors that should point at a map key rather
	// than its value
	keyLocations map[string]SourceLocation
	// $ref occurrences, keyed by the path of the node holding the $ref
	refs map[string]RefLocation
}

// NewSourceMap creates an empty SourceMap.
func NewSourceMap() *SourceMap {
	sm := &SourceMap{}
	sm.init()
	return sm
}

func (sm *SourceMap) init() {
	if sm.locations == nil {
		sm.locations = make(map[string]SourceLocation)
	}
	if sm.keyLocations == nil {
		sm.keyLocations = make(map[string]SourceLocation)
	}
	if sm.refs == nil {
		sm.refs = make(map[string]RefLocation)
	}
}

// Get returns the source location for a JSON path, or a zero
// SourceLocation when the path is unknown.
func (sm *SourceMap) Get(path string) SourceLocation {
	if sm == nil {
		return SourceLocation{}
	}
	return sm.locations[path]
}

// GetKey returns the position of the map key at the given path, for
// messages about the key itself such as unknown-field errors.
func (sm *SourceMap) GetKey(path string) SourceLocation {
	if sm == nil {
		return SourceLocation{}
	}
	return sm.keyLocations[path]
}

// GetRef returns reference information for a path holding a $ref, or a
// zero RefLocation when there is none.
func (sm *SourceMap) GetRef(path string) RefLocation {
	if sm == nil {
		return RefLocation{}
	}
	return sm.refs[path]
}

// Has reports whether the path exists in the source map.
func (sm *SourceMap) Has(path string) bool {
	if sm == nil {
		return false
	}
	_, ok := sm.locations[path]
	return ok
}

// Len returns the number of mapped paths.
func (sm *SourceMap) Len() int {
	if sm == nil {
		return 0
	}
	return len(sm.locations)
}

// Paths returns every mapped JSON path in sorted order, or nil on a nil
// receiver.
func (sm *SourceMap) Paths() []string {
	if sm == nil {
		return nil
	}
	paths := make([]string, 0, len(sm.locations))
	for path := range sm.locations {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Copy returns a deep copy, or nil on a nil receiver.
func (sm *SourceMap) Copy() *SourceMap {
	if sm == nil {
		return nil
	}
	result := NewSourceMap()
	for path, loc := range sm.locations {
		result.locations[path] = loc
	}
	for path, loc := range sm.keyLocations {
		result.keyLocations[path] = loc
	}
	for path, ref := range sm.refs {
		result.refs[path] = ref
	}
	return result
}

// SetFile stamps every recorded location with the given file path.
// Parsing from bytes or a reader records no file name, so callers apply it
// once the source is known. Safe on a nil receiver.
func (sm *SourceMap) SetFile(file string) {
	if sm == nil {
		return
	}
	for path, loc := range sm.locations {
		loc.File = file
		sm.locations[path] = loc
	}
	for path, loc := range sm.keyLocations {
		loc.File = file
		sm.keyLocations[path] = loc
	}
	for path, ref := range sm.refs {
		ref.Origin.File = file
		sm.refs[path] = ref
	}
}

func (sm *SourceMap) set(path string, loc SourceLocation) {
	if sm == nil {
		return
	}
	sm.init()
	sm.locations[path] = loc
}

func (sm *SourceMap) setKey(path string, loc SourceLocation) {
	if sm == nil {
		return
	}
	sm.init()
	sm.keyLocations[path] = loc
}

func (sm *SourceMap) setRef(path string, ref RefLocation) {
	if sm == nil {
		return
	}
	sm.init()
	sm.refs[path] = ref
}

// Merge folds another SourceMap into this one; entries from other win on
// path collisions. A nil receiver or argument is a no-op.
func (sm *SourceMap) Merge(other *SourceMap) {
	if sm == nil || other == nil {
		return
	}
	sm.init()
	for path, loc := range other.locations {
		sm.locations[path] = loc
	}
	for path, loc := range other.keyLocations {
		sm.keyLocations[path] = loc
	}
	for path, ref := range other.refs {
		sm.refs[path] = ref
	}
}

// buildSourceMap walks a yaml.Node tree and records the position of every
// node under its JSON path.
func buildSourceMap(root *yaml.Node, sourcePath string) *SourceMap {
	sm := NewSourceMap()
	if root == nil {
		return sm
	}
	recordNode(root, "$", sm, sourcePath)
	return sm
}

func recordNode(node *yaml.Node, path string, sm *SourceMap, file string) {
	if node == nil {
		return
	}

	sm.set(path, SourceLocation{
		Line:   node.Line,
		Column: node.Column,
		File:   file,
	})

	switch node.Kind {
	case yaml.DocumentNode:
		// The document node wraps the root mapping; both share a path.
		if len(node.Content) > 0 {
			recordNode(node.Content[0], path, sm, file)
		}

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			childPath := childJSONPath(path, keyNode.Value)

			sm.setKey(childPath, SourceLocation{
				Line:   keyNode.Line,
				Column: keyNode.Column,
				File:   file,
			})

			if keyNode.Value == "$ref" && valNode.Kind == yaml.ScalarNode {
				sm.setRef(path, RefLocation{
					Origin: SourceLocation{
						Line:   valNode.Line,
						Column: valNode.Column,
						File:   file,
					},
					TargetRef: valNode.Value,
					// Target stays unknown; dangling refs are reported,
					// not resolved.
				})
			}

			recordNode(valNode, childPath, sm, file)
		}

	case yaml.SequenceNode:
		for i, child := range node.Content {
			recordNode(child, fmt.Sprintf("%s[%d]", path, i), sm, file)
		}
	}
}

// childJSONPath appends a key to a JSON path, switching to bracket notation
// when dot notation would be ambiguous.
func childJSONPath(parent, key string) string {
	if jsonPathNeedsBrackets(key) {
		escaped := strings.ReplaceAll(key, "'", "\\'")
		return fmt.Sprintf("%s['%s']", parent, escaped)
	}
	return parent + "." + key
}

// jsonPathNeedsBrackets reports whether a key must use bracket notation:
// empty keys, keys starting with a digit, and keys containing structural
// or whitespace characters.
func jsonPathNeedsBrackets(key string) bool {
	if key == "" {
		return true
	}
	if key[0] >= '0' && key[0] <= '9' {
		return true
	}
	return strings.ContainsAny(key, ".[]'\" \t\n\r")
}
