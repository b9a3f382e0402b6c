package merger

import (
	"github.com/erraggy/scopetools/internal/httputil"
	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/parser"
)

// RebuildTags derives a document's tag list from its operations: every
// operation's tags are scanned in deterministic order (sorted paths, fixed
// method order) and one record per unique name is emitted, in order of
// first appearance.
//
// Tag records already declared on the document keep their metadata
// (description, external docs) when an operation uses the same name;
// names that appear only on operations produce bare name-only records.
// Declared tags no operation uses are dropped.
func RebuildTags(doc *parser.Document) []*parser.Tag {
	if doc == nil {
		return nil
	}

	declared := make(map[string]*parser.Tag, len(doc.Tags))
	for _, tag := range doc.Tags {
		if tag != nil && declared[tag.Name] == nil {
			declared[tag.Name] = tag
		}
	}

	seen := make(map[string]bool)
	var tags []*parser.Tag
	for _, path := range maputil.SortedKeys(doc.Paths) {
		ops := parser.GetOperations(doc.Paths[path])
		for _, method := range httputil.Methods {
			op := ops[method]
			if op == nil {
				continue
			}
			for _, name := range op.Tags {
				if seen[name] {
					continue
				}
				seen[name] = true
				if tag := declared[name]; tag != nil {
					tags = append(tags, tag.DeepCopy())
					continue
				}
				tags = append(tags, &parser.Tag{Name: name})
			}
		}
	}
	return tags
}

// mergeTags appends incoming tag declarations that have not been seen yet,
// keyed by name. The first declaration of a tag wins; later duplicates are
// dropped without a warning. The merged list serves as the metadata index
// for RebuildTags.
func mergeTags(existing, incoming []*parser.Tag) []*parser.Tag {
	seen := make(map[string]bool, len(existing))
	for _, tag := range existing {
		if tag != nil {
			seen[tag.Name] = true
		}
	}

	result := existing
	for _, tag := range incoming {
		if tag == nil || seen[tag.Name] {
			continue
		}
		result = append(result, tag.DeepCopy())
		seen[tag.Name] = true
	}
	return result
}
