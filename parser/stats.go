package parser

// DocumentStats contains statistical information about a parsed document
type DocumentStats struct {
	PathCount       int // Number of paths defined
	OperationCount  int // Total number of operations across all paths
	DefinitionCount int // Number of schema definitions
	TagCount        int // Number of document-level tags
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = len(doc.Paths)
	stats.OperationCount = countOperations(doc.Paths)
	stats.DefinitionCount = len(doc.Definitions)
	stats.TagCount = len(doc.Tags)

	return stats
}

// countOperations counts the total number of operations across all paths
func countOperations(paths Paths) int {
	count := 0
	for _, pathItem := range paths {
		if pathItem == nil {
			continue
		}
		count += countPathItemOperations(pathItem)
	}
	return count
}

// countPathItemOperations counts operations in a single PathItem
func countPathItemOperations(pathItem *PathItem) int {
	count := 0
	for _, op := range GetOperations(pathItem) {
		if op != nil {
			count++
		}
	}
	return count
}
