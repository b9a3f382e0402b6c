package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/scopetools/walker"
)

type operationsInput struct {
	Spec    docInput `json:"spec"               jsonschema:"Swagger 2.0 document to list operations from"`
	Tag     string    `json:"tag,omitempty"      jsonschema:"Only operations carrying this tag"`
	Method  string    `json:"method,omitempty"   jsonschema:"Only operations with this HTTP method (e.g. get, post)"`
	Path    string    `json:"path,omitempty"     jsonschema:"Only operations under this path pattern; * matches one segment"`
	GroupBy string    `json:"group_by,omitempty" jsonschema:"Return distribution counts instead of items: tag or method"`
	Offset  int       `json:"offset,omitempty"   jsonschema:"Number of matching operations to skip"`
	Limit   int       `json:"limit,omitempty"    jsonschema:"Maximum operations to return (default SCOPETOOLS_LIST_LIMIT)"`
}

type operationSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operation_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	DependsOn   []string `json:"depends_on,omitempty"`
}

type operationsOutput struct {
	TotalCount int                `json:"total_count"`
	Operations []operationSummary `json:"operations,omitempty"`
	Groups     []groupCount       `json:"groups,omitempty"`
	Summary    string             `json:"summary"`
}

func handleOperations(_ context.Context, _ *mcp.CallToolRequest, input operationsInput) (*mcp.CallToolResult, operationsOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"tag", "method"}); err != nil {
		return errResult(err), operationsOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), operationsOutput{}, nil
	}

	collector, err := walker.CollectOperations(result)
	if err != nil {
		return errResult(err), operationsOutput{}, nil
	}

	matched := make([]operationSummary, 0, len(collector.All))
	for _, info := range collector.All {
		if input.Method != "" && !strings.EqualFold(info.Method, input.Method) {
			continue
		}
		if input.Tag != "" && !hasTag(info.Operation.Tags, input.Tag) {
			continue
		}
		if !matchPathPattern(info.PathTemplate, input.Path) {
			continue
		}
		matched = append(matched, operationSummary{
			Method:      info.Method,
			Path:        info.PathTemplate,
			OperationID: info.Operation.OperationID,
			Tags:        info.Operation.Tags,
			DependsOn:   info.Operation.DependencyOperationIDs(),
		})
	}

	output := operationsOutput{TotalCount: len(matched)}

	if input.GroupBy != "" {
		output.Groups = groupAndSort(matched, func(op operationSummary) []string {
			if strings.EqualFold(input.GroupBy, "method") {
				return []string{op.Method}
			}
			return op.Tags
		})
		output.Summary = fmt.Sprintf("%s across %s.",
			formatCount(len(output.Groups), "group"), formatCount(len(matched), "operation"))
		return nil, output, nil
	}

	output.Operations = paginate(matched, input.Offset, input.Limit)
	output.Summary = fmt.Sprintf("Showing %d of %s.", len(output.Operations), formatCount(len(matched), "matching operation"))
	return nil, output, nil
}

// hasTag reports whether tags contains name, case-insensitively.
func hasTag(tags []string, name string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// matchPathPattern checks if a path template matches a pattern where *
// matches exactly one path segment.
func matchPathPattern(pathTemplate, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.Contains(pattern, "*") {
		patternParts := strings.Split(pattern, "/")
		pathParts := strings.Split(pathTemplate, "/")
		if len(patternParts) != len(pathParts) {
			return false
		}
		for i, pp := range patternParts {
			if pp == "*" {
				continue
			}
			if pp != pathParts[i] {
				return false
			}
		}
		return true
	}
	return pathTemplate == pattern
}
