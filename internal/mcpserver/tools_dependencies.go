package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/parser"
)

type dependenciesInput struct {
	Skeleton  *docInput          `json:"skeleton,omitempty"  jsonschema:"Skeleton document (required together with services unless table is set)"`
	Services  []docInput         `json:"services,omitempty"  jsonschema:"Service documents whose x-depends-on declarations build the dependency table"`
	Table     map[string][]string `json:"table,omitempty"     jsonschema:"Dependency table given directly, mapping operation id to its direct dependency ids. Cannot be combined with skeleton or services."`
	Operation string              `json:"operation,omitempty" jsonschema:"Resolve chains rooted at this operation id only; omit for every declaring operation"`
}

type operationChains struct {
	Operation string   `json:"operation"`
	Chains    []string `json:"chains"`
}

type dependenciesOutput struct {
	OperationCount int               `json:"operation_count"`
	ChainCount     int               `json:"chain_count"`
	Operations     []operationChains `json:"operations,omitempty"`
	Summary        string            `json:"summary"`
}

func handleDependencies(_ context.Context, _ *mcp.CallToolRequest, input dependenciesInput) (*mcp.CallToolResult, dependenciesOutput, error) {
	table, errResultValue := buildDependencyTable(input)
	if errResultValue != nil {
		return errResultValue, dependenciesOutput{}, nil
	}

	roots := table.OperationIDs()
	if input.Operation != "" {
		roots = []string{input.Operation}
	}

	output := dependenciesOutput{}
	for _, root := range roots {
		chains := table.Chains(root)
		if len(chains) == 0 && input.Operation == "" {
			continue
		}
		output.Operations = append(output.Operations, operationChains{Operation: root, Chains: chains})
		output.ChainCount += len(chains)
	}
	output.OperationCount = len(output.Operations)
	output.Summary = fmt.Sprintf("Resolved %s across %s.",
		formatCount(output.ChainCount, "dependency chain"), formatCount(output.OperationCount, "operation"))

	return nil, output, nil
}

// buildDependencyTable obtains the table either directly from the input or
// by merging the provided documents.
func buildDependencyTable(input dependenciesInput) (merger.DependencyTable, *mcp.CallToolResult) {
	if input.Table != nil {
		if input.Skeleton != nil || len(input.Services) > 0 {
			return nil, errResult(fmt.Errorf("table cannot be combined with skeleton or services"))
		}
		return merger.DependencyTable(input.Table), nil
	}

	if input.Skeleton == nil || len(input.Services) < 1 {
		return nil, errResult(fmt.Errorf("either table, or skeleton plus at least 1 service, must be provided"))
	}
	if len(input.Services) > cfg.MaxServiceSpecs {
		return nil, errResult(fmt.Errorf("too many services: got %d, maximum is %d; set SCOPETOOLS_MAX_SERVICE_SPECS to increase",
			len(input.Services), cfg.MaxServiceSpecs))
	}

	skeleton, err := input.Skeleton.resolve()
	if err != nil {
		return nil, errResult(fmt.Errorf("skeleton: %w", err))
	}
	services := make([]parser.ParseResult, 0, len(input.Services))
	for i, spec := range input.Services {
		result, err := spec.resolve()
		if err != nil {
			return nil, errResult(fmt.Errorf("services[%d]: %w", i, err))
		}
		services = append(services, *result)
	}

	result, err := merger.MergeWithOptions(
		merger.WithSkeletonParsed(*skeleton),
		merger.WithServicesParsed(services...),
	)
	if err != nil {
		return nil, errResult(err)
	}
	return result.Dependencies, nil
}
