package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scopetools/internal/pathutil"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/parser"
)

type mergeInput struct {
	Skeleton docInput   `json:"skeleton"           jsonschema:"Skeleton document providing the master's identity and top-level metadata"`
	Services []docInput `json:"services"           jsonschema:"Service documents to merge in order (minimum 1); later services win path and metadata collisions"`
	Output   string      `json:"output,omitempty"   jsonschema:"File path to write the master document. If omitted the result is returned inline."`
}

type mergeWarning struct {
	Message string `json:"message"`
}

type mergeOutput struct {
	ServiceCount    int            `json:"service_count"`
	Version         string         `json:"version"`
	PathCount       int            `json:"path_count"`
	OperationCount  int            `json:"operation_count"`
	DefinitionCount int            `json:"definition_count"`
	DependencyCount int            `json:"dependency_count"`
	WarningCount    int            `json:"warning_count"`
	Warnings        []mergeWarning `json:"warnings,omitempty"`
	WrittenTo       string         `json:"written_to,omitempty"`
	Document        string         `json:"document,omitempty"`
	Summary         string         `json:"summary"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Services) < 1 {
		return errResult(fmt.Errorf("at least 1 service document is required for merging, got %d", len(input.Services))), mergeOutput{}, nil
	}
	if len(input.Services) > cfg.MaxServiceSpecs {
		return errResult(fmt.Errorf("too many services: got %d, maximum is %d; set SCOPETOOLS_MAX_SERVICE_SPECS to increase",
			len(input.Services), cfg.MaxServiceSpecs)), mergeOutput{}, nil
	}

	skeleton, err := input.Skeleton.resolve()
	if err != nil {
		return errResult(fmt.Errorf("skeleton: %w", err)), mergeOutput{}, nil
	}
	services := make([]parser.ParseResult, 0, len(input.Services))
	for i, spec := range input.Services {
		result, err := spec.resolve()
		if err != nil {
			return errResult(fmt.Errorf("services[%d]: %w", i, err)), mergeOutput{}, nil
		}
		services = append(services, *result)
	}

	result, err := merger.MergeWithOptions(
		merger.WithSkeletonParsed(*skeleton),
		merger.WithServicesParsed(services...),
	)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		ServiceCount:    len(input.Services),
		Version:         result.Document.Info.Version,
		PathCount:       result.Stats.PathCount,
		OperationCount:  result.Stats.OperationCount,
		DefinitionCount: result.Stats.DefinitionCount,
		DependencyCount: len(result.Dependencies),
		WarningCount:    len(result.Warnings),
	}
	output.Warnings = makeSlice[mergeWarning](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, mergeWarning{Message: w})
	}
	output.Summary = buildMergeSummary(output)

	// Marshal the master document in the skeleton's format.
	var data []byte
	switch result.SourceFormat {
	case parser.SourceFormatJSON:
		data, err = json.MarshalIndent(result.Document, "", "  ")
	default:
		data, err = yaml.Marshal(result.Document)
	}
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), mergeOutput{}, nil
		}
		if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), mergeOutput{}, nil
		}
		output.WrittenTo = cleanPath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

func buildMergeSummary(output mergeOutput) string {
	summary := "Merged " + strconv.Itoa(output.ServiceCount) + " services into master version " + output.Version
	summary += " with " + formatCount(output.PathCount, "path")
	summary += " and " + formatCount(output.DefinitionCount, "definition") + "."

	if output.DependencyCount > 0 {
		summary += " Dependency table covers " + formatCount(output.DependencyCount, "operation") + "."
	}
	if output.WarningCount > 0 {
		summary += " " + formatCount(output.WarningCount, "warning") + "."
	}

	return summary
}
