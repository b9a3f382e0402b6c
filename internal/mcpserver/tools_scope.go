package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scopetools/internal/pathutil"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/parser"
	"github.com/erraggy/scopetools/scoper"
)

type scopeInput struct {
	Skeleton     *docInput            `json:"skeleton,omitempty"     jsonschema:"Skeleton document providing the master's identity (required unless master is set)"`
	Services     []docInput           `json:"services,omitempty"     jsonschema:"Service documents to merge in order (required unless master is set)"`
	Master       *docInput            `json:"master,omitempty"       jsonschema:"Pre-merged master document; bypasses merging. Cannot be combined with skeleton or services."`
	Dependencies map[string][]string   `json:"dependencies,omitempty" jsonschema:"Dependency table for a master override, mapping operation id to its direct dependency ids"`
	Features     map[string][]string   `json:"features"               jsonschema:"Feature table mapping feature id to the operation ids it exposes"`
	Roles        map[string][]string   `json:"roles"                  jsonschema:"Role table mapping role id to the feature ids granted to it"`
	Role         string                `json:"role,omitempty"         jsonschema:"Return this role's full document inline (or written to output)"`
	Output       string                `json:"output,omitempty"       jsonschema:"File path to write the requested role's document. Requires role."`
}

type roleSummary struct {
	Role             string   `json:"role"`
	Title            string   `json:"title"`
	PathCount        int      `json:"path_count"`
	OperationCount   int      `json:"operation_count"`
	DefinitionCount  int      `json:"definition_count"`
	OperationIDs     []string `json:"operation_ids,omitempty"`
	DependencyChains []string `json:"dependency_chains,omitempty"`
}

type scopeOutput struct {
	RoleCount    int            `json:"role_count"`
	Roles        []roleSummary  `json:"roles"`
	WarningCount int            `json:"warning_count"`
	Warnings     []mergeWarning `json:"warnings,omitempty"`
	WrittenTo    string         `json:"written_to,omitempty"`
	Document     string         `json:"document,omitempty"`
	Summary      string         `json:"summary"`
}

func handleScope(_ context.Context, _ *mcp.CallToolRequest, input scopeInput) (*mcp.CallToolResult, scopeOutput, error) {
	if len(input.Services) > cfg.MaxServiceSpecs {
		return errResult(fmt.Errorf("too many services: got %d, maximum is %d; set SCOPETOOLS_MAX_SERVICE_SPECS to increase",
			len(input.Services), cfg.MaxServiceSpecs)), scopeOutput{}, nil
	}
	if input.Output != "" && input.Role == "" {
		return errResult(fmt.Errorf("output requires role: only a single role's document can be written")), scopeOutput{}, nil
	}

	opts, err := buildScoperOptions(input)
	if err != nil {
		return errResult(err), scopeOutput{}, nil
	}

	s, err := scoper.New(opts...)
	if err != nil {
		return errResult(err), scopeOutput{}, nil
	}

	if input.Role != "" {
		if _, ok := s.Spec(input.Role); !ok {
			return errResult(fmt.Errorf("unknown role %q; built roles: %v", input.Role, s.Roles())), scopeOutput{}, nil
		}
	}

	output := scopeOutput{
		RoleCount:    len(s.Roles()),
		WarningCount: len(s.Warnings()),
	}
	output.Warnings = makeSlice[mergeWarning](len(s.Warnings()))
	for _, w := range s.Warnings() {
		output.Warnings = append(output.Warnings, mergeWarning{Message: w})
	}

	for _, roleID := range s.Roles() {
		doc, _ := s.Spec(roleID)
		stats := parser.GetDocumentStats(doc)
		summary := roleSummary{
			Role:             roleID,
			Title:            doc.Info.Title,
			PathCount:        stats.PathCount,
			OperationCount:   stats.OperationCount,
			DefinitionCount:  stats.DefinitionCount,
			OperationIDs:     s.OperationIDs(roleID),
			DependencyChains: s.DependencyOperationIDs(roleID),
		}
		output.Roles = append(output.Roles, summary)
	}

	if input.Role != "" {
		doc, _ := s.Spec(input.Role)
		data, err := yaml.Marshal(doc)
		if err != nil {
			return errResult(err), scopeOutput{}, nil
		}
		if input.Output != "" {
			cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
			if pathErr != nil {
				return errResult(fmt.Errorf("invalid output path: %w", pathErr)), scopeOutput{}, nil
			}
			if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), scopeOutput{}, nil
			}
			output.WrittenTo = cleanPath
		} else {
			output.Document = string(data)
		}
	}

	output.Summary = buildScopeSummary(output, input.Role)
	return nil, output, nil
}

// buildScoperOptions translates tool input into scoper options, resolving
// every document input through the shared spec cache.
func buildScoperOptions(input scopeInput) ([]scoper.Option, error) {
	opts := []scoper.Option{
		scoper.WithFeatures(toFeatureTable(input.Features)),
		scoper.WithRoles(input.Roles),
	}

	if input.Master != nil {
		master, err := input.Master.resolve()
		if err != nil {
			return nil, fmt.Errorf("master: %w", err)
		}
		opts = append(opts, scoper.WithMasterOverride(master.Document))
		if input.Dependencies != nil {
			opts = append(opts, scoper.WithDependencies(merger.DependencyTable(input.Dependencies)))
		}
		if input.Skeleton != nil || len(input.Services) > 0 {
			return nil, fmt.Errorf("master cannot be combined with skeleton or services")
		}
		return opts, nil
	}

	if input.Skeleton == nil {
		return nil, fmt.Errorf("skeleton is required unless master is set")
	}
	skeleton, err := input.Skeleton.resolve()
	if err != nil {
		return nil, fmt.Errorf("skeleton: %w", err)
	}
	opts = append(opts, scoper.WithSkeleton(skeleton.Document))

	if len(input.Services) < 1 {
		return nil, fmt.Errorf("at least 1 service document is required unless master is set")
	}
	docs := make([]*parser.Document, 0, len(input.Services))
	for i, spec := range input.Services {
		result, err := spec.resolve()
		if err != nil {
			return nil, fmt.Errorf("services[%d]: %w", i, err)
		}
		docs = append(docs, result.Document)
	}
	opts = append(opts, scoper.WithServiceDocuments(docs...))

	return opts, nil
}

// toFeatureTable converts the wire shape (feature id to operation id list)
// into the scoper's feature table.
func toFeatureTable(features map[string][]string) map[string]scoper.Feature {
	table := make(map[string]scoper.Feature, len(features))
	for id, opIDs := range features {
		table[id] = scoper.Feature{OperationIDs: opIDs}
	}
	return table
}

func buildScopeSummary(output scopeOutput, role string) string {
	summary := "Built " + formatCount(output.RoleCount, "role document") + "."
	if role != "" {
		for _, r := range output.Roles {
			if r.Role == role {
				summary += " Role " + strconv.Quote(role) + " keeps " + formatCount(r.OperationCount, "operation") +
					" across " + formatCount(r.PathCount, "path") +
					" with " + formatCount(r.DefinitionCount, "definition") + "."
				break
			}
		}
	}
	if output.WarningCount > 0 {
		summary += " " + formatCount(output.WarningCount, "warning") + "."
	}
	return summary
}
