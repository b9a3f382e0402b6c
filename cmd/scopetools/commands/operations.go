package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/walker"
)

// OperationsFlags contains flags for the operations command
type OperationsFlags struct {
	Method string
	Path   string
	Tag    string
	Chains bool
	Format string
	Quiet  bool
}

// operationReport is the structured output row for one operation.
type operationReport struct {
	Method      string   `json:"method" yaml:"method"`
	Path        string   `json:"path" yaml:"path"`
	OperationID string   `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	DependsOn   []string `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	Chains      []string `json:"chains,omitempty" yaml:"chains,omitempty"`
}

// SetupOperationsFlags creates and configures a FlagSet for the operations command.
// Returns the FlagSet and an OperationsFlags struct with bound flag variables.
func SetupOperationsFlags() (*flag.FlagSet, *OperationsFlags) {
	fs := flag.NewFlagSet("operations", flag.ContinueOnError)
	flags := &OperationsFlags{}

	fs.StringVar(&flags.Method, "method", "", "filter by HTTP method (e.g., get, post)")
	fs.StringVar(&flags.Path, "path", "", "filter by path pattern (* matches one segment)")
	fs.StringVar(&flags.Tag, "tag", "", "filter by tag")
	fs.BoolVar(&flags.Chains, "chains", false, "resolve transitive dependency chains from x-depends-on declarations")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: scopetools operations [flags] <file|url|->\n\n")
		Writef(output, "List the operations in a Swagger 2.0 document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  scopetools operations master.yaml\n")
		Writef(output, "  scopetools operations --tag accounts --method get master.yaml\n")
		Writef(output, "  scopetools operations --path '/accounts/*' master.yaml\n")
		Writef(output, "  scopetools operations --chains --format json master.yaml\n")
	}

	return fs, flags
}

// HandleOperations executes the operations command
func HandleOperations(args []string) error {
	fs, flags := SetupOperationsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("operations command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	result, err := parseSpec(specPath)
	if err != nil {
		return fmt.Errorf("operations: parsing %s: %w", FormatSpecPath(specPath), err)
	}

	collector, err := walker.CollectOperations(result)
	if err != nil {
		return fmt.Errorf("operations: collecting operations: %w", err)
	}

	// The dependency table is built from the document's own declarations
	// so chains resolve against what this document actually contains.
	table := make(merger.DependencyTable)
	for _, info := range collector.All {
		if deps := info.Operation.DependencyOperationIDs(); len(deps) > 0 && info.Operation.OperationID != "" {
			table.Set(info.Operation.OperationID, deps)
		}
	}

	var reports []operationReport
	for _, info := range collector.All {
		if flags.Method != "" && !strings.EqualFold(info.Method, flags.Method) {
			continue
		}
		if flags.Tag != "" && !hasTag(info.Operation.Tags, flags.Tag) {
			continue
		}
		if !matchPath(info.PathTemplate, flags.Path) {
			continue
		}
		report := operationReport{
			Method:      info.Method,
			Path:        info.PathTemplate,
			OperationID: info.Operation.OperationID,
			Tags:        info.Operation.Tags,
			DependsOn:   info.Operation.DependencyOperationIDs(),
		}
		if flags.Chains {
			report.Chains = table.Chains(info.Operation.OperationID)
		}
		reports = append(reports, report)
	}

	if len(reports) == 0 {
		renderNoResults("operations", flags.Quiet)
		return nil
	}

	if flags.Format != FormatText {
		return OutputStructured(reports, flags.Format)
	}

	if !flags.Quiet {
		Writef(os.Stdout, "%-7s %-40s %s\n", "METHOD", "PATH", "OPERATION ID")
	}
	for _, report := range reports {
		Writef(os.Stdout, "%-7s %-40s %s\n", strings.ToUpper(report.Method), report.Path, report.OperationID)
		if len(report.DependsOn) > 0 {
			Writef(os.Stdout, "        depends on: %s\n", strings.Join(report.DependsOn, ", "))
		}
		for _, chain := range report.Chains {
			Writef(os.Stdout, "        chain: %s\n", chain)
		}
	}
	return nil
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

// matchPath checks if a path template matches a pattern where * matches
// exactly one path segment (e.g., /accounts/* matches /accounts/{accountId}
// but not /accounts/{accountId}/history).
func matchPath(pathTemplate, pattern string) bool {
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
