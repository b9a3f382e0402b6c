package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/scopetools/walker"
)

// HandleWalk routes the walk command to the appropriate subcommand handler.
func HandleWalk(args []string) error {
	if len(args) == 0 {
		printWalkUsage()
		return fmt.Errorf("walk command requires a subcommand")
	}

	subcommand := args[0]

	// Handle --help at walk level
	if subcommand == "--help" || subcommand == "-h" || subcommand == "help" {
		printWalkUsage()
		return nil
	}

	subArgs := args[1:]

	switch subcommand {
	case "operations":
		return HandleOperations(subArgs)
	case "schemas":
		return handleWalkSchemas(subArgs)
	case "refs":
		return handleWalkRefs(subArgs)
	default:
		printWalkUsage()
		return fmt.Errorf("unknown walk subcommand: %s", subcommand)
	}
}

func printWalkUsage() {
	Writef(os.Stderr, "Usage: scopetools walk <subcommand> [flags] <file|url|->\n\n")
	Writef(os.Stderr, "Traverse a Swagger 2.0 document and report its nodes.\n\n")
	Writef(os.Stderr, "Subcommands:\n")
	Writef(os.Stderr, "  operations   List operations (same as 'scopetools operations')\n")
	Writef(os.Stderr, "  schemas      List schema definitions and inline schemas\n")
	Writef(os.Stderr, "  refs         List $ref occurrences grouped by target\n")
	Writef(os.Stderr, "\nExamples:\n")
	Writef(os.Stderr, "  scopetools walk schemas master.yaml\n")
	Writef(os.Stderr, "  scopetools walk schemas --definitions-only master.yaml\n")
	Writef(os.Stderr, "  scopetools walk refs --target '#/definitions/Account' master.yaml\n")
}

// schemaReport is the structured output row for one schema.
type schemaReport struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	JSONPath     string `json:"jsonPath" yaml:"jsonPath"`
	IsDefinition bool   `json:"isDefinition" yaml:"isDefinition"`
}

// handleWalkSchemas implements the "walk schemas" subcommand.
func handleWalkSchemas(args []string) error {
	fs := flag.NewFlagSet("walk schemas", flag.ContinueOnError)
	definitionsOnly := fs.Bool("definitions-only", false, "only show schemas under definitions")
	format := fs.String("format", FormatText, "output format: text, json, yaml")
	quiet := fs.Bool("q", false, "suppress headers and decoration")
	fs.BoolVar(quiet, "quiet", false, "suppress headers and decoration")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(*format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("walk schemas requires exactly one file path, URL, or '-' for stdin")
	}

	result, err := parseSpec(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("walk schemas: parsing %s: %w", FormatSpecPath(fs.Arg(0)), err)
	}

	collector, err := walker.CollectSchemas(result)
	if err != nil {
		return fmt.Errorf("walk schemas: collecting schemas: %w", err)
	}

	matched := collector.All
	if *definitionsOnly {
		matched = collector.Definitions
	}
	if len(matched) == 0 {
		renderNoResults("schemas", *quiet)
		return nil
	}

	reports := make([]schemaReport, 0, len(matched))
	for _, info := range matched {
		reports = append(reports, schemaReport{
			Name:         info.Name,
			Type:         info.Schema.Type,
			JSONPath:     info.JSONPath,
			IsDefinition: info.IsDefinition,
		})
	}

	if *format != FormatText {
		return OutputStructured(reports, *format)
	}

	if !*quiet {
		Writef(os.Stdout, "%-30s %-10s %s\n", "NAME", "TYPE", "JSON PATH")
	}
	for _, report := range reports {
		Writef(os.Stdout, "%-30s %-10s %s\n", report.Name, report.Type, report.JSONPath)
	}
	return nil
}

// refReport is the structured output row for one $ref target.
type refReport struct {
	Target  string   `json:"target" yaml:"target"`
	Count   int      `json:"count" yaml:"count"`
	Sources []string `json:"sources" yaml:"sources"`
}

// handleWalkRefs implements the "walk refs" subcommand.
func handleWalkRefs(args []string) error {
	fs := flag.NewFlagSet("walk refs", flag.ContinueOnError)
	target := fs.String("target", "", "only show refs pointing at this target")
	format := fs.String("format", FormatText, "output format: text, json, yaml")
	quiet := fs.Bool("q", false, "suppress headers and decoration")
	fs.BoolVar(quiet, "quiet", false, "suppress headers and decoration")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(*format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("walk refs requires exactly one file path, URL, or '-' for stdin")
	}

	result, err := parseSpec(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("walk refs: parsing %s: %w", FormatSpecPath(fs.Arg(0)), err)
	}

	collector, err := walker.CollectRefs(result)
	if err != nil {
		return fmt.Errorf("walk refs: collecting refs: %w", err)
	}

	var reports []refReport
	for _, info := range collector.All {
		if *target != "" && info.Ref != *target {
			continue
		}
		idx := -1
		for i := range reports {
			if reports[i].Target == info.Ref {
				idx = i
				break
			}
		}
		if idx < 0 {
			reports = append(reports, refReport{Target: info.Ref})
			idx = len(reports) - 1
		}
		reports[idx].Count++
		reports[idx].Sources = append(reports[idx].Sources, info.SourcePath)
	}

	if len(reports) == 0 {
		renderNoResults("refs", *quiet)
		return nil
	}

	if *format != FormatText {
		return OutputStructured(reports, *format)
	}

	for _, report := range reports {
		Writef(os.Stdout, "%s (%d)\n", report.Target, report.Count)
		if !*quiet {
			for _, source := range report.Sources {
				Writef(os.Stdout, "  %s\n", source)
			}
		}
	}
	return nil
}
