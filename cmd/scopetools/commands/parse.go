package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/scopetools"
	"github.com/erraggy/scopetools/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	ValidateStructure bool
	SourceMap         bool
	Quiet             bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.ValidateStructure, "validate-structure", true, "validate document structure during parsing")
	fs.BoolVar(&flags.SourceMap, "source-map", false, "record source line/column positions for each element")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: scopetools parse [flags] <file|url|->\n\n")
		Writef(output, "Parse a Swagger 2.0 document and report its structure.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  scopetools parse swagger.yaml\n")
		Writef(output, "  scopetools parse https://example.com/api/swagger.yaml\n")
		Writef(output, "  cat swagger.yaml | scopetools parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed or validation errors found\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	p := parser.New()
	p.ValidateStructure = flags.ValidateStructure
	p.BuildSourceMap = flags.SourceMap

	var result *parser.ParseResult
	var err error
	if specPath == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
	} else {
		result, err = p.Parse(specPath)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}

	// Errors always go to stderr, even in quiet mode.
	if len(result.Errors) > 0 {
		Writef(os.Stderr, "Validation Errors:\n")
		for _, e := range result.Errors {
			Writef(os.Stderr, "  - %s\n", e)
		}
		Writef(os.Stderr, "\n")
		return fmt.Errorf("document has %d validation errors", len(result.Errors))
	}

	// Diagnostics go to stderr to keep stdout clean for pipelining.
	if !flags.Quiet {
		Writef(os.Stderr, "scopetools version: %s\n", scopetools.Version())
		Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
		Writef(os.Stderr, "Title: %s\n", result.Document.Info.Title)
		Writef(os.Stderr, "Version: %s\n", result.Document.Info.Version)
		Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
		Writef(os.Stderr, "Paths: %d\n", result.Stats.PathCount)
		Writef(os.Stderr, "Operations: %d\n", result.Stats.OperationCount)
		Writef(os.Stderr, "Definitions: %d\n", result.Stats.DefinitionCount)
		Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)

		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "\nWarnings (%d):\n", len(result.Warnings))
			for _, warning := range result.Warnings {
				Writef(os.Stderr, "  - %s\n", warning)
			}
		}
	}

	data, err := MarshalDocument(result.Document, result.SourceFormat)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if _, err = os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing document to stdout: %w", err)
	}
	return nil
}
