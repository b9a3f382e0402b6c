package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/scopetools"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/parser"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Output     string
	SourceMaps bool
	Quiet      bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.SourceMaps, "source-maps", false, "include source line/column locations in overwrite warnings")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages (for pipelining)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: scopetools merge [flags] <skeleton> <service1> [service2...]\n\n")
		Writef(output, "Merge per-service Swagger 2.0 documents into a master document.\n\n")
		Writef(output, "The skeleton provides the master's identity and top-level metadata.\n")
		Writef(output, "Each service's paths are prefixed with its basePath, definitions are\n")
		Writef(output, "deep-merged, x-depends-on declarations are collected into a dependency\n")
		Writef(output, "table, and the master version is the component-wise sum of the service\n")
		Writef(output, "versions.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  scopetools merge -o master.yaml skeleton.yaml users.yaml billing.yaml\n")
		Writef(output, "  scopetools merge --source-maps skeleton.yaml users.yaml billing.yaml\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  scopetools merge -q skeleton.yaml users.yaml | scopetools parse -q -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Later services win path and definition collisions; each overwrite is warned\n")
		Writef(output, "  - The output format matches the skeleton's format (JSON or YAML)\n")
		Writef(output, "  - When -o is specified, the file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("merge command requires a skeleton and at least 1 service file")
	}

	skeletonPath := fs.Arg(0)
	servicePaths := fs.Args()[1:]

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, fs.Args()); err != nil {
			return err
		}
	}

	opts := []merger.Option{
		merger.WithSkeletonFile(skeletonPath),
		merger.WithServiceFiles(servicePaths...),
	}
	if flags.SourceMaps {
		sourceMaps, err := buildSourceMaps(fs.Args())
		if err != nil {
			return err
		}
		opts = append(opts, merger.WithSourceMaps(sourceMaps))
	}

	startTime := time.Now()
	result, err := merger.MergeWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("merging service documents: %w", err)
	}
	totalTime := time.Since(startTime)

	// Diagnostics go to stderr to keep stdout clean for pipelining.
	if !flags.Quiet {
		Writef(os.Stderr, "Service Document Merger\n")
		Writef(os.Stderr, "=======================\n\n")
		Writef(os.Stderr, "scopetools version: %s\n", scopetools.Version())
		Writef(os.Stderr, "Merged %d service documents into %s\n", len(servicePaths), skeletonPath)
		Writef(os.Stderr, "Master Version: %s\n", result.Document.Info.Version)
		Writef(os.Stderr, "Paths: %d\n", result.Stats.PathCount)
		Writef(os.Stderr, "Operations: %d\n", result.Stats.OperationCount)
		Writef(os.Stderr, "Definitions: %d\n", result.Stats.DefinitionCount)
		Writef(os.Stderr, "Operations with dependencies: %d\n", len(result.Dependencies))
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", len(result.Warnings))
			for _, warning := range result.Warnings {
				Writef(os.Stderr, "  - %s\n", warning)
			}
			Writef(os.Stderr, "\n")
		}
	}

	if flags.Output != "" {
		m := merger.New(merger.DefaultConfig())
		if err := m.WriteResult(result, flags.Output); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
		return nil
	}

	data, err := MarshalDocument(result.Document, result.SourceFormat)
	if err != nil {
		return fmt.Errorf("marshaling master document: %w", err)
	}
	if _, err = os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing master document to stdout: %w", err)
	}
	return nil
}

// buildSourceMaps parses every input with source mapping enabled so merge
// warnings can report source locations.
func buildSourceMaps(paths []string) (map[string]*parser.SourceMap, error) {
	p := parser.New()
	p.BuildSourceMap = true

	sourceMaps := make(map[string]*parser.SourceMap, len(paths))
	for _, path := range paths {
		result, err := p.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("building source map for %s: %w", path, err)
		}
		sourceMaps[path] = result.SourceMap
	}
	return sourceMaps, nil
}
