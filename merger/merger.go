package merger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scopetools/internal/fileutil"
	"github.com/erraggy/scopetools/oaserrors"
	"github.com/erraggy/scopetools/parser"
)

// Config configures how documents are merged.
type Config struct {
	// Logger receives debug diagnostics for path overwrites, definition
	// merges, and per-service progress. Defaults to parser.NopLogger.
	Logger parser.Logger
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Logger: parser.NopLogger{},
	}
}

// Merger builds master documents from per-service documents.
//
// Concurrency: Merger instances are not safe for concurrent use.
// Create separate Merger instances for concurrent operations.
type Merger struct {
	config Config
	// SourceMaps maps source file paths to their SourceMaps for location
	// lookup. When populated, overwrite diagnostics and metadata warnings
	// include line/column information.
	SourceMaps map[string]*parser.SourceMap
}

// New creates a new Merger instance with the provided configuration.
func New(config Config) *Merger {
	if config.Logger == nil {
		config.Logger = parser.NopLogger{}
	}
	return &Merger{
		config: config,
	}
}

// MergeResult contains the merged master document and its metadata.
// Results are built once and never mutated afterwards; they are safe for
// concurrent readers.
type MergeResult struct {
	// Document is the merged master document.
	Document *parser.Document
	// Dependencies maps every operation id that declared x-depends-on to
	// its direct dependency ids, across all merged services.
	Dependencies DependencyTable
	// SourceFormat is the format of the skeleton document (JSON or YAML);
	// WriteResult matches it.
	SourceFormat parser.SourceFormat
	// Warnings contains non-fatal issues encountered during merging.
	Warnings []string
	// StructuredWarnings contains the same warnings with location and
	// category detail.
	StructuredWarnings MergeWarnings
	// Stats contains statistical information about the merged document.
	Stats parser.DocumentStats

	// skeletonPath stores the path of the skeleton document for diagnostics.
	skeletonPath string
	// pathOrigins tracks which source last defined each merged path.
	pathOrigins map[string]string
}

// AddWarning adds a structured warning and its display string.
func (r *MergeResult) AddWarning(w *MergeWarning) {
	r.StructuredWarnings = append(r.StructuredWarnings, w)
	r.Warnings = append(r.Warnings, w.String())
}

// documentContext tracks the source file and document index for diagnostics.
type documentContext struct {
	filePath string
	docIndex int
}

// Merge parses the skeleton and service documents from files and merges
// them into a master document.
func (m *Merger) Merge(skeletonPath string, servicePaths []string) (*MergeResult, error) {
	if len(servicePaths) < 1 {
		return nil, fmt.Errorf("merger: at least 1 service document is required for merging, got %d", len(servicePaths))
	}

	skeleton, err := m.parseInput(skeletonPath, 0, 1+len(servicePaths))
	if err != nil {
		return nil, err
	}

	services := make([]parser.ParseResult, 0, len(servicePaths))
	for i, path := range servicePaths {
		result, err := m.parseInput(path, i+1, 1+len(servicePaths))
		if err != nil {
			return nil, err
		}
		services = append(services, *result)
	}
	return m.MergeParsed(*skeleton, services)
}

// parseInput parses one input document with structure validation enabled.
func (m *Merger) parseInput(path string, index, total int) (*parser.ParseResult, error) {
	result, err := parser.ParseWithOptions(
		parser.WithFilePath(path),
		parser.WithValidateStructure(true),
		parser.WithLogger(m.config.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("merger: failed to parse %s (%d of %d): %w", path, index+1, total, err)
	}
	if len(result.Errors) > 0 {
		errMsg := fmt.Sprintf("merger: validation errors (%d error(s)) in %s (%d of %d):", len(result.Errors), path, index+1, total)
		for idx, e := range result.Errors {
			errMsg += fmt.Sprintf("\n  %d. %v", idx+1, e)
		}
		return nil, fmt.Errorf("%s", errMsg)
	}
	return result, nil
}

// MergeParsed merges already-parsed documents into a master document.
// The skeleton provides the master's identity and top-level metadata;
// services are folded in, in order.
func (m *Merger) MergeParsed(skeleton parser.ParseResult, services []parser.ParseResult) (*MergeResult, error) {
	if skeleton.Document == nil {
		return nil, fmt.Errorf("merger: skeleton (%s): %w", displayName(skeleton.SourcePath), oaserrors.ErrNoDocument)
	}
	if len(skeleton.Errors) > 0 {
		return nil, fmt.Errorf("merger: skeleton (%s) has %d parse error(s)", displayName(skeleton.SourcePath), len(skeleton.Errors))
	}
	if len(services) < 1 {
		return nil, fmt.Errorf("merger: at least 1 service document is required for merging, got %d", len(services))
	}
	for i, svc := range services {
		if svc.Document == nil {
			return nil, fmt.Errorf("merger: services[%d] (%s): %w", i, displayName(svc.SourcePath), oaserrors.ErrNoDocument)
		}
		if len(svc.Errors) > 0 {
			return nil, fmt.Errorf("merger: services[%d] (%s) has %d parse error(s)", i, displayName(svc.SourcePath), len(svc.Errors))
		}
	}

	result := &MergeResult{
		Dependencies: make(DependencyTable),
		SourceFormat: skeleton.SourceFormat,
		Warnings:     make([]string, 0),
		skeletonPath: skeleton.SourcePath,
		pathOrigins:  make(map[string]string),
	}

	merged := skeleton.Document.DeepCopy()
	ensureDocumentMaps(merged)
	for path := range merged.Paths {
		result.pathOrigins[path] = skeleton.SourcePath
	}

	// The skeleton's own operations participate in the dependency table
	// like any service's.
	recordDependencies(result.Dependencies, merged.Paths)

	for i, svc := range services {
		// Warn about generic source names that make override reports less useful
		if IsGenericSourceName(svc.SourcePath) {
			result.AddWarning(NewGenericSourceNameWarning(svc.SourcePath, i))
		}
		ctx := documentContext{filePath: svc.SourcePath, docIndex: i}
		m.mergeService(merged, svc.Document, ctx, result)
		m.config.Logger.Debug("merged service",
			"source", ctx.filePath,
			"paths", len(svc.Document.Paths),
			"definitions", len(svc.Document.Definitions))
	}

	merged.Tags = RebuildTags(merged)

	version, err := m.sumServiceVersions(services)
	if err != nil {
		return nil, err
	}
	if merged.Info == nil {
		merged.Info = &parser.Info{}
	}
	merged.Info.Version = version

	result.Document = merged
	result.Stats = parser.GetDocumentStats(merged)

	m.config.Logger.Info("merged master document",
		"services", len(services),
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"definitions", result.Stats.DefinitionCount,
		"dependencies", len(result.Dependencies),
		"version", version)

	return result, nil
}

// mergeService folds a single service document into the merged document.
func (m *Merger) mergeService(merged, svc *parser.Document, ctx documentContext, result *MergeResult) {
	m.mergeServicePaths(merged, svc, ctx, result)
	m.mergeServiceDefinitions(merged, svc, ctx)
	recordDependencies(result.Dependencies, svc.Paths)
	m.mergeServiceMetadata(merged, svc, ctx, result)
}

// sumServiceVersions computes the component-wise sum of the service
// versions. A non-numeric component anywhere is fatal.
func (m *Merger) sumServiceVersions(services []parser.ParseResult) (string, error) {
	total := "0"
	for _, svc := range services {
		v := documentVersion(svc.Document)
		summed, err := sumVersions(total, v)
		if err != nil {
			var verErr *oaserrors.VersionError
			if errors.As(err, &verErr) {
				verErr.Source = displayName(svc.SourcePath)
			}
			return "", fmt.Errorf("merger: %w", err)
		}
		total = summed
	}
	return total, nil
}

// WriteResult writes a merge result to a file in YAML or JSON format
// (matching the skeleton's format).
//
// The output file is written with restrictive permissions (owner read/write
// only) to protect potentially sensitive API specifications. If the file
// already exists, its permissions are explicitly reset after writing.
func (m *Merger) WriteResult(result *MergeResult, outputPath string) error {
	var data []byte
	var err error

	if result.SourceFormat == parser.SourceFormatJSON {
		data, err = json.MarshalIndent(result.Document, "", "  ")
	} else {
		data, err = yaml.Marshal(result.Document)
	}
	if err != nil {
		return fmt.Errorf("merger: failed to marshal merged document: %w", err)
	}

	if err := os.WriteFile(outputPath, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("merger: failed to write output file: %w", err)
	}
	if err := os.Chmod(outputPath, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("merger: failed to set output file permissions: %w", err)
	}
	return nil
}

// getLocation looks up the source location for a JSON path in a specific
// file. Returns 0,0 if no SourceMap is available or the path is unknown.
func (m *Merger) getLocation(filePath, jsonPath string) (line, col int) {
	if m.SourceMaps == nil {
		return 0, 0
	}
	sm := m.SourceMaps[filePath]
	if sm == nil {
		return 0, 0
	}
	loc := sm.Get(jsonPath)
	return loc.Line, loc.Column
}

// displayName returns a stable identifier for diagnostics when a source
// path may be empty.
func displayName(sourcePath string) string {
	if sourcePath == "" {
		return "<unnamed>"
	}
	return sourcePath
}
