package merger

import (
	"fmt"

	"github.com/erraggy/scopetools/internal/options"
	"github.com/erraggy/scopetools/oaserrors"
	"github.com/erraggy/scopetools/parser"
)

// Option is a function that configures a merge operation
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation
type mergeConfig struct {
	// Skeleton input (exactly one source required outside override mode)
	skeletonPath   string
	skeletonParsed *parser.ParseResult

	// Service inputs (at least 1 required outside override mode)
	servicePaths   []string
	servicesParsed []parser.ParseResult

	// Master override (skips merging entirely)
	overridePath   string
	overrideParsed *parser.ParseResult

	// Dependency table supplied alongside a master override
	dependencies DependencyTable

	// Logger for merge diagnostics (nil means parser.NopLogger)
	logger parser.Logger

	// Source location tracking
	sourceMaps map[string]*parser.SourceMap
}

// MergeWithOptions merges service documents into a master document using
// functional options. This combines input source selection and
// configuration in a single call.
//
// Example:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithSkeletonFile("skeleton.yaml"),
//	    merger.WithServiceFiles("users.yaml", "billing.yaml"),
//	)
//
// When a master override is supplied the merge is skipped entirely: the
// override document is loaded verbatim as the master, with no base-path
// prefixing and an empty dependency table unless WithDependencies provides
// one.
func MergeWithOptions(opts ...Option) (*MergeResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("merger: invalid options: %w", err)
	}

	m := New(Config{Logger: cfg.logger})
	if cfg.sourceMaps != nil {
		m.SourceMaps = cfg.sourceMaps
	}

	if cfg.overridePath != "" || cfg.overrideParsed != nil {
		return loadOverride(m, cfg)
	}
	return mergeFromSources(m, cfg)
}

// mergeFromSources routes to the appropriate merge method based on input
// sources. When both parsed and file-based services are supplied, parsed
// documents merge first, in the order given.
func mergeFromSources(m *Merger, cfg *mergeConfig) (*MergeResult, error) {
	// Fast path: every input comes from a file
	if cfg.skeletonParsed == nil && len(cfg.servicesParsed) == 0 {
		return m.Merge(cfg.skeletonPath, cfg.servicePaths)
	}

	fromFiles := len(cfg.servicePaths)
	if cfg.skeletonParsed == nil {
		fromFiles++
	}
	next := 0

	skeleton := cfg.skeletonParsed
	if skeleton == nil {
		parsed, err := m.parseInput(cfg.skeletonPath, next, fromFiles)
		if err != nil {
			return nil, err
		}
		skeleton = parsed
		next++
	}

	services := make([]parser.ParseResult, 0, len(cfg.servicesParsed)+len(cfg.servicePaths))
	services = append(services, cfg.servicesParsed...)
	for _, path := range cfg.servicePaths {
		parsed, err := m.parseInput(path, next, fromFiles)
		if err != nil {
			return nil, err
		}
		services = append(services, *parsed)
		next++
	}
	return m.MergeParsed(*skeleton, services)
}

// loadOverride builds a result from a pre-merged master document,
// bypassing base-path prefixing and dependency recording.
func loadOverride(m *Merger, cfg *mergeConfig) (*MergeResult, error) {
	parsed := cfg.overrideParsed
	if cfg.overridePath != "" {
		loaded, err := m.parseInput(cfg.overridePath, 0, 1)
		if err != nil {
			return nil, err
		}
		parsed = loaded
	} else {
		if parsed.Document == nil {
			return nil, fmt.Errorf("merger: master override (%s): %w", displayName(parsed.SourcePath), oaserrors.ErrNoDocument)
		}
		if len(parsed.Errors) > 0 {
			return nil, fmt.Errorf("merger: master override (%s) has %d parse error(s)", displayName(parsed.SourcePath), len(parsed.Errors))
		}
	}

	deps := make(DependencyTable)
	if cfg.dependencies != nil {
		deps = cfg.dependencies.Copy()
	}

	doc := parsed.Document.DeepCopy()
	result := &MergeResult{
		Document:     doc,
		Dependencies: deps,
		SourceFormat: parsed.SourceFormat,
		Warnings:     make([]string, 0),
		skeletonPath: parsed.SourcePath,
		pathOrigins:  make(map[string]string),
		Stats:        parser.GetDocumentStats(doc),
	}

	m.config.Logger.Info("loaded master override",
		"source", displayName(parsed.SourcePath),
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"dependencies", len(deps))

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*mergeConfig, error) {
	cfg := &mergeConfig{
		servicePaths:   make([]string, 0),
		servicesParsed: make([]parser.ParseResult, 0),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	hasSkeleton := cfg.skeletonPath != "" || cfg.skeletonParsed != nil
	hasServices := len(cfg.servicePaths)+len(cfg.servicesParsed) > 0

	if cfg.overridePath != "" || cfg.overrideParsed != nil {
		if cfg.overridePath != "" && cfg.overrideParsed != nil {
			return nil, &oaserrors.ConfigError{
				Option:  "WithMasterOverride",
				Message: "use only one of WithMasterOverrideFile or WithMasterOverride",
			}
		}
		if hasSkeleton || hasServices {
			return nil, &oaserrors.ConfigError{
				Option:  "WithMasterOverride",
				Message: "a master override bypasses merging and cannot be combined with skeleton or service inputs",
			}
		}
		return cfg, nil
	}

	if cfg.dependencies != nil {
		return nil, &oaserrors.ConfigError{
			Option:  "WithDependencies",
			Message: "a dependency table can only be supplied alongside a master override; merging derives its own",
		}
	}

	if err := options.ValidateSingleInputSource(
		"a skeleton document is required (use WithSkeletonFile or WithSkeletonParsed)",
		"use only one of WithSkeletonFile or WithSkeletonParsed",
		cfg.skeletonPath != "", cfg.skeletonParsed != nil,
	); err != nil {
		return nil, &oaserrors.ConfigError{Option: "skeleton", Cause: err}
	}
	if !hasServices {
		return nil, &oaserrors.ConfigError{
			Option:  "services",
			Message: "at least 1 service document is required for merging (use WithServiceFiles or WithServicesParsed)",
		}
	}

	return cfg, nil
}

// WithSkeletonFile specifies the skeleton document by file path. The
// skeleton provides the master's identity and top-level metadata; its
// paths are kept unprefixed.
func WithSkeletonFile(path string) Option {
	return func(cfg *mergeConfig) error {
		cfg.skeletonPath = path
		return nil
	}
}

// WithSkeletonParsed specifies an already-parsed skeleton document.
func WithSkeletonParsed(doc parser.ParseResult) Option {
	return func(cfg *mergeConfig) error {
		cfg.skeletonParsed = &doc
		return nil
	}
}

// WithServiceFiles adds service documents by file path. Services merge in
// the order given; later services win path and metadata collisions.
func WithServiceFiles(paths ...string) Option {
	return func(cfg *mergeConfig) error {
		cfg.servicePaths = append(cfg.servicePaths, paths...)
		return nil
	}
}

// WithServicesParsed adds already-parsed service documents.
func WithServicesParsed(docs ...parser.ParseResult) Option {
	return func(cfg *mergeConfig) error {
		cfg.servicesParsed = append(cfg.servicesParsed, docs...)
		return nil
	}
}

// WithMasterOverrideFile supplies a pre-merged master document by file
// path, skipping the merge entirely. Cannot be combined with skeleton or
// service inputs.
func WithMasterOverrideFile(path string) Option {
	return func(cfg *mergeConfig) error {
		cfg.overridePath = path
		return nil
	}
}

// WithMasterOverride supplies an already-parsed pre-merged master
// document, skipping the merge entirely. Cannot be combined with skeleton
// or service inputs.
func WithMasterOverride(doc parser.ParseResult) Option {
	return func(cfg *mergeConfig) error {
		cfg.overrideParsed = &doc
		return nil
	}
}

// WithDependencies supplies a dependency table for a master override.
// Without it an override mode result carries an empty table and dependency
// chain resolution degrades to empty. Only valid together with a master
// override; a normal merge derives its own table from x-depends-on
// declarations.
func WithDependencies(deps DependencyTable) Option {
	return func(cfg *mergeConfig) error {
		cfg.dependencies = deps
		return nil
	}
}

// WithLogger sets the logger for merge diagnostics. Defaults to
// parser.NopLogger.
func WithLogger(logger parser.Logger) Option {
	return func(cfg *mergeConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithSourceMaps provides SourceMaps for the input documents. The map keys
// should match the file paths used when parsing (e.g., ParseResult.SourcePath).
// When provided, override warnings and overwrite diagnostics include
// line/column information.
func WithSourceMaps(maps map[string]*parser.SourceMap) Option {
	return func(cfg *mergeConfig) error {
		cfg.sourceMaps = maps
		return nil
	}
}
