package scoper

import (
	"github.com/erraggy/scopetools/internal/options"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/oaserrors"
	"github.com/erraggy/scopetools/parser"
)

// Feature is a named bundle of operation ids exposed together. Roles grant
// features; the union of a role's features' operation ids determines which
// operations that role's document keeps.
type Feature struct {
	// OperationIDs lists the operation ids this feature exposes.
	OperationIDs []string
}

// Option is a function that configures a scoper build
type Option func(*scoperConfig) error

// scoperConfig holds configuration for a scoper build
type scoperConfig struct {
	// Skeleton input (exactly one source required outside override mode)
	skeletonPath string
	skeletonDoc  *parser.Document

	// Service inputs (at least 1 required outside override mode)
	servicePaths []string
	serviceDocs  []*parser.Document

	// Master override (skips merging entirely)
	overridePath string
	overrideDoc  *parser.Document

	// Dependency table supplied alongside a master override
	dependencies merger.DependencyTable

	// Feature and role tables (may be empty)
	features map[string]Feature
	roles    map[string][]string

	// Loader for file-based inputs (nil means the parser-backed default)
	loader DocumentLoader

	// Logger for build diagnostics (nil means parser.NopLogger)
	logger parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*scoperConfig, error) {
	cfg := &scoperConfig{
		servicePaths: make([]string, 0),
		serviceDocs:  make([]*parser.Document, 0),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.logger == nil {
		cfg.logger = parser.NopLogger{}
	}
	if cfg.loader == nil {
		cfg.loader = fileLoader{logger: cfg.logger}
	}
	if cfg.features == nil {
		cfg.features = make(map[string]Feature)
	}
	if cfg.roles == nil {
		cfg.roles = make(map[string][]string)
	}

	hasSkeleton := cfg.skeletonPath != "" || cfg.skeletonDoc != nil
	hasServices := len(cfg.servicePaths)+len(cfg.serviceDocs) > 0

	if cfg.overridePath != "" || cfg.overrideDoc != nil {
		if cfg.overridePath != "" && cfg.overrideDoc != nil {
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
		"a skeleton document is required (use WithSkeletonFile or WithSkeleton)",
		"use only one of WithSkeletonFile or WithSkeleton",
		cfg.skeletonPath != "", cfg.skeletonDoc != nil,
	); err != nil {
		return nil, &oaserrors.ConfigError{Option: "skeleton", Cause: err}
	}
	if !hasServices {
		return nil, &oaserrors.ConfigError{
			Option:  "services",
			Message: "at least 1 service document is required for merging (use WithServiceFiles or WithServiceDocuments)",
		}
	}

	return cfg, nil
}

// WithSkeletonFile specifies the skeleton document by file path. The
// skeleton provides the master's identity and top-level metadata.
func WithSkeletonFile(path string) Option {
	return func(cfg *scoperConfig) error {
		cfg.skeletonPath = path
		return nil
	}
}

// WithSkeleton specifies an already-parsed skeleton document.
func WithSkeleton(doc *parser.Document) Option {
	return func(cfg *scoperConfig) error {
		cfg.skeletonDoc = doc
		return nil
	}
}

// WithServiceFiles adds service documents by file path, loaded through the
// configured DocumentLoader. Services merge in the order given.
func WithServiceFiles(paths ...string) Option {
	return func(cfg *scoperConfig) error {
		cfg.servicePaths = append(cfg.servicePaths, paths...)
		return nil
	}
}

// WithServiceDocuments adds already-parsed service documents. Parsed
// services merge before file-based ones, in the order given.
func WithServiceDocuments(docs ...*parser.Document) Option {
	return func(cfg *scoperConfig) error {
		cfg.serviceDocs = append(cfg.serviceDocs, docs...)
		return nil
	}
}

// WithFeatures supplies the feature table mapping feature ids to the
// operation ids they expose.
func WithFeatures(features map[string]Feature) Option {
	return func(cfg *scoperConfig) error {
		cfg.features = features
		return nil
	}
}

// WithRoles supplies the role table mapping role ids to the feature ids
// granted to each role. One filtered document is built per role.
func WithRoles(roles map[string][]string) Option {
	return func(cfg *scoperConfig) error {
		cfg.roles = roles
		return nil
	}
}

// WithMasterOverrideFile supplies a pre-merged master document by file
// path, skipping the merge entirely. Cannot be combined with skeleton or
// service inputs.
func WithMasterOverrideFile(path string) Option {
	return func(cfg *scoperConfig) error {
		cfg.overridePath = path
		return nil
	}
}

// WithMasterOverride supplies an already-parsed pre-merged master document,
// skipping the merge entirely. Cannot be combined with skeleton or service
// inputs.
func WithMasterOverride(doc *parser.Document) Option {
	return func(cfg *scoperConfig) error {
		cfg.overrideDoc = doc
		return nil
	}
}

// WithDependencies supplies a dependency table for a master override.
// Without it an override build resolves every dependency chain to empty.
// Only valid together with a master override; merging derives its own table
// from x-depends-on declarations.
func WithDependencies(deps merger.DependencyTable) Option {
	return func(cfg *scoperConfig) error {
		cfg.dependencies = deps
		return nil
	}
}

// WithLoader sets the DocumentLoader used for file-based inputs. Defaults
// to a parser-backed filesystem loader.
func WithLoader(loader DocumentLoader) Option {
	return func(cfg *scoperConfig) error {
		cfg.loader = loader
		return nil
	}
}

// WithLogger sets the logger for build diagnostics. Defaults to
// parser.NopLogger.
func WithLogger(logger parser.Logger) Option {
	return func(cfg *scoperConfig) error {
		cfg.logger = logger
		return nil
	}
}
