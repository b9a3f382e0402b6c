package scoper

import (
	"fmt"

	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/parser"
)

// Scoper holds a built master document and one filtered document per role.
//
// A Scoper is immutable after New returns: the stored documents are never
// modified again, so all accessors are safe for concurrent readers. Callers
// must not modify returned documents in place.
type Scoper struct {
	master   *parser.Document
	deps     merger.DependencyTable
	roles    map[string]*roleResult
	warnings []string
}

// New builds the master document and every role's filtered document in one
// synchronous pass. There is nothing to cancel and no partial result: if
// New returns an error, no role document exists.
func New(opts ...Option) (*Scoper, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("scoper: invalid options: %w", err)
	}

	mergeResult, err := buildMaster(cfg)
	if err != nil {
		return nil, err
	}

	s := &Scoper{
		master:   mergeResult.Document,
		deps:     mergeResult.Dependencies,
		roles:    make(map[string]*roleResult, len(cfg.roles)),
		warnings: append([]string(nil), mergeResult.Warnings...),
	}

	for _, roleID := range maputil.SortedKeys(cfg.roles) {
		granted := s.grantedOperations(roleID, cfg.roles[roleID], cfg.features, cfg.logger)
		result := filterRole(roleID, s.master, s.deps, granted)
		s.roles[roleID] = result
		cfg.logger.Debug("scoped role",
			"role", roleID,
			"operations", len(result.opIDs),
			"paths", len(result.doc.Paths),
			"definitions", len(result.doc.Definitions),
			"chains", len(result.chains))
	}

	cfg.logger.Info("built role documents",
		"roles", len(s.roles),
		"master_operations", parser.GetDocumentStats(s.master).OperationCount,
		"warnings", len(s.warnings))

	return s, nil
}

// buildMaster produces the master document, either by merging the skeleton
// and service documents or by loading a supplied override verbatim.
func buildMaster(cfg *scoperConfig) (*merger.MergeResult, error) {
	if cfg.overridePath != "" || cfg.overrideDoc != nil {
		return loadOverrideMaster(cfg)
	}

	// In-memory documents have no file path; name them after the option
	// they arrived through so merge diagnostics stay attributable.
	skeleton := parser.ParseResult{SourcePath: "WithSkeleton", Document: cfg.skeletonDoc}
	if cfg.skeletonDoc == nil {
		doc, err := cfg.loader.Load(cfg.skeletonPath)
		if err != nil {
			return nil, fmt.Errorf("scoper: failed to load skeleton %s: %w", cfg.skeletonPath, err)
		}
		skeleton = parser.ParseResult{SourcePath: cfg.skeletonPath, Document: doc}
	}

	services := make([]parser.ParseResult, 0, len(cfg.serviceDocs)+len(cfg.servicePaths))
	for i, doc := range cfg.serviceDocs {
		services = append(services, parser.ParseResult{
			SourcePath: fmt.Sprintf("WithServiceDocuments[%d]", i),
			Document:   doc,
		})
	}
	for _, path := range cfg.servicePaths {
		doc, err := cfg.loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("scoper: failed to load service %s: %w", path, err)
		}
		services = append(services, parser.ParseResult{SourcePath: path, Document: doc})
	}

	result, err := merger.New(merger.Config{Logger: cfg.logger}).MergeParsed(skeleton, services)
	if err != nil {
		return nil, fmt.Errorf("scoper: failed to build master document: %w", err)
	}
	return result, nil
}

// loadOverrideMaster loads a pre-merged master, bypassing the merge. The
// dependency table is the caller-supplied one or empty.
func loadOverrideMaster(cfg *scoperConfig) (*merger.MergeResult, error) {
	doc := cfg.overrideDoc
	sourcePath := "WithMasterOverride"
	if cfg.overridePath != "" {
		loaded, err := cfg.loader.Load(cfg.overridePath)
		if err != nil {
			return nil, fmt.Errorf("scoper: failed to load master override %s: %w", cfg.overridePath, err)
		}
		doc = loaded
		sourcePath = cfg.overridePath
	}

	opts := []merger.Option{
		merger.WithMasterOverride(parser.ParseResult{SourcePath: sourcePath, Document: doc}),
		merger.WithLogger(cfg.logger),
	}
	if cfg.dependencies != nil {
		opts = append(opts, merger.WithDependencies(cfg.dependencies))
	}

	result, err := merger.MergeWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("scoper: failed to build master document: %w", err)
	}
	return result, nil
}

// grantedOperations unions the operation ids granted through the role's
// features. A feature id absent from the feature table contributes nothing;
// the mismatch is recorded as a warning.
func (s *Scoper) grantedOperations(roleID string, featureIDs []string, features map[string]Feature, logger parser.Logger) map[string]bool {
	granted := make(map[string]bool)
	for _, featureID := range featureIDs {
		feature, ok := features[featureID]
		if !ok {
			s.warnings = append(s.warnings, fmt.Sprintf("role %q references unknown feature %q", roleID, featureID))
			logger.Debug("unknown feature skipped", "role", roleID, "feature", featureID)
			continue
		}
		for _, id := range feature.OperationIDs {
			if id != "" {
				granted[id] = true
			}
		}
	}
	return granted
}

// Spec returns the filtered document for a role. The boolean reports
// whether the role exists.
func (s *Scoper) Spec(roleID string) (*parser.Document, bool) {
	result, ok := s.roles[roleID]
	if !ok {
		return nil, false
	}
	return result.doc, true
}

// OperationIDs returns the distinct operation ids present in a role's
// document across all paths and methods, sorted. Unknown roles return nil.
func (s *Scoper) OperationIDs(roleID string) []string {
	result, ok := s.roles[roleID]
	if !ok {
		return nil
	}
	return append([]string(nil), result.opIDs...)
}

// DependencyOperationIDs returns a role's deduplicated dependency chains,
// in resolution order. Unknown roles return nil.
func (s *Scoper) DependencyOperationIDs(roleID string) []string {
	result, ok := s.roles[roleID]
	if !ok {
		return nil
	}
	return append([]string(nil), result.chains...)
}

// Roles returns the built role ids, sorted.
func (s *Scoper) Roles() []string {
	return maputil.SortedKeys(s.roles)
}

// Master returns the merged master document.
func (s *Scoper) Master() *parser.Document {
	return s.master
}

// Dependencies returns the master's dependency table.
func (s *Scoper) Dependencies() merger.DependencyTable {
	return s.deps.Copy()
}

// Warnings returns the non-fatal issues recorded during the build: merge
// warnings followed by role warnings in sorted role order.
func (s *Scoper) Warnings() []string {
	return append([]string(nil), s.warnings...)
}
