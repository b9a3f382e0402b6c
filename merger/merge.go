package merger

import (
	"strings"

	"github.com/erraggy/scopetools/internal/httputil"
	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/parser"
)

// mergeServicePaths inserts every service path, prefixed with the service's
// basePath, into the merged document. A later service silently overwrites a
// colliding exact path string; the overwrite is logged at debug level with
// source locations when SourceMaps are available.
func (m *Merger) mergeServicePaths(merged, svc *parser.Document, ctx documentContext, result *MergeResult) {
	for _, path := range maputil.SortedKeys(svc.Paths) {
		item := svc.Paths[path]
		prefixed := joinPath(svc.BasePath, path)

		if previous, exists := result.pathOrigins[prefixed]; exists {
			line, col := m.getLocation(ctx.filePath, "$.paths."+path)
			m.config.Logger.Debug("path overwritten",
				"path", prefixed,
				"previous", displayName(previous),
				"source", displayName(ctx.filePath),
				"line", line,
				"column", col)
		}

		merged.Paths[prefixed] = item.DeepCopy()
		result.pathOrigins[prefixed] = ctx.filePath
	}
}

// mergeServiceDefinitions folds the service's definitions into the merged
// table. Colliding names deep-merge field by field with the service winning
// per field, so a service can extend a definition another service declared.
func (m *Merger) mergeServiceDefinitions(merged, svc *parser.Document, ctx documentContext) {
	for _, name := range maputil.SortedKeys(svc.Definitions) {
		schema := svc.Definitions[name]
		if existing, ok := merged.Definitions[name]; ok && existing != nil {
			merged.Definitions[name] = mergeSchemas(existing, schema)
			m.config.Logger.Debug("definition merged",
				"definition", name,
				"source", displayName(ctx.filePath))
			continue
		}
		merged.Definitions[name] = schema.DeepCopy()
	}
}

// mergeServiceMetadata merges document-level metadata last-wins for
// non-empty values, recording a warning whenever a non-empty value diverges.
// Tags deduplicate by name in first-seen order without warnings.
func (m *Merger) mergeServiceMetadata(merged, svc *parser.Document, ctx documentContext, result *MergeResult) {
	if svc.Host != "" && svc.Host != merged.Host {
		if merged.Host != "" {
			result.AddWarning(NewMetadataOverrideWarning("host", merged.Host, svc.Host, ctx.filePath))
		}
		merged.Host = svc.Host
	}

	merged.Schemes = m.mergeMetadataSlice(merged.Schemes, svc.Schemes, "schemes", ctx, result)
	merged.Consumes = m.mergeMetadataSlice(merged.Consumes, svc.Consumes, "consumes", ctx, result)
	merged.Produces = m.mergeMetadataSlice(merged.Produces, svc.Produces, "produces", ctx, result)

	for _, name := range maputil.SortedKeys(svc.SecurityDefinitions) {
		if _, exists := merged.SecurityDefinitions[name]; exists {
			line, col := m.getLocation(ctx.filePath, "$.securityDefinitions."+name)
			result.AddWarning(NewComponentOverrideWarning("securityDefinitions", name, ctx.filePath, line, col))
		}
		merged.SecurityDefinitions[name] = svc.SecurityDefinitions[name].DeepCopy()
	}
	for _, name := range maputil.SortedKeys(svc.Parameters) {
		if _, exists := merged.Parameters[name]; exists {
			line, col := m.getLocation(ctx.filePath, "$.parameters."+name)
			result.AddWarning(NewComponentOverrideWarning("parameters", name, ctx.filePath, line, col))
		}
		merged.Parameters[name] = svc.Parameters[name].DeepCopy()
	}
	for _, name := range maputil.SortedKeys(svc.Responses) {
		if _, exists := merged.Responses[name]; exists {
			line, col := m.getLocation(ctx.filePath, "$.responses."+name)
			result.AddWarning(NewComponentOverrideWarning("responses", name, ctx.filePath, line, col))
		}
		merged.Responses[name] = svc.Responses[name].DeepCopy()
	}

	if len(svc.Security) > 0 {
		merged.Security = copySecurityRequirements(svc.Security)
	}
	if svc.ExternalDocs != nil {
		if merged.ExternalDocs != nil && merged.ExternalDocs.URL != svc.ExternalDocs.URL {
			result.AddWarning(NewMetadataOverrideWarning("externalDocs", merged.ExternalDocs.URL, svc.ExternalDocs.URL, ctx.filePath))
		}
		merged.ExternalDocs = svc.ExternalDocs.DeepCopy()
	}

	merged.Tags = mergeTags(merged.Tags, svc.Tags)
}

// mergeMetadataSlice applies last-wins replacement for a document-level
// string slice, warning when a non-empty previous value is replaced by a
// different one.
func (m *Merger) mergeMetadataSlice(existing, incoming []string, field string, ctx documentContext, result *MergeResult) []string {
	if len(incoming) == 0 {
		return existing
	}
	if equalStrings(existing, incoming) {
		return existing
	}
	if len(existing) > 0 {
		result.AddWarning(NewMetadataOverrideWarning(field,
			strings.Join(existing, ", "), strings.Join(incoming, ", "), ctx.filePath))
	}
	out := make([]string, len(incoming))
	copy(out, incoming)
	return out
}

// recordDependencies collects every operation's x-depends-on declarations
// into the table. Operations without an operationId are skipped; a repeated
// operation id overwrites its earlier entry, consistent with the last-wins
// path rule.
func recordDependencies(table DependencyTable, paths parser.Paths) {
	for _, path := range maputil.SortedKeys(paths) {
		item := paths[path]
		if item == nil {
			continue
		}
		ops := parser.GetOperations(item)
		for _, method := range httputil.Methods {
			op := ops[method]
			if op == nil || op.OperationID == "" {
				continue
			}
			if deps := op.DependencyOperationIDs(); len(deps) > 0 {
				table.Set(op.OperationID, deps)
			}
		}
	}
}

// ensureDocumentMaps initializes the merged document's top-level maps so
// service content can be inserted without nil checks at every site.
func ensureDocumentMaps(doc *parser.Document) {
	if doc.Paths == nil {
		doc.Paths = make(parser.Paths)
	}
	if doc.Definitions == nil {
		doc.Definitions = make(map[string]*parser.Schema)
	}
	if doc.Parameters == nil {
		doc.Parameters = make(map[string]*parser.Parameter)
	}
	if doc.Responses == nil {
		doc.Responses = make(map[string]*parser.Response)
	}
	if doc.SecurityDefinitions == nil {
		doc.SecurityDefinitions = make(map[string]*parser.SecurityScheme)
	}
}

// documentVersion extracts the declared info.version, or "" when absent.
func documentVersion(doc *parser.Document) string {
	if doc == nil || doc.Info == nil {
		return ""
	}
	return doc.Info.Version
}

// joinPath prefixes a path template with a service basePath, normalizing
// slashes so exactly one separates the two parts. An empty or "/" basePath
// leaves the template unchanged apart from guaranteeing a leading slash.
func joinPath(basePath, path string) string {
	base := strings.TrimSuffix(basePath, "/")
	p := "/" + strings.TrimPrefix(path, "/")
	if base == "" {
		return p
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base + p
}

// equalStrings reports whether two string slices have identical contents.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
