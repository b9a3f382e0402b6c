// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes scopetools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/scopetools"
)

const serverInstructions = `scopetools MCP server — merges per-service Swagger 2.0 documents into a master document and derives role-scoped documents from it.

Configuration: All defaults are configurable via SCOPETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SCOPETOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- SCOPETOOLS_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched documents
- SCOPETOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- SCOPETOOLS_MAX_SERVICE_SPECS (default: 20) — maximum services per merge/scope call
- SCOPETOOLS_MAX_INLINE_SIZE (default: 4194304) — maximum bytes for inline content
- SCOPETOOLS_LIST_LIMIT (default: 100) — default result limit for operations listing
- SCOPETOOLS_ALLOW_PRIVATE_IPS (default: false) — allow URL inputs resolving to private IPs

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "scopetools", Version: scopetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge per-service Swagger 2.0 documents into a single master document. The skeleton provides identity and top-level metadata; each service's paths are prefixed with its basePath, definitions are deep-merged, x-depends-on declarations are collected into a dependency table, and the master version is the component-wise sum of the service versions. Use output to write to a file instead of returning inline.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scope",
		Description: "Derive role-scoped documents from merged service documents. Provide skeleton+services (or a pre-merged master), a feature table mapping feature ids to operation ids, and a role table mapping role ids to granted features. Each role's document keeps only granted operations, paths that still have operations, definitions reachable from surviving operations, and rebuilt tags. Use role to return one role's full document; otherwise all roles are summarized.",
	}, handleScope)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "operations",
		Description: "List operations in a Swagger 2.0 document. Filter by tag, method, or path pattern (supports * for one segment). Returns summaries (method, path, operationId, tags, x-depends-on). Use group_by (tag or method) to get distribution counts instead of individual items. Default limit is configurable via SCOPETOOLS_LIST_LIMIT (default 100).",
	}, handleOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dependencies",
		Description: "Resolve transitive dependency chains from x-depends-on declarations. Provide skeleton+services to build the dependency table by merging, or a table directly. Returns dotted chains (e.g. payInvoice.getAccount.listAccounts) rooted at the requested operation, or at every declaring operation when none is given.",
	}, handleDependencies)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	limit = min(limit, cfg.MaxLimit)
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// formatCount formats a count with its singular or plural noun.
func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	slices.SortFunc(groups, func(a, b groupCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Key, b.Key)
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" || slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(groupBy, a) }) {
		return nil
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}
