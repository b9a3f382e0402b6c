package walker

import (
	"fmt"

	"github.com/erraggy/scopetools/parser"
)

// Action is a handler's verdict on how the walk should proceed.
type Action int

const (
	// Continue visits the node's children and siblings normally.
	Continue Action = iota

	// SkipChildren moves on to siblings without descending.
	SkipChildren

	// Stop abandons the walk; no further nodes are visited.
	Stop
)

// IsValid reports whether the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// One handler type per document node kind. Each receives the node and its
// JSON path and returns an Action.

// DocumentHandler is called once for the root document.
type DocumentHandler func(doc *parser.Document, path string) Action

// InfoHandler is called for the Info object.
type InfoHandler func(info *parser.Info, path string) Action

// TagHandler is called for each Tag.
type TagHandler func(tag *parser.Tag, path string) Action

// PathHandler is called for each path entry with its path template.
type PathHandler func(pathTemplate string, pathItem *parser.PathItem, path string) Action

// PathItemHandler is called for each PathItem.
type PathItemHandler func(pathItem *parser.PathItem, path string) Action

// OperationHandler is called for each Operation with its HTTP method.
type OperationHandler func(method string, op *parser.Operation, path string) Action

// ParameterHandler is called for each Parameter: operation-level,
// path-level, and the reusable ones under $.parameters.
type ParameterHandler func(param *parser.Parameter, path string) Action

// ResponseHandler is called for each Response. statusCode is the status code
// key or "default" for operation responses, and the response name for
// reusable responses under $.responses.
type ResponseHandler func(statusCode string, resp *parser.Response, path string) Action

// SchemaHandler is called for each Schema, nested ones included.
type SchemaHandler func(schema *parser.Schema, path string) Action

// SecuritySchemeHandler is called for each SecurityScheme.
type SecuritySchemeHandler func(name string, scheme *parser.SecurityScheme, path string) Action

// HeaderHandler is called for each response Header.
type HeaderHandler func(name string, header *parser.Header, path string) Action

// ExternalDocsHandler is called for each ExternalDocs.
type ExternalDocsHandler func(extDocs *parser.ExternalDocs, path string) Action

// SchemaSkippedHandler is called when schema traversal bails out: reason is
// "depth" when the schema sits past the maximum depth, or "cycle" when the
// schema is already on the recursion stack.
type SchemaSkippedHandler func(reason string, schema *parser.Schema, path string)

// Walker traverses a Swagger 2.0 document, invoking whichever handlers were
// registered for the node kinds it passes.
type Walker struct {
	onDocument       DocumentHandler
	onInfo           InfoHandler
	onTag            TagHandler
	onPath           PathHandler
	onPathItem       PathItemHandler
	onOperation      OperationHandler
	onParameter      ParameterHandler
	onResponse       ResponseHandler
	onSchema         SchemaHandler
	onSecurityScheme SecuritySchemeHandler
	onHeader         HeaderHandler
	onExternalDocs   ExternalDocsHandler
	onSchemaSkipped  SchemaSkippedHandler

	maxDepth int

	// Input sources for WalkWithOptions.
	filePath *string
	parsed   *parser.ParseResult

	visitedSchemas map[*parser.Schema]bool
	stopped        bool
}

// New returns a Walker with the default schema depth limit.
func New() *Walker {
	return &Walker{
		maxDepth: 100,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithDocumentHandler registers fn for the root document.
func WithDocumentHandler(fn DocumentHandler) Option {
	return func(w *Walker) { w.onDocument = fn }
}

// WithInfoHandler registers fn for Info objects.
func WithInfoHandler(fn InfoHandler) Option {
	return func(w *Walker) { w.onInfo = fn }
}

// WithTagHandler registers fn for Tag objects.
func WithTagHandler(fn TagHandler) Option {
	return func(w *Walker) { w.onTag = fn }
}

// WithPathHandler registers fn for path entries.
func WithPathHandler(fn PathHandler) Option {
	return func(w *Walker) { w.onPath = fn }
}

// WithPathItemHandler registers fn for PathItem objects.
func WithPathItemHandler(fn PathItemHandler) Option {
	return func(w *Walker) { w.onPathItem = fn }
}

// WithOperationHandler registers fn for Operation objects.
func WithOperationHandler(fn OperationHandler) Option {
	return func(w *Walker) { w.onOperation = fn }
}

// WithParameterHandler registers fn for Parameter objects.
func WithParameterHandler(fn ParameterHandler) Option {
	return func(w *Walker) { w.onParameter = fn }
}

// WithResponseHandler registers fn for Response objects.
func WithResponseHandler(fn ResponseHandler) Option {
	return func(w *Walker) { w.onResponse = fn }
}

// WithSchemaHandler registers fn for Schema objects.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithSecuritySchemeHandler registers fn for SecurityScheme objects.
func WithSecuritySchemeHandler(fn SecuritySchemeHandler) Option {
	return func(w *Walker) { w.onSecurityScheme = fn }
}

// WithHeaderHandler registers fn for Header objects.
func WithHeaderHandler(fn HeaderHandler) Option {
	return func(w *Walker) { w.onHeader = fn }
}

// WithExternalDocsHandler registers fn for ExternalDocs objects.
func WithExternalDocsHandler(fn ExternalDocsHandler) Option {
	return func(w *Walker) { w.onExternalDocs = fn }
}

// WithSchemaSkippedHandler registers fn to be told about schemas the walk
// skipped for depth or cycle reasons.
func WithSchemaSkippedHandler(fn SchemaSkippedHandler) Option {
	return func(w *Walker) { w.onSchemaSkipped = fn }
}

// WithMaxSchemaDepth caps schema recursion. Non-positive depths are ignored
// and the default of 100 is kept.
func WithMaxSchemaDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// Walk traverses the parsed document, calling the registered handlers.
func Walk(result *parser.ParseResult, opts ...Option) error {
	if result == nil {
		return fmt.Errorf("walker: nil ParseResult")
	}
	if result.Document == nil {
		return fmt.Errorf("walker: nil Document in ParseResult")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(result.Document)
}

func (w *Walker) walk(doc *parser.Document) error {
	w.visitedSchemas = make(map[*parser.Schema]bool)
	w.stopped = false
	return w.walkDocument(doc)
}

// handleAction folds a handler's verdict into walker state, reporting
// whether the walk should descend into children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
