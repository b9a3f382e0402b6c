package walker

import (
	"fmt"

	"github.com/erraggy/scopetools/internal/options"
	"github.com/erraggy/scopetools/parser"
)

// WithFilePath specifies a file path to parse and walk.
func WithFilePath(path string) Option {
	return func(w *Walker) {
		w.filePath = &path
	}
}

// WithParsed specifies a pre-parsed result to walk.
func WithParsed(result *parser.ParseResult) Option {
	return func(w *Walker) {
		w.parsed = result
	}
}

// WalkWithOptions walks a document using functional options for input,
// handlers, and configuration. All options use the unified Option type.
//
// Example:
//
//	walker.WalkWithOptions(
//	    walker.WithFilePath("master.yaml"),
//	    walker.WithSchemaHandler(func(s *parser.Schema, path string) walker.Action {
//	        fmt.Println(path)
//	        return walker.Continue
//	    }),
//	)
func WalkWithOptions(opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}

	if err := options.ValidateSingleInputSource(
		"walker: no input source specified (use WithFilePath or WithParsed)",
		"walker: use only one of WithFilePath or WithParsed",
		w.filePath != nil, w.parsed != nil,
	); err != nil {
		return err
	}

	result := w.parsed
	if result == nil {
		parsed, err := parser.ParseWithOptions(parser.WithFilePath(*w.filePath))
		if err != nil {
			return fmt.Errorf("walker: failed to parse %s: %w", *w.filePath, err)
		}
		result = parsed
	}
	if result.Document == nil {
		return fmt.Errorf("walker: nil Document in ParseResult")
	}

	return w.walk(result.Document)
}
