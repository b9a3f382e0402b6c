package scoper

import (
	"fmt"

	"github.com/erraggy/scopetools/parser"
)

// DocumentLoader loads a parsed document by identifier. The scoper uses it
// for every file-based input (skeleton, services, master override), so a
// custom implementation can back documents with any storage.
//
// Load must be idempotent for the duration of one build: the same
// identifier always yields structurally equal content.
type DocumentLoader interface {
	Load(path string) (*parser.Document, error)
}

// fileLoader is the default DocumentLoader, reading documents from the
// filesystem through the parser with structure validation enabled.
type fileLoader struct {
	logger parser.Logger
}

// Load implements DocumentLoader.
func (l fileLoader) Load(path string) (*parser.Document, error) {
	result, err := parser.ParseWithOptions(
		parser.WithFilePath(path),
		parser.WithValidateStructure(true),
		parser.WithLogger(l.logger),
	)
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		errMsg := fmt.Sprintf("validation errors (%d error(s)) in %s:", len(result.Errors), path)
		for idx, e := range result.Errors {
			errMsg += fmt.Sprintf("\n  %d. %v", idx+1, e)
		}
		return nil, fmt.Errorf("%s", errMsg)
	}
	return result.Document, nil
}
