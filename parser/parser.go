package parser

//go:generate go run ../internal/codegen/deepcopy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scopetools/internal/httputil"
	"github.com/erraggy/scopetools/oaserrors"
)

// Parser handles Swagger 2.0 document parsing
type Parser struct {
	// ValidateStructure determines whether to perform basic structure validation
	ValidateStructure bool
	// PreserveOrder retains the source key ordering so the document can be
	// re-serialized with MarshalOrderedJSON / MarshalOrderedYAML
	PreserveOrder bool
	// BuildSourceMap records source line/column positions for each element,
	// available via ParseResult.SourceMap
	BuildSourceMap bool
	// HTTPClient is an optional custom HTTP client for fetching URL sources.
	// When nil, a default client with a 30 second timeout is used.
	HTTPClient *http.Client
	// UserAgent overrides the User-Agent header sent when fetching URL sources
	UserAgent string
	// InsecureSkipVerify disables TLS certificate verification when fetching
	// URL sources. Ignored when HTTPClient is provided.
	InsecureSkipVerify bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source document file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed Swagger document and metadata.
//
// # Immutability
//
// While Go does not enforce immutability, callers should treat ParseResult as
// read-only after parsing. Modifying the returned document may lead to unexpected
// behavior if the document is cached or shared across multiple operations.
//
// For document modification use cases:
//   - Document merging: Use the merger package
//   - Role scoping: Use the scoper package
//   - Manual modification: Create a deep copy first using Copy() method
//
// Example of safe modification:
//
//	original, _ := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	modified := original.Copy()  // Deep copy
//	// Now safe to modify 'modified' without affecting 'original'
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Document contains the parsed Swagger 2.0 document
	Document *Document
	// Errors contains any parsing or validation errors encountered
	Errors []error
	// Warnings contains non-fatal issues such as non-standard status codes
	Warnings []string
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
	// SourceMap maps JSON paths to source locations.
	// Only populated when the parser's BuildSourceMap option is enabled.
	SourceMap *SourceMap
	// Data is the raw parsed document as a generic map.
	// Only populated when the parser's PreserveOrder option is enabled.
	Data map[string]any

	// sourceNode is the parsed YAML node tree, retained when PreserveOrder
	// is enabled so ordered marshaling can replay the source key order
	sourceNode *yaml.Node
}

// Copy creates a deep copy of the ParseResult, including the parsed document.
// This is useful when you need to modify a parsed document without affecting the original.
//
// Example:
//
//	original, _ := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	modified := original.Copy()
//	modified.Document.Info.Title = "Modified API"
func (pr *ParseResult) Copy() *ParseResult {
	if pr == nil {
		return nil
	}

	// Create a shallow copy of the result
	result := &ParseResult{
		SourcePath:   pr.SourcePath,
		SourceFormat: pr.SourceFormat,
		LoadTime:     pr.LoadTime,
		SourceSize:   pr.SourceSize,
		Stats:        pr.Stats, // DocumentStats is a value type, copied by value
	}

	// Deep copy the Document using generated DeepCopy methods
	if pr.Document != nil {
		result.Document = pr.Document.DeepCopy()
	}

	if pr.Errors != nil {
		result.Errors = make([]error, len(pr.Errors))
		copy(result.Errors, pr.Errors)
	}

	if pr.Warnings != nil {
		result.Warnings = make([]string, len(pr.Warnings))
		copy(result.Warnings, pr.Warnings)
	}

	result.SourceMap = pr.SourceMap.Copy()
	if pr.Data != nil {
		if data, ok := deepCopyJSONValue(pr.Data).(map[string]any); ok {
			result.Data = data
		}
	}
	// The node tree is never mutated after parsing, safe to share
	result.sourceNode = pr.sourceNode

	return result
}

// Parse parses a Swagger 2.0 document from a local file or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var (
		data   []byte
		err    error
		format SourceFormat
	)

	loadStart := time.Now()
	if isURL(specPath) {
		// Fetch content from the URL; services commonly serve their Swagger
		// document from an HTTP endpoint such as /swagger.json
		var contentType string
		data, contentType, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		// Detect format from file extension
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}

	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	res.SourceMap.SetFile(specPath)

	// If format was detected from path, use it; otherwise use content-based detection
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	} else {
		res.SourceFormat = detectFormatFromContent(data)
	}

	return res, nil
}

// ParseReader parses a Swagger 2.0 document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	// Update timing and size info
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	// Update SourcePath to match detected format
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	res.SourceMap.SetFile(res.SourcePath)
	return res, nil
}

// ParseBytes parses a Swagger 2.0 document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	// Detect format from content
	res.SourceFormat = detectFormatFromContent(data)
	// Set size (no load time since data is already in memory)
	res.SourceSize = int64(len(data))
	// Update SourcePath to match detected format
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	res.SourceMap.SetFile(res.SourcePath)
	return res, nil
}

// parseBytes parses raw YAML or JSON bytes into a ParseResult. JSON input is
// handled by the YAML parser since JSON is a subset of YAML, unless the JSON
// fast-path applies.
func (p *Parser) parseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	// JSON fast-path: skip YAML AST overhead when:
	// - Input is detected as JSON
	// - BuildSourceMap is disabled (source maps require YAML node tracking)
	// - PreserveOrder is disabled (order preservation requires YAML node tracking)
	if detectFormatFromContent(data) == SourceFormatJSON && !p.BuildSourceMap && !p.PreserveOrder {
		return p.parseJSONFastPath(data, result)
	}

	// First pass: parse to generic map to detect the document version
	var rawData map[string]any
	if err := yaml.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("parser: failed to parse YAML/JSON: %w", err)
	}

	version, err := p.detectVersion(rawData)
	if err != nil {
		return nil, err
	}
	if version != SwaggerVersion {
		return nil, fmt.Errorf("parser: %w: %s (only 2.0 is supported)", oaserrors.ErrUnsupportedVersion, version)
	}

	// Second pass: parse into the typed document structure
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parser: failed to parse Swagger 2.0 document structure: %w", err)
	}
	result.Document = &doc

	if p.PreserveOrder || p.BuildSourceMap {
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err == nil {
			if p.PreserveOrder {
				result.sourceNode = &root
				result.Data = rawData
			}
			if p.BuildSourceMap {
				result.SourceMap = buildSourceMap(&root, "")
			}
		}
	}

	// Validate structure if enabled
	if p.ValidateStructure {
		result.Errors = append(result.Errors, p.validateDocument(&doc)...)
		result.Warnings = append(result.Warnings, p.structuralWarnings(&doc)...)
	}

	// Calculate document statistics
	result.Stats = GetDocumentStats(result.Document)

	p.log().Debug("parsed document",
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"definitions", result.Stats.DefinitionCount,
		"errors", len(result.Errors))

	return result, nil
}

// parseJSONFastPath parses JSON input directly using encoding/json, bypassing
// YAML AST overhead. The yaml library builds a complete AST with token
// tracking, which is necessary for YAML features (anchors, aliases, multiline
// strings) but wasteful for JSON input where encoding/json is more efficient.
func (p *Parser) parseJSONFastPath(data []byte, result *ParseResult) (*ParseResult, error) {
	// First pass: parse to generic map to detect the document version
	var rawData map[string]any
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("parser: failed to parse JSON: %w", err)
	}
	result.SourceFormat = SourceFormatJSON

	version, err := p.detectVersion(rawData)
	if err != nil {
		return nil, err
	}
	if version != SwaggerVersion {
		return nil, fmt.Errorf("parser: %w: %s (only 2.0 is supported)", oaserrors.ErrUnsupportedVersion, version)
	}

	// Second pass: parse into the typed document structure
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parser: failed to parse Swagger 2.0 document structure: %w", err)
	}
	result.Document = &doc

	// Validate structure if enabled
	if p.ValidateStructure {
		result.Errors = append(result.Errors, p.validateDocument(&doc)...)
		result.Warnings = append(result.Warnings, p.structuralWarnings(&doc)...)
	}

	// Calculate document statistics
	result.Stats = GetDocumentStats(result.Document)

	p.log().Debug("parsed document",
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"definitions", result.Stats.DefinitionCount,
		"errors", len(result.Errors))

	return result, nil
}

// detectVersion determines the document version from the raw data.
// An 'openapi' key is reported as its version string so the caller can
// produce a clear unsupported-version error rather than a detection failure.
func (p *Parser) detectVersion(data map[string]any) (string, error) {
	if swagger, ok := data["swagger"].(string); ok {
		return swagger, nil
	}
	if openapi, ok := data["openapi"].(string); ok {
		return openapi, nil
	}
	return "", fmt.Errorf("parser: %w: document must contain 'swagger: \"2.0\"' at the root level", oaserrors.ErrVersionNotDetected)
}

// validateDocument performs basic structure validation on a Swagger 2.0 document
func (p *Parser) validateDocument(doc *Document) []error {
	errors := make([]error, 0)

	// Validate swagger version field
	if doc.Swagger == "" {
		errors = append(errors, fmt.Errorf("oas 2.0: missing required root field 'swagger': must be set to \"2.0\""))
	} else if doc.Swagger != SwaggerVersion {
		errors = append(errors, fmt.Errorf("oas 2.0: invalid 'swagger' field value: expected \"2.0\", got \"%s\"", doc.Swagger))
	}

	// Validate info object
	errors = append(errors, p.validateInfo(doc.Info)...)

	// Validate paths object
	if doc.Paths == nil {
		errors = append(errors, fmt.Errorf("oas 2.0: missing required root field 'paths': Paths object is required per spec (https://spec.openapis.org/oas/v2.0.html#pathsObject)"))
	} else {
		errors = append(errors, p.validatePaths(doc.Paths)...)
	}

	return errors
}

func (p *Parser) validateInfo(info *Info) []error {
	errors := make([]error, 0)
	if info == nil {
		errors = append(errors, fmt.Errorf("oas 2.0: missing required root field 'info': Info object is required per spec (https://spec.openapis.org/oas/v2.0.html#infoObject)"))
	} else {
		if info.Title == "" {
			errors = append(errors, fmt.Errorf("oas 2.0: missing required field 'info.title': Info object must have a title per spec"))
		}
		if info.Version == "" {
			errors = append(errors, fmt.Errorf("oas 2.0: missing required field 'info.version': Info object must have a version string per spec"))
		}
	}
	return errors
}

func (p *Parser) validatePaths(paths map[string]*PathItem) []error {
	errors := make([]error, 0)
	operationIDs := make(map[string]string)

	for pathPattern, pathItem := range paths {
		if pathItem == nil {
			continue
		}

		// Validate path pattern
		if pathPattern != "" && pathPattern[0] != '/' {
			errors = append(errors, fmt.Errorf("oas 2.0: invalid path pattern 'paths.%s': path must begin with '/'", pathPattern))
		}

		// Check all operations in this path
		errors = append(errors, p.validatePathItem(pathItem, pathPattern, operationIDs)...)
	}

	return errors
}

func (p *Parser) validatePathItem(pathItem *PathItem, pathPattern string, operationIDs map[string]string) []error {
	errors := make([]error, 0)
	operations := GetOperations(pathItem)

	for method, op := range operations {
		if op == nil {
			continue
		}

		opPath := fmt.Sprintf("paths.%s.%s", pathPattern, method)
		errors = append(errors, p.validateOperation(op, opPath, operationIDs)...)
	}

	return errors
}

func (p *Parser) validateOperation(op *Operation, opPath string, operationIDs map[string]string) []error {
	errors := make([]error, 0)

	// Validate operationId uniqueness
	if op.OperationID != "" {
		if existingPath, exists := operationIDs[op.OperationID]; exists {
			errors = append(errors, fmt.Errorf("oas 2.0: duplicate operationId '%s' at '%s': previously defined at '%s'",
				op.OperationID, opPath, existingPath))
		} else {
			operationIDs[op.OperationID] = opPath
		}
	}

	// Validate responses object exists
	if op.Responses == nil {
		errors = append(errors, fmt.Errorf("oas 2.0: missing required field '%s.responses': Operation must have a responses object", opPath))
	} else {
		// Validate status codes in responses
		for code := range op.Responses.Codes {
			if !httputil.ValidateStatusCode(code) {
				errors = append(errors, fmt.Errorf("oas 2.0: invalid status code '%s' in '%s.responses': must be a valid HTTP status code (e.g., \"200\", \"404\") or wildcard pattern (e.g., \"2XX\")", code, opPath))
			}
		}
	}

	// Validate parameters
	for i, param := range op.Parameters {
		if param == nil {
			continue
		}
		errors = append(errors, p.validateParameter(param, opPath, i)...)
	}

	return errors
}

func (p *Parser) validateParameter(param *Parameter, opPath string, index int) []error {
	errors := make([]error, 0)
	paramPath := fmt.Sprintf("%s.parameters[%d]", opPath, index)

	// Skip validation for $ref parameters - they reference definitions elsewhere
	if param.Ref != "" {
		return errors
	}

	if param.Name == "" {
		errors = append(errors, fmt.Errorf("oas 2.0: missing required field '%s.name': Parameter must have a name", paramPath))
	}
	if param.In == "" {
		errors = append(errors, fmt.Errorf("oas 2.0: missing required field '%s.in': Parameter must specify location (query, header, path, formData, body)", paramPath))
	} else {
		validLocations := map[string]bool{
			ParamInQuery:    true,
			ParamInHeader:   true,
			ParamInPath:     true,
			ParamInFormData: true,
			ParamInBody:     true,
		}
		if !validLocations[param.In] {
			errors = append(errors, fmt.Errorf("oas 2.0: invalid value for '%s.in': \"%s\" is not a valid parameter location (must be query, header, path, formData, or body)", paramPath, param.In))
		}
	}

	return errors
}

// structuralWarnings reports advisory issues that do not make a document
// invalid: non-standard (but syntactically acceptable) status codes and
// malformed media types in consumes/produces lists.
func (p *Parser) structuralWarnings(doc *Document) []string {
	warnings := make([]string, 0)

	for _, mediaType := range doc.Consumes {
		if !httputil.IsValidMediaType(mediaType) {
			warnings = append(warnings, fmt.Sprintf("invalid media type '%s' in root 'consumes'", mediaType))
		}
	}
	for _, mediaType := range doc.Produces {
		if !httputil.IsValidMediaType(mediaType) {
			warnings = append(warnings, fmt.Sprintf("invalid media type '%s' in root 'produces'", mediaType))
		}
	}

	for pathPattern, pathItem := range doc.Paths {
		for method, op := range GetOperations(pathItem) {
			if op == nil {
				continue
			}
			opPath := fmt.Sprintf("paths.%s.%s", pathPattern, method)
			for _, mediaType := range op.Consumes {
				if !httputil.IsValidMediaType(mediaType) {
					warnings = append(warnings, fmt.Sprintf("invalid media type '%s' in '%s.consumes'", mediaType, opPath))
				}
			}
			for _, mediaType := range op.Produces {
				if !httputil.IsValidMediaType(mediaType) {
					warnings = append(warnings, fmt.Sprintf("invalid media type '%s' in '%s.produces'", mediaType, opPath))
				}
			}
			if op.Responses == nil {
				continue
			}
			for code := range op.Responses.Codes {
				if httputil.ValidateStatusCode(code) && !httputil.IsStandardStatusCode(code) {
					warnings = append(warnings, fmt.Sprintf("non-standard status code '%s' in '%s.responses'", code, opPath))
				}
			}
		}
	}

	return warnings
}
