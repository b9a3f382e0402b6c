package parser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/scopetools/internal/options"
)

// Option configures a single parse operation.
type Option func(*parseConfig) error

// parseConfig is the accumulated state of the functional options.
type parseConfig struct {
	// Input source; exactly one of these is set by the With* source options.
	filePath *string
	reader   io.Reader
	bytes    []byte

	validateStructure  bool
	preserveOrder      bool
	buildSourceMap     bool
	httpClient         *http.Client
	userAgent          string
	insecureSkipVerify bool
	logger             Logger

	// Overrides SourcePath in the result when set.
	sourceName *string
}

// ParseWithOptions parses a Swagger 2.0 document, selecting the input source
// and parser behavior from functional options:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("users-service.yaml"),
//	    parser.WithValidateStructure(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		ValidateStructure:  cfg.validateStructure,
		PreserveOrder:      cfg.preserveOrder,
		BuildSourceMap:     cfg.buildSourceMap,
		HTTPClient:         cfg.httpClient,
		UserAgent:          cfg.userAgent,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		Logger:             cfg.logger,
	}

	result, err := cfg.parse(p)
	if err != nil {
		return result, err
	}

	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
		result.SourceMap.SetFile(*cfg.sourceName)
	}
	return result, nil
}

// parse dispatches to the Parser entry point matching the configured source.
func (cfg *parseConfig) parse(p *Parser) (*ParseResult, error) {
	switch {
	case cfg.filePath != nil:
		return p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		return p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		return p.ParseBytes(cfg.bytes)
	default:
		// applyOptions already rejected source-less configs.
		return nil, fmt.Errorf("parser: no input source specified")
	}
}

// applyOptions runs the option functions over the defaults and validates the
// resulting configuration.
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		validateStructure: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath reads the document from a file path or an http(s) URL.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads the document from r.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes reads the document from an in-memory byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithValidateStructure toggles basic structural validation of the parsed
// document. Enabled by default.
func WithValidateStructure(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.validateStructure = enabled
		return nil
	}
}

// WithPreserveOrder retains the source document's key ordering so the result
// can be re-serialized with ParseResult.MarshalOrderedJSON or
// ParseResult.MarshalOrderedYAML. Adds memory overhead proportional to the
// document size. Disabled by default.
func WithPreserveOrder(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.preserveOrder = enabled
		return nil
	}
}

// WithSourceMap records source line/column positions for every element of the
// document, available via ParseResult.SourceMap. Useful for diagnostics that
// should point at the original YAML/JSON source. Disabled by default.
func WithSourceMap(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.buildSourceMap = enabled
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent when fetching URL
// sources. Defaults to "scopetools/vX.Y.Z".
func WithUserAgent(ua string) Option {
	return func(cfg *parseConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient supplies the HTTP client used for URL sources. The client
// is used as-is, so TLS settings belong on its transport; the
// InsecureSkipVerify option is ignored when a custom client is present.
// A nil client leaves the default in place.
//
//	client := &http.Client{Timeout: 60 * time.Second}
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("https://users.internal/swagger.json"),
//	    parser.WithHTTPClient(client),
//	)
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification for URL
// sources. Only intended for internal servers with self-signed certs.
func WithInsecureSkipVerify(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.insecureSkipVerify = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing. No
// logging happens by default. Use NewSlogAdapter to wrap a *slog.Logger;
// the [Logger] interface also adapts cleanly to zap and zerolog.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName names the source document for diagnostics. Without it,
// reader and byte inputs fall back to "ParseReader.yaml" and
// "ParseBytes.yaml", which makes merge collision reports unreadable when
// several in-memory services collide:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithBytes(data),
//	    parser.WithSourceName("users-service"),
//	)
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return fmt.Errorf("parser: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
