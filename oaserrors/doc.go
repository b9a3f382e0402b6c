// Package oaserrors provides structured error types for the scopetools library.
//
// Import path: github.com/erraggy/scopetools/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [VersionError]: version strings that break component-wise version arithmetic
//   - [ResourceLimitError]: resource exhaustion (traversal depth, size limits)
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Sentinel errors support quick category checks with errors.Is():
//
//   - [ErrNoDocument]: an input carried no parsed document
//   - [ErrVersionNotDetected]: a document declares no recognizable version
//   - [ErrUnsupportedVersion]: a document declares a version outside Swagger 2.0
//   - [ErrMalformedVersion]: matches any [VersionError]
//   - [ErrResourceLimit]: matches any [ResourceLimitError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrUnsupportedVersion) {
//	    // Document is not Swagger 2.0
//	}
//
// Extract error details with errors.As():
//
//	var verErr *oaserrors.VersionError
//	if errors.As(err, &verErr) {
//	    fmt.Printf("bad version %q from %s\n", verErr.Value, verErr.Source)
//	}
//
// # Error Chaining
//
// Error types with a Cause field support error chaining via Unwrap(),
// so root causes remain reachable through the standard error chain:
//
//	var cfgErr *oaserrors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    if errors.Is(cfgErr.Cause, os.ErrNotExist) {
//	        // The configured input file doesn't exist
//	    }
//	}
package oaserrors
