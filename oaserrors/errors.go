package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNoDocument indicates a parse result or option carried no document.
	ErrNoDocument = errors.New("no document")

	// ErrVersionNotDetected indicates a document declares no recognizable version.
	ErrVersionNotDetected = errors.New("unable to detect document version")

	// ErrUnsupportedVersion indicates a document declares a version this library
	// does not process.
	ErrUnsupportedVersion = errors.New("unsupported document version")

	// ErrMalformedVersion indicates a version string contains a non-numeric
	// component and cannot participate in version arithmetic.
	ErrMalformedVersion = errors.New("malformed version")

	// ErrResourceLimit indicates a traversal or recursion limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// VersionError reports a version string that cannot be parsed for
// component-wise arithmetic. Master document versions are the sum of the
// merged service versions, so a single malformed component is fatal to
// the whole build.
type VersionError struct {
	// Source identifies the document that declared the version (file path
	// or source name; may be empty for programmatically built documents).
	Source string
	// Value is the full version string that failed to parse.
	Value string
	// Component is the offending dot-separated component.
	Component string
}

// NewVersionError constructs a VersionError for a non-numeric component.
func NewVersionError(source, value, component string) *VersionError {
	return &VersionError{Source: source, Value: value, Component: component}
}

// Error returns a human-readable error message.
func (e *VersionError) Error() string {
	msg := "malformed version"
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Component != "" {
		msg += fmt.Sprintf(": non-numeric component %q", e.Component)
	}
	return msg
}

// Unwrap returns nil as VersionError has no underlying cause.
func (e *VersionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *VersionError) Is(target error) bool {
	return target == ErrMalformedVersion
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when document traversal exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "schema_depth", "walk_depth", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
