// Package severity provides severity level constants and utilities
// for warnings reported by the merger and scoper packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a reported issue.
type Severity int

const (
	// SeverityError indicates a condition that makes the result invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a resolved conflict or best-practice
	// violation that doesn't prevent processing but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates content that cannot be processed without
	// data loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
