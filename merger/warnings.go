package merger

import (
	"fmt"
	"strings"

	"github.com/erraggy/scopetools/internal/severity"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnMetadataOverride indicates document-level metadata was replaced by a later service.
	WarnMetadataOverride WarningCategory = "metadata_override"
	// WarnComponentOverride indicates a named reusable component (security
	// definition, parameter, response) was replaced by a later service.
	WarnComponentOverride WarningCategory = "component_override"
	// WarnGenericSourceName indicates a document has a generic or empty source name.
	// This makes override reports less useful for identifying which document won.
	WarnGenericSourceName WarningCategory = "generic_source_name"
)

// MergeWarning represents a structured warning from the merger package.
// It provides detailed context about non-fatal issues encountered while
// building a master document.
type MergeWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Path is the JSON path to the affected element.
	Path string
	// Message is a human-readable description.
	Message string
	// SourceFile is the file that triggered the warning.
	SourceFile string
	// Line is the 1-based line number (0 if unknown).
	Line int
	// Column is the 1-based column number (0 if unknown).
	Column int
	// Severity indicates warning severity (default: SeverityWarning).
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns a formatted warning message.
// Context is folded into Message by the constructor functions, so this
// returns just the Message.
func (w *MergeWarning) String() string {
	return w.Message
}

// HasLocation returns true if source location information is available.
func (w *MergeWarning) HasLocation() bool {
	return w.Line > 0
}

// Location returns an IDE-friendly location string.
func (w *MergeWarning) Location() string {
	if w.Line == 0 {
		if w.Path != "" {
			return w.Path
		}
		return w.SourceFile
	}
	if w.SourceFile != "" {
		if w.Column > 0 {
			return fmt.Sprintf("%s:%d:%d", w.SourceFile, w.Line, w.Column)
		}
		return fmt.Sprintf("%s:%d", w.SourceFile, w.Line)
	}
	if w.Column > 0 {
		return fmt.Sprintf("%d:%d", w.Line, w.Column)
	}
	return fmt.Sprintf("%d", w.Line)
}

// NewMetadataOverrideWarning creates a warning when document-level metadata
// from an earlier document is replaced by a later service's value.
func NewMetadataOverrideWarning(field, previousValue, newValue, sourceFile string) *MergeWarning {
	return &MergeWarning{
		Category:   WarnMetadataOverride,
		Path:       field,
		Message:    fmt.Sprintf("%s '%s' replaced with '%s' from %s", field, previousValue, newValue, displayName(sourceFile)),
		SourceFile: sourceFile,
		Severity:   severity.SeverityInfo,
		Context: map[string]any{
			"field":          field,
			"previous_value": previousValue,
			"new_value":      newValue,
		},
	}
}

// NewComponentOverrideWarning creates a warning when a named reusable
// component is replaced by a later service's declaration.
func NewComponentOverrideWarning(section, name, sourceFile string, line, col int) *MergeWarning {
	return &MergeWarning{
		Category:   WarnComponentOverride,
		Path:       fmt.Sprintf("%s.%s", section, name),
		Message:    fmt.Sprintf("%s '%s' overridden by %s", section, name, displayName(sourceFile)),
		SourceFile: sourceFile,
		Line:       line,
		Column:     col,
		Severity:   severity.SeverityWarning,
		Context: map[string]any{
			"section": section,
			"name":    name,
		},
	}
}

// IsGenericSourceName returns true if the source path appears to be a generic
// parser-generated name rather than a meaningful identifier.
// Generic names include empty strings and default names like "ParseBytes.yaml".
func IsGenericSourceName(sourcePath string) bool {
	if sourcePath == "" {
		return true
	}
	genericPrefixes := []string{
		"ParseBytes.",
		"ParseReader.",
	}
	for _, prefix := range genericPrefixes {
		if strings.HasPrefix(sourcePath, prefix) {
			return true
		}
	}
	return false
}

// NewGenericSourceNameWarning creates a warning when a document has a generic source name.
// This helps users identify that override reports may be unclear and guides them to set
// meaningful source names using ParseResult.SourcePath.
func NewGenericSourceNameWarning(sourcePath string, docIndex int) *MergeWarning {
	var msg string
	if sourcePath == "" {
		msg = fmt.Sprintf("document %d has empty source name - override reports will be unclear. "+
			"Set ParseResult.SourcePath to a meaningful identifier before merging", docIndex)
	} else {
		msg = fmt.Sprintf("document %d has generic source name '%s' - override reports may be unclear. "+
			"Set ParseResult.SourcePath to a meaningful identifier (e.g., service name) before merging", docIndex, sourcePath)
	}
	return &MergeWarning{
		Category:   WarnGenericSourceName,
		Message:    msg,
		SourceFile: sourcePath,
		Severity:   severity.SeverityInfo,
		Context: map[string]any{
			"doc_index":   docIndex,
			"source_path": sourcePath,
		},
	}
}

// MergeWarnings is a collection of MergeWarning.
type MergeWarnings []*MergeWarning

// Strings returns warning messages for backward compatibility.
func (ws MergeWarnings) Strings() []string {
	result := make([]string, len(ws))
	for i, w := range ws {
		if w == nil {
			continue
		}
		result[i] = w.String()
	}
	return result
}

// ByCategory filters warnings by category.
func (ws MergeWarnings) ByCategory(cat WarningCategory) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}

// BySeverity filters warnings by severity.
func (ws MergeWarnings) BySeverity(sev severity.Severity) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Severity == sev {
			result = append(result, w)
		}
	}
	return result
}

// Summary returns a formatted summary of warnings.
func (ws MergeWarnings) Summary() string {
	if len(ws) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d warning(s):\n", len(ws)))
	for _, w := range ws {
		sb.WriteString("  - ")
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
