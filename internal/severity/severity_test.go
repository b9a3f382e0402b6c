package severity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"error level", SeverityError, "error"},
		{"warning level", SeverityWarning, "warning"},
		{"info level", SeverityInfo, "info"},
		{"critical level", SeverityCritical, "critical"},
		{"negative value", Severity(-1), "unknown"},
		{"out of range value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

// Warning labels end up in CLI output and structured logs, so every defined
// level must render as a single lowercase word.
func TestSeverityStringConsistency(t *testing.T) {
	for _, sev := range []Severity{SeverityError, SeverityWarning, SeverityInfo, SeverityCritical} {
		str := sev.String()
		assert.NotEmpty(t, str, "Severity(%d) should have a label", sev)
		assert.Equal(t, strings.ToLower(str), str, "label should be lowercase: %q", str)
		assert.NotContains(t, str, " ", "label should be a single word: %q", str)
	}
}
