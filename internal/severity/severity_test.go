package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"info level", SeverityInfo, "info"},
		{"warning level", SeverityWarning, "warning"},
		{"error level", SeverityError, "error"},

		// Edge cases: Invalid severity values
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.severity.String()
			assert.Equal(t, tt.expected, result, "Severity(%d).String() = %q, want %q", tt.severity, result, tt.expected)
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityError.AtLeast(SeverityWarning))
	assert.True(t, SeverityWarning.AtLeast(SeverityWarning))
	assert.False(t, SeverityInfo.AtLeast(SeverityWarning))
	assert.Less(t, int(SeverityInfo), int(SeverityWarning))
	assert.Less(t, int(SeverityWarning), int(SeverityError))
}
