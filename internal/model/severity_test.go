package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// TestSeverity_String verifies that severity values produce the expected
// canonical names used in CLI output and logging.
func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{SeverityWarning, "warning"},
		{SeverityMessage, "message"},
		{SeverityInfo, "info"},
		{SeverityDebug, "debug"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

// TestSeverity_Ordering checks the verbosity ordering that callers rely on
// when comparing severities directly.
func TestSeverity_Ordering(t *testing.T) {
	assert.Less(t, SeverityError, SeverityWarning)
	assert.Less(t, SeverityWarning, SeverityInfo)
	assert.Less(t, SeverityInfo, SeverityDebug)
	assert.Less(t, SeverityError, SeverityCritical)
	assert.Less(t, SeverityMessage, SeverityInfo)
}

// TestParseSeverity verifies the name-to-severity resolution, including
// case-insensitivity and the degrade-to-default contract for unknown input.
func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
	}{
		{"error", SeverityError},
		{"critical", SeverityCritical},
		{"warning", SeverityWarning},
		{"warn", SeverityWarning}, // shorthand
		{"message", SeverityMessage},
		{"info", SeverityInfo},
		{"debug", SeverityDebug},
		{"DEBUG", SeverityDebug},     // case insensitive
		{"Warning", SeverityWarning}, // case insensitive
		{" info ", SeverityInfo},     // surrounding whitespace
		{"bogus", DefaultSeverity},   // unknown degrades, never fails
		{"", DefaultSeverity},        // empty degrades, never fails
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSeverity(tt.input))
		})
	}
}

// TestParseSeverity_CaseAgreement is the explicit check that upper- and
// lower-case spellings of the same level resolve identically.
func TestParseSeverity_CaseAgreement(t *testing.T) {
	for _, name := range []string{"error", "critical", "warning", "message", "info", "debug"} {
		assert.Equal(t, ParseSeverity(name), ParseSeverity(strings.ToUpper(name)))
	}
}

// TestSeverity_ZapLevel verifies the mapping onto zap's level set,
// including the documented collapses (critical→error, message→info).
func TestSeverity_ZapLevel(t *testing.T) {
	tests := []struct {
		severity Severity
		expected zapcore.Level
	}{
		{SeverityError, zapcore.ErrorLevel},
		{SeverityCritical, zapcore.ErrorLevel},
		{SeverityWarning, zapcore.WarnLevel},
		{SeverityMessage, zapcore.InfoLevel},
		{SeverityInfo, zapcore.InfoLevel},
		{SeverityDebug, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.ZapLevel())
		})
	}
}
