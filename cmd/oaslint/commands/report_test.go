package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oaslint/validator"
)

func TestReporter_Report(t *testing.T) {
	result := &validator.ValidationResult{
		Errors: []validator.ValidationError{
			{Rule: "TypeMismatch", Pointer: "#/default", Message: "value does not match the schema type"},
		},
		Warnings: []validator.ValidationError{
			{Rule: "ValidateAnyOfDiscriminator", Pointer: "#/anyOf", Message: "missing", Severity: validator.SeverityWarning},
		},
		ErrorCount:   1,
		WarningCount: 1,
	}

	var buf bytes.Buffer
	NewReporter(&buf, true).Report(result)
	assert.Equal(t, "Errors (1):\n"+
		"  • #/default: value does not match the schema type [TypeMismatch]\n"+
		"\n"+
		"Warnings (1):\n"+
		"  • #/anyOf: missing [ValidateAnyOfDiscriminator]\n"+
		"\n", buf.String())
}

func TestReporter_Summary(t *testing.T) {
	tests := []struct {
		name   string
		result *validator.ValidationResult
		want   string
	}{
		{
			name:   "passed",
			result: &validator.ValidationResult{Valid: true},
			want:   "✓ Validation passed\n",
		},
		{
			name:   "passed with warnings",
			result: &validator.ValidationResult{Valid: true, WarningCount: 2},
			want:   "✓ Validation passed with 2 warning(s)\n",
		},
		{
			name:   "failed",
			result: &validator.ValidationResult{ErrorCount: 3, WarningCount: 1},
			want:   "✗ Validation failed: 3 error(s), 1 warning(s)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, true).Summary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, true).Report(nil)
	assert.Empty(t, buf.String())
}
