package issues

import (
	"testing"

	"github.com/erraggy/oaslint/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name: "error",
			issue: Issue{
				Rule:     "TypeMismatch",
				Pointer:  "#/default",
				Message:  "value does not match the schema type",
				Severity: severity.SeverityError,
			},
			expected: "✗ #/default: value does not match the schema type [TypeMismatch]",
		},
		{
			name: "warning",
			issue: Issue{
				Rule:     "ValidateAnyOfDiscriminator",
				Pointer:  "#/anyOf",
				Message:  "m",
				Severity: severity.SeverityWarning,
			},
			expected: "⚠ #/anyOf: m [ValidateAnyOfDiscriminator]",
		},
		{
			name:     "info",
			issue:    Issue{Rule: "R", Pointer: "#", Message: "m", Severity: severity.SeverityInfo},
			expected: "ℹ #: m [R]",
		},
		{
			name:     "unknown severity",
			issue:    Issue{Rule: "R", Pointer: "#", Message: "m", Severity: severity.Severity(42)},
			expected: "? #: m [R]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestCollectorPreservesOrder(t *testing.T) {
	c := NewCollector()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.HasErrors())

	c.Add(Issue{Rule: "A", Pointer: "#/default"})
	c.Add(
		Issue{Rule: "B", Pointer: "#/oneOf", Severity: severity.SeverityWarning},
		Issue{Rule: "A", Pointer: "#/example"},
	)

	all := c.Issues()
	assert.Len(t, all, 3)
	assert.Equal(t, []string{"#/default", "#/oneOf", "#/example"},
		[]string{all[0].Pointer, all[1].Pointer, all[2].Pointer})

	assert.Len(t, c.Errors(), 2)
	assert.Len(t, c.Warnings(), 1)
	assert.Len(t, c.ByRule("A"), 2)
	assert.Empty(t, c.ByRule("missing"))
	assert.True(t, c.HasErrors())
}

func TestCollectorIssuesReturnsCopy(t *testing.T) {
	c := NewCollector()
	c.Add(Issue{Rule: "A", Pointer: "#"})

	got := c.Issues()
	got[0].Pointer = "mutated"
	assert.Equal(t, "#", c.Issues()[0].Pointer)
}
