// Package issues provides the finding record produced by validation rules
// and the append-only collector that accumulates findings during a walk.
package issues

import (
	"fmt"

	"github.com/erraggy/oaslint/internal/severity"
)

// Issue codes narrow a rule's findings into the error taxonomy.
const (
	CodeTypeMismatch                 = "TypeMismatch"
	CodeDiscriminatorPropertyMissing = "DiscriminatorPropertyMissing"
	CodeDiscriminatorNotRequired     = "DiscriminatorNotRequired"
)

// Issue represents a single finding produced by a rule during a walk.
// Issues are values; once added to a Collector they are never modified.
type Issue struct {
	// Rule is the registered name of the rule that produced the issue
	Rule string `json:"rule" yaml:"rule"`
	// Code classifies the finding (e.g. "DiscriminatorNotRequired")
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
	// Pointer is the '#'-rooted location of the offending node or value
	Pointer string `json:"pointer" yaml:"pointer"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s %s: %s [%s]", symbol, i.Pointer, i.Message, i.Rule)
}

// IsError reports whether the issue fails validation.
func (i Issue) IsError() bool {
	return i.Severity == severity.SeverityError
}
