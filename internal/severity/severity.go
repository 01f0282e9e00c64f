// Package severity provides severity level constants for issues reported by
// validation rules.
//
// SeverityError is the zero value, so a rule that does not choose a
// severity fails validation.
package severity

import "fmt"

// Severity indicates how a rule finding affects the validity of a document.
type Severity int

const (
	// SeverityError marks a finding that makes the document invalid.
	// It is the zero value so rules default to it.
	SeverityError Severity = iota

	// SeverityWarning marks a finding that should be fixed but does not fail validation.
	SeverityWarning

	// SeverityInfo marks an informational finding.
	SeverityInfo
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
	default:
		return "unknown"
	}
}

// Parse converts a severity name as written in rule configuration.
// The empty string maps to SeverityError.
func Parse(s string) (Severity, error) {
	switch s {
	case "", "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q (want error, warning, or info)", s)
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
