package rules

import (
	"fmt"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/severity"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/value"
)

// Issue is a single finding produced by a rule.
type Issue = issues.Issue

// Collector accumulates the findings of one walk in order.
type Collector = issues.Collector

// Severity classifies how serious a finding is.
type Severity = severity.Severity

const (
	// SeverityError fails validation
	SeverityError = severity.SeverityError
	// SeverityWarning is reported without failing validation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo is informational
	SeverityInfo = severity.SeverityInfo
)

// Kind is the node visit a rule is bound to.
type Kind int

const (
	// KindSchema rules run once per visited schema node.
	KindSchema Kind = iota
	// KindValue rules run for each default, example and enum member.
	KindValue
)

// String returns "schema" or "value".
func (k Kind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindValue:
		return "value"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SchemaCheck inspects a schema node located at pointer.
type SchemaCheck func(s *parser.Schema, pointer string) []Issue

// ValueCheck inspects a literal governed by s and located at pointer.
type ValueCheck func(s *parser.Schema, v value.Value, pointer string) []Issue

// Rule is a named check run by the walker.
//
// The walker overwrites Rule and Severity on every Issue a check returns,
// so checks only need to fill in Code, Pointer and Message.
type Rule struct {
	Name        string
	Kind        Kind
	Description string
	Severity    Severity

	// Exactly one of CheckSchema or CheckValue is set, matching Kind.
	CheckSchema SchemaCheck
	CheckValue  ValueCheck
}

// Validate reports whether the rule is well formed.
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rules: rule name cannot be empty")
	}
	switch r.Kind {
	case KindSchema:
		if r.CheckSchema == nil || r.CheckValue != nil {
			return fmt.Errorf("rules: schema rule %q must set CheckSchema only", r.Name)
		}
	case KindValue:
		if r.CheckValue == nil || r.CheckSchema != nil {
			return fmt.Errorf("rules: value rule %q must set CheckValue only", r.Name)
		}
	default:
		return fmt.Errorf("rules: rule %q has unknown kind %s", r.Name, r.Kind)
	}
	return nil
}
