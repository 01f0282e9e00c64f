package rules

import (
	"fmt"
	"slices"

	"github.com/erraggy/oaslint/oaserrors"
)

// RuleSet is an ordered collection of uniquely named rules.
// The zero value is an empty set ready to use.
//
// A RuleSet is not safe for concurrent modification; share a Clone with
// each goroutine that mutates it.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds a RuleSet from rules in order.
func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, r := range rules {
		if err := rs.Add(r); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// Add appends r. It fails if r is malformed or its name is taken.
func (rs *RuleSet) Add(r Rule) error {
	if err := r.Validate(); err != nil {
		return &oaserrors.ConfigError{Option: "rule", Value: r.Name, Message: "invalid rule", Cause: err}
	}
	if rs.index(r.Name) >= 0 {
		return &oaserrors.ConfigError{Option: "rule", Value: r.Name, Message: "duplicate rule name"}
	}
	rs.rules = append(rs.rules, r)
	return nil
}

// Remove deletes the named rule and reports whether it was present.
func (rs *RuleSet) Remove(name string) bool {
	i := rs.index(name)
	if i < 0 {
		return false
	}
	rs.rules = slices.Delete(rs.rules, i, i+1)
	return true
}

// Reorder sets the run order. names must list every rule exactly once.
func (rs *RuleSet) Reorder(names ...string) error {
	if len(names) != len(rs.rules) {
		return &oaserrors.ConfigError{
			Option:  "order",
			Message: fmt.Sprintf("expected %d rule names, got %d", len(rs.rules), len(names)),
		}
	}
	reordered := make([]Rule, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		i := rs.index(name)
		if i < 0 {
			return &oaserrors.ConfigError{Option: "order", Value: name, Message: "unknown rule"}
		}
		if seen[name] {
			return &oaserrors.ConfigError{Option: "order", Value: name, Message: "rule listed twice"}
		}
		seen[name] = true
		reordered = append(reordered, rs.rules[i])
	}
	rs.rules = reordered
	return nil
}

// SetSeverity changes the severity stamped on the named rule's findings.
func (rs *RuleSet) SetSeverity(name string, sev Severity) error {
	i := rs.index(name)
	if i < 0 {
		return &oaserrors.ConfigError{Option: "severity", Value: name, Message: "unknown rule"}
	}
	rs.rules[i].Severity = sev
	return nil
}

// Get returns the named rule.
func (rs *RuleSet) Get(name string) (Rule, bool) {
	i := rs.index(name)
	if i < 0 {
		return Rule{}, false
	}
	return rs.rules[i], true
}

// Names returns the rule names in run order.
func (rs *RuleSet) Names() []string {
	if rs == nil {
		return nil
	}
	names := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		names[i] = r.Name
	}
	return names
}

// Rules returns a copy of the rules in run order.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	return slices.Clone(rs.rules)
}

// ForKind returns the rules bound to k in run order.
func (rs *RuleSet) ForKind(k Kind) []Rule {
	if rs == nil {
		return nil
	}
	var out []Rule
	for _, r := range rs.rules {
		if r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Clone returns an independent copy of rs.
func (rs *RuleSet) Clone() *RuleSet {
	if rs == nil {
		return &RuleSet{}
	}
	return &RuleSet{rules: slices.Clone(rs.rules)}
}

func (rs *RuleSet) index(name string) int {
	if rs == nil {
		return -1
	}
	return slices.IndexFunc(rs.rules, func(r Rule) bool { return r.Name == name })
}
