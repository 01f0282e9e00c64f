package rules

import (
	"slices"
	"sync"

	"github.com/erraggy/oaslint/oaserrors"
)

// Registry maps rule names to rules so that rule sets can be assembled from
// configuration. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
	order []string
}

// NewRegistry creates a registry holding the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule)}
	for _, rule := range Builtin() {
		r.rules[rule.Name] = rule
		r.order = append(r.order, rule.Name)
	}
	return r
}

// Register adds a rule. Names must be unique.
func (r *Registry) Register(rule Rule) error {
	if err := rule.Validate(); err != nil {
		return &oaserrors.ConfigError{Option: "rule", Value: rule.Name, Message: "invalid rule", Cause: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[rule.Name]; exists {
		return &oaserrors.ConfigError{Option: "rule", Value: rule.Name, Message: "rule already registered"}
	}
	r.rules[rule.Name] = rule
	r.order = append(r.order, rule.Name)
	return nil
}

// Lookup returns the named rule.
func (r *Registry) Lookup(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[name]
	return rule, ok
}

// Names returns registered rule names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// All returns a RuleSet of every registered rule in registration order.
func (r *Registry) All() *RuleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rs := &RuleSet{rules: make([]Rule, 0, len(r.order))}
	for _, name := range r.order {
		rs.rules = append(rs.rules, r.rules[name])
	}
	return rs
}

// Select builds a RuleSet of the named rules in the given order.
func (r *Registry) Select(names ...string) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, name := range names {
		rule, ok := r.Lookup(name)
		if !ok {
			return nil, &oaserrors.ConfigError{Option: "rules", Value: name, Message: "unknown rule"}
		}
		if err := rs.Add(rule); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// FromConfig builds the RuleSet a Config describes. An empty rule list
// selects every registered rule.
func (r *Registry) FromConfig(cfg *Config) (*RuleSet, error) {
	if cfg == nil || len(cfg.Rules) == 0 {
		return r.All(), nil
	}

	rs := &RuleSet{}
	for _, entry := range cfg.Rules {
		rule, ok := r.Lookup(entry.Name)
		if !ok {
			return nil, &oaserrors.ConfigError{Option: "rules", Value: entry.Name, Message: "unknown rule"}
		}
		if entry.Severity != nil {
			rule.Severity = *entry.Severity
		}
		if err := rs.Add(rule); err != nil {
			return nil, err
		}
	}
	return rs, nil
}
