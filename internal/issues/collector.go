package issues

import "github.com/erraggy/oaslint/internal/severity"

// Collector is an append-only, ordered sequence of issues owned by a single
// walk. Order reflects traversal and check order exactly, so two walks over
// the same graph with the same rules produce identical sequences.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	items []Issue
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{items: make([]Issue, 0, 8)}
}

// Add appends issues in order.
func (c *Collector) Add(found ...Issue) {
	c.items = append(c.items, found...)
}

// Len returns the number of collected issues.
func (c *Collector) Len() int {
	return len(c.items)
}

// Issues returns a copy of all collected issues in order.
func (c *Collector) Issues() []Issue {
	out := make([]Issue, len(c.items))
	copy(out, c.items)
	return out
}

// Errors returns the error-severity issues in order.
func (c *Collector) Errors() []Issue {
	return c.filter(func(i Issue) bool { return i.Severity == severity.SeverityError })
}

// Warnings returns the issues below error severity in order.
func (c *Collector) Warnings() []Issue {
	return c.filter(func(i Issue) bool { return i.Severity != severity.SeverityError })
}

// ByRule returns the issues produced by the named rule in order.
func (c *Collector) ByRule(rule string) []Issue {
	return c.filter(func(i Issue) bool { return i.Rule == rule })
}

// HasErrors reports whether any error-severity issue was collected.
func (c *Collector) HasErrors() bool {
	for _, i := range c.items {
		if i.IsError() {
			return true
		}
	}
	return false
}

func (c *Collector) filter(keep func(Issue) bool) []Issue {
	var out []Issue
	for _, i := range c.items {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}
