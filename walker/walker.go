package walker

import (
	"fmt"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/rules"
	"github.com/erraggy/oaslint/value"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Reasons passed to a SchemaSkippedHandler.
const (
	// SkipReasonCycle means the schema is already being walked on the current path.
	SkipReasonCycle = "cycle"
	// SkipReasonDepth means the schema is deeper than the configured maximum.
	SkipReasonDepth = "depth"
	// SkipReasonReference means the schema is a named component and the walk
	// does not follow references.
	SkipReasonReference = "reference"
)

// SchemaHandler is called for each visited schema before its rules run.
// Returning SkipChildren keeps the schema's own checks but does not descend.
type SchemaHandler func(schema *parser.Schema, pointer string) Action

// SchemaSkippedHandler is called when a schema is not walked.
// The reason is one of SkipReasonCycle, SkipReasonDepth or SkipReasonReference.
type SchemaSkippedHandler func(reason string, schema *parser.Schema, pointer string)

// Walker runs a RuleSet over schema graphs.
//
// A Walker holds configuration only. Each call to Walk uses its own pointer
// stack, path set and collector, so one Walker may serve concurrent walks.
type Walker struct {
	schemaRules []rules.Rule
	valueRules  []rules.Rule

	rootPointer     string
	logger          parser.Logger
	onSchema        SchemaHandler
	onSchemaSkipped SchemaSkippedHandler
	maxDepth        int
	followRefs      bool
}

// New creates a Walker for rs. A nil rs means rules.Default().
// The rule set is snapshotted; later changes to rs do not affect the Walker.
func New(rs *rules.RuleSet, opts ...Option) *Walker {
	if rs == nil {
		rs = rules.Default()
	}
	w := &Walker{
		schemaRules: rs.ForKind(rules.KindSchema),
		valueRules:  rs.ForKind(rules.KindValue),
		rootPointer: pathutil.Root,
		logger:      parser.NopLogger{},
		followRefs:  true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk runs rs over the graph rooted at root and returns every finding in
// traversal order.
//
// Findings never abort a walk. A malformed graph (nil root, nil child
// schema, duplicate property names) returns an *oaserrors.InvalidGraphError
// and no collector.
func Walk(root *parser.Schema, rs *rules.RuleSet, opts ...Option) (*rules.Collector, error) {
	return New(rs, opts...).Walk(root)
}

// Walk traverses the graph rooted at root depth-first, pre-order.
//
// At each schema the walker runs the schema rules, then the value rules
// against default, example and each enum member, then descends into
// properties in order, items, additionalProperties, and the oneOf, anyOf and
// allOf members. A schema already on the current path is not entered again.
func (w *Walker) Walk(root *parser.Schema) (*rules.Collector, error) {
	if root == nil {
		return nil, &oaserrors.InvalidGraphError{Pointer: w.rootPointer, Message: "root schema is nil"}
	}

	st := &walkState{
		w:          w,
		onPath:     make(map[*parser.Schema]bool),
		refsOnPath: make(map[string]bool),
		collector:  issues.NewCollector(),
	}
	st.pointer.Reset(w.rootPointer)

	if err := st.walkSchema(root, true); err != nil {
		return nil, err
	}
	w.logger.Debug("walk complete",
		"root", w.rootPointer,
		"issues", st.collector.Len(),
		"schemas", st.visited)
	return st.collector, nil
}

// walkState is the mutable state of one walk.
type walkState struct {
	w          *Walker
	pointer    pathutil.PointerBuilder
	onPath     map[*parser.Schema]bool
	refsOnPath map[string]bool
	collector  *issues.Collector
	stopped    bool
	depth      int
	visited    int
}

// walkSchema visits schema at the current pointer.
func (st *walkState) walkSchema(schema *parser.Schema, isRoot bool) error {
	if st.stopped {
		return nil
	}
	w := st.w
	pointer := st.pointer.String()

	if schema == nil {
		return &oaserrors.InvalidGraphError{Pointer: pointer, Message: "schema is nil"}
	}

	// Named components are walked on their own when refs are not followed
	if !isRoot && !w.followRefs && schema.ReferenceID != "" {
		st.skip(SkipReasonReference, schema, pointer)
		return nil
	}

	// Check for cycle
	if st.onPath[schema] || (schema.ReferenceID != "" && st.refsOnPath[schema.ReferenceID]) {
		st.skip(SkipReasonCycle, schema, pointer)
		return nil
	}

	// Check depth limit
	if w.maxDepth > 0 && st.depth > w.maxDepth {
		st.skip(SkipReasonDepth, schema, pointer)
		return nil
	}

	if err := checkPropertyNames(schema, pointer); err != nil {
		return err
	}

	st.onPath[schema] = true
	defer delete(st.onPath, schema)
	if id := schema.ReferenceID; id != "" {
		st.refsOnPath[id] = true
		defer delete(st.refsOnPath, id)
	}
	st.visited++

	action := Continue
	if w.onSchema != nil {
		action = w.onSchema(schema, pointer)
		if action == Stop {
			st.stopped = true
			return nil
		}
	}

	for _, r := range w.schemaRules {
		st.report(r, r.CheckSchema(schema, pointer))
	}
	st.checkValues(schema)

	if action == SkipChildren {
		return nil
	}

	st.depth++
	defer func() { st.depth-- }()

	if err := st.walkProperties(schema); err != nil {
		return err
	}
	if schema.Items != nil {
		if err := st.walkChild(schema.Items, "items"); err != nil {
			return err
		}
	}
	if schema.AdditionalProperties != nil {
		if err := st.walkChild(schema.AdditionalProperties, "additionalProperties"); err != nil {
			return err
		}
	}
	return st.walkComposition(schema)
}

func (st *walkState) walkChild(child *parser.Schema, segment string) error {
	st.pointer.Push(segment)
	defer st.pointer.Pop()
	return st.walkSchema(child, false)
}

func (st *walkState) walkProperties(schema *parser.Schema) error {
	if len(schema.Properties) == 0 {
		return nil
	}
	st.pointer.Push("properties")
	defer st.pointer.Pop()

	for _, prop := range schema.Properties {
		if err := st.walkChild(prop.Schema, prop.Name); err != nil {
			return err
		}
		if st.stopped {
			return nil
		}
	}
	return nil
}

// walkComposition walks oneOf, anyOf and allOf members. Members share the
// keyword's pointer; no index is pushed.
func (st *walkState) walkComposition(schema *parser.Schema) error {
	for _, kind := range parser.CompositionKinds {
		members := schema.Members(kind)
		if len(members) == 0 {
			continue
		}
		st.pointer.Push(kind.Keyword())
		for i, m := range members {
			if m == nil {
				pointer := st.pointer.String()
				st.pointer.Pop()
				return &oaserrors.InvalidGraphError{
					Pointer: pointer,
					Message: fmt.Sprintf("%s member %d is nil", kind.Keyword(), i),
				}
			}
			if err := st.walkSchema(m, false); err != nil {
				st.pointer.Pop()
				return err
			}
		}
		st.pointer.Pop()
		if st.stopped {
			return nil
		}
	}
	return nil
}

// checkValues runs the value rules against default, example and each enum
// member, in that order.
func (st *walkState) checkValues(schema *parser.Schema) {
	if len(st.w.valueRules) == 0 {
		return
	}
	if schema.Default != nil {
		st.pointer.Push("default")
		st.checkValue(schema, schema.Default)
		st.pointer.Pop()
	}
	if schema.Example != nil {
		st.pointer.Push("example")
		st.checkValue(schema, schema.Example)
		st.pointer.Pop()
	}
	if len(schema.Enum) > 0 {
		st.pointer.Push("enum")
		for i, v := range schema.Enum {
			st.pointer.PushIndex(i)
			st.checkValue(schema, v)
			st.pointer.Pop()
		}
		st.pointer.Pop()
	}
}

func (st *walkState) checkValue(schema *parser.Schema, v value.Value) {
	if v == nil {
		v = value.Null{}
	}
	pointer := st.pointer.String()
	for _, r := range st.w.valueRules {
		st.report(r, r.CheckValue(schema, v, pointer))
	}
}

// report stamps findings with the rule's registered name and severity.
func (st *walkState) report(r rules.Rule, found []rules.Issue) {
	for _, f := range found {
		f.Rule = r.Name
		f.Severity = r.Severity
		st.collector.Add(f)
	}
}

func (st *walkState) skip(reason string, schema *parser.Schema, pointer string) {
	st.w.logger.Debug("skipping schema",
		"reason", reason,
		"schema", schema.DisplayName(),
		"pointer", pointer)
	if st.w.onSchemaSkipped != nil {
		st.w.onSchemaSkipped(reason, schema, pointer)
	}
}

// checkPropertyNames rejects duplicate property names.
func checkPropertyNames(schema *parser.Schema, pointer string) error {
	if len(schema.Properties) < 2 {
		return nil
	}
	seen := make(map[string]bool, len(schema.Properties))
	for _, p := range schema.Properties {
		if seen[p.Name] {
			return &oaserrors.InvalidGraphError{
				Pointer: pathutil.Join(pointer, "properties", p.Name),
				Message: "duplicate property name",
			}
		}
		seen[p.Name] = true
	}
	return nil
}
