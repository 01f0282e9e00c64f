package walker

import "github.com/erraggy/oaslint/parser"

// Option configures the Walker.
type Option func(*Walker)

// WithRootPointer sets the pointer of the walk root, e.g.
// "#/components/schemas/Pet". The default is "#".
func WithRootPointer(pointer string) Option {
	return func(w *Walker) {
		if pointer != "" {
			w.rootPointer = pointer
		}
	}
}

// WithLogger sets a structured logger for debug output.
// By default, logging is disabled.
func WithLogger(l parser.Logger) Option {
	return func(w *Walker) {
		w.logger = parser.OrNop(l)
	}
}

// WithSchemaHandler sets a handler called for every visited schema.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithSchemaSkippedHandler sets a handler called when a schema is skipped
// because of a cycle, the depth limit, or a reference that is not followed.
func WithSchemaSkippedHandler(fn SchemaSkippedHandler) Option {
	return func(w *Walker) { w.onSchemaSkipped = fn }
}

// WithMaxSchemaDepth limits how many levels below the root are walked.
// If depth is not positive, the walk is unlimited (the default); cycles are
// still cut by path tracking.
func WithMaxSchemaDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithFollowReferences controls whether the walker descends into named
// schemas (those with a ReferenceID) below the root. It is enabled by
// default. Disable it when every named schema is walked separately so each
// finding is reported once, at the schema's own location.
func WithFollowReferences(follow bool) Option {
	return func(w *Walker) { w.followRefs = follow }
}
