// Package walker runs validation rules over schema graphs.
//
// The walk is depth-first and pre-order. A JSON pointer stack starts at "#"
// (or [WithRootPointer]); each finding carries the pointer of the node or
// literal that produced it:
//
//	#/properties/<name>   property schemas, in declaration order
//	#/items               array element schema
//	#/additionalProperties
//	#/oneOf, #/anyOf, #/allOf   composition members (no member index)
//	#/default, #/example, #/enum/<i>   literals checked by value rules
//
// Segments are escaped as RFC 6901 requires: "~" is written "~0" and "/" is
// written "~1", so a property named "a/b" appears as "#/properties/a~1b".
// All other names, including spaces and non-ASCII text, appear verbatim.
//
// # Quick Start
//
//	found, err := walker.Walk(schema, rules.Default())
//	if err != nil {
//	    // the graph is malformed: errors.Is(err, oaserrors.ErrInvalidGraph)
//	}
//	for _, issue := range found.Issues() {
//	    fmt.Println(issue)
//	}
//
// # Cycles
//
// Schema graphs produced by the parser are cyclic when components refer to
// themselves. The walker tracks the schemas and reference IDs on the current
// path; reaching one again ends that branch without a finding and reports
// [SkipReasonCycle] to the [SchemaSkippedHandler], if any.
//
// # Flow Control
//
// A [SchemaHandler] observes every visited schema and returns an [Action]:
//
//   - [Continue]: run the schema's rules and descend
//   - [SkipChildren]: run the schema's rules but do not descend
//   - [Stop]: end the walk; findings collected so far are returned
package walker
