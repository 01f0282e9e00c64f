// Package match decides whether a literal value is structurally compatible
// with a schema's declared type and format.
//
// A schema without a type accepts anything, and a nullable schema accepts
// Null. An object schema accepts a plain String as an opaque encoding of the
// object. Otherwise the value's base type must equal the schema type; scalars
// must also carry exactly the format tag the schema requires (see
// [value.SchemaFormat]), where no format matches only no format. Arrays
// recurse into items and objects into properties or additionalProperties,
// each child reporting at its own pointer.
package match

import (
	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/value"
)

// RuleName is the registered name of the type compatibility rule.
const RuleName = "TypeMismatch"

// Message is the text of every type mismatch issue.
const Message = "value does not match the schema type"

// Matches reports whether v conforms to s, including every nested element.
func Matches(s *parser.Schema, v value.Value) bool {
	return len(Check(s, v, pathutil.Root)) == 0
}

// Check returns one issue for each point where v diverges from s.
//
// A mismatch of the value's own base type yields exactly one issue at
// pointer and nothing below it. Nested mismatches are reported at the
// element's pointer only; siblings are always all checked.
func Check(s *parser.Schema, v value.Value, pointer string) []issues.Issue {
	var found []issues.Issue
	check(s, v, pointer, &found)
	return found
}

func check(s *parser.Schema, v value.Value, pointer string, found *[]issues.Issue) {
	if s == nil || s.Type == "" {
		return
	}
	if s.Type == value.BaseObject && value.KindOf(v) == value.KindString {
		return
	}
	if s.Nullable && value.KindOf(v) == value.KindNull {
		return
	}
	if value.BaseType(v) != s.Type {
		*found = append(*found, mismatch(pointer))
		return
	}

	switch t := v.(type) {
	case value.Array:
		if s.Items == nil {
			return
		}
		for i, elem := range t {
			check(s.Items, elem, pathutil.JoinIndex(pointer, i), found)
		}
	case *value.Object:
		for key, elem := range t.All() {
			sub, ok := s.Property(key)
			if !ok {
				sub = s.AdditionalProperties
			}
			check(sub, elem, pathutil.Join(pointer, key), found)
		}
	default:
		if value.Format(v) != value.SchemaFormat(s.Type, s.Format) {
			*found = append(*found, mismatch(pointer))
		}
	}
}

func mismatch(pointer string) issues.Issue {
	return issues.Issue{
		Rule:    RuleName,
		Code:    issues.CodeTypeMismatch,
		Pointer: pointer,
		Message: Message,
	}
}
