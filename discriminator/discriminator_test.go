package discriminator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/parser"
)

func member(id string, required []string, props ...string) *parser.Schema {
	s := &parser.Schema{Type: "object", ReferenceID: id, Required: required}
	for _, p := range props {
		s.Properties = append(s.Properties, parser.Property{Name: p, Schema: &parser.Schema{Type: "string"}})
	}
	return s
}

// Scenario D
func TestCheck_OneOfMembers(t *testing.T) {
	s := &parser.Schema{
		Discriminator: &parser.Discriminator{PropertyName: "property2"},
		OneOf: []*parser.Schema{
			member("schema1", nil, "property1", "property2"),
			member("schema2", nil, "property1"),
		},
	}

	found := Check(s, parser.OneOf, "#")
	require.Len(t, found, 3)

	assert.Equal(t, issues.CodeDiscriminatorNotRequired, found[0].Code)
	assert.Contains(t, found[0].Message, `schema "schema1"`)
	assert.Equal(t, issues.CodeDiscriminatorPropertyMissing, found[1].Code)
	assert.Contains(t, found[1].Message, `schema "schema2"`)
	assert.Equal(t, issues.CodeDiscriminatorNotRequired, found[2].Code)
	assert.Contains(t, found[2].Message, `schema "schema2"`)

	for _, f := range found {
		assert.Equal(t, "#/oneOf", f.Pointer)
		assert.Equal(t, OneOfRuleName, f.Rule)
		assert.Contains(t, f.Message, `property "property2"`)
	}
	assert.Contains(t, found[1].Message, PropertyMissingMessage)
	assert.Contains(t, found[2].Message, NotRequiredMessage)
}

func TestCheck_ErrorsPerMember(t *testing.T) {
	tests := []struct {
		name     string
		member   *parser.Schema
		expected []string
	}{
		{
			name:   "missing and not required",
			member: member("M", nil, "other"),
			expected: []string{
				issues.CodeDiscriminatorPropertyMissing,
				issues.CodeDiscriminatorNotRequired,
			},
		},
		{
			name:     "present but not required",
			member:   member("M", []string{"other"}, "kind"),
			expected: []string{issues.CodeDiscriminatorNotRequired},
		},
		{
			name:     "required but not declared",
			member:   member("M", []string{"kind"}),
			expected: []string{issues.CodeDiscriminatorPropertyMissing},
		},
		{
			name:     "present and required",
			member:   member("M", []string{"kind"}, "kind"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range []parser.CompositionKind{parser.OneOf, parser.AnyOf} {
				s := &parser.Schema{Discriminator: &parser.Discriminator{PropertyName: "kind"}}
				switch kind {
				case parser.OneOf:
					s.OneOf = []*parser.Schema{tt.member}
				case parser.AnyOf:
					s.AnyOf = []*parser.Schema{tt.member}
				}

				var codes []string
				for _, f := range Check(s, kind, "#/components/schemas/Pet") {
					codes = append(codes, f.Code)
					assert.Equal(t, "#/components/schemas/Pet/"+kind.Keyword(), f.Pointer)
					assert.Equal(t, RuleName(kind), f.Rule)
				}
				assert.Equal(t, tt.expected, codes, kind.Keyword())
			}
		})
	}
}

func TestCheck_NothingToCheck(t *testing.T) {
	bad := member("bad", nil)

	assert.Empty(t, Check(&parser.Schema{OneOf: []*parser.Schema{bad}}, parser.OneOf, "#"), "no discriminator")
	assert.Empty(t, Check(&parser.Schema{Discriminator: &parser.Discriminator{PropertyName: "k"}}, parser.OneOf, "#"), "empty list")
	assert.Empty(t, Check(&parser.Schema{
		Discriminator: &parser.Discriminator{PropertyName: "k"},
		AllOf:         []*parser.Schema{bad},
	}, parser.AllOf, "#"), "allOf is exempt")
	assert.Empty(t, Check(nil, parser.OneOf, "#"))

	// oneOf rule does not look at anyOf members
	s := &parser.Schema{
		Discriminator: &parser.Discriminator{PropertyName: "k"},
		AnyOf:         []*parser.Schema{bad},
	}
	assert.Empty(t, Check(s, parser.OneOf, "#"))
	assert.Len(t, Check(s, parser.AnyOf, "#"), 2)
}

func TestCheck_InlineMemberDisplayName(t *testing.T) {
	s := &parser.Schema{
		Discriminator: &parser.Discriminator{PropertyName: "k"},
		AnyOf:         []*parser.Schema{{Type: "object"}},
	}
	found := Check(s, parser.AnyOf, "#")
	require.Len(t, found, 2)
	assert.Contains(t, found[0].Message, `schema "<inline>"`)
}

func TestRuleName(t *testing.T) {
	assert.Equal(t, OneOfRuleName, RuleName(parser.OneOf))
	assert.Equal(t, AnyOfRuleName, RuleName(parser.AnyOf))
	assert.Empty(t, RuleName(parser.AllOf))
}
