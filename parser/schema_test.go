package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaHelpers(t *testing.T) {
	s := &Schema{
		Type: "object",
		Properties: []Property{
			{Name: "property1", Schema: &Schema{Type: "string"}},
			{Name: "property2", Schema: &Schema{Type: "integer"}},
		},
		Required: []string{"property1"},
		OneOf:    []*Schema{{ReferenceID: "a"}},
		AnyOf:    []*Schema{{ReferenceID: "b"}, {}},
	}

	p, ok := s.Property("property2")
	assert.True(t, ok)
	assert.Equal(t, "integer", p.Type)

	_, ok = s.Property("missing")
	assert.False(t, ok)

	assert.True(t, s.HasProperty("property1"))
	assert.False(t, s.HasProperty("property3"))
	assert.True(t, s.IsRequired("property1"))
	assert.False(t, s.IsRequired("property2"))

	assert.Len(t, s.Members(OneOf), 1)
	assert.Len(t, s.Members(AnyOf), 2)
	assert.Empty(t, s.Members(AllOf))
	assert.Nil(t, s.Members(CompositionKind(9)))

	assert.Equal(t, "a", s.OneOf[0].DisplayName())
	assert.Equal(t, "<inline>", s.AnyOf[1].DisplayName())
}

func TestSchemaHelpers_NilSafe(t *testing.T) {
	var s *Schema
	_, ok := s.Property("x")
	assert.False(t, ok)
	assert.False(t, s.HasProperty("x"))
	assert.False(t, s.IsRequired("x"))
	assert.Nil(t, s.Members(OneOf))
	assert.Equal(t, "<inline>", s.DisplayName())
}

func TestCompositionKind(t *testing.T) {
	assert.Equal(t, "oneOf", OneOf.Keyword())
	assert.Equal(t, "anyOf", AnyOf.String())
	assert.Equal(t, "allOf", AllOf.Keyword())
	assert.Equal(t, "composition(7)", CompositionKind(7).String())
	assert.Equal(t, [...]CompositionKind{OneOf, AnyOf, AllOf}, CompositionKinds)
}
