package parser

import (
	"fmt"

	"github.com/erraggy/oaslint/value"
)

// Schema represents one schema of an API description.
//
// A Schema graph may be cyclic: a property, items, or composition member can
// point back at an ancestor when the document describes self- or
// mutually-referential components. Schemas reached through a $ref share one
// *Schema whose ReferenceID names the component.
type Schema struct {
	// Type is the declared type ("string", "number", "integer", "boolean",
	// "object", "array"). Empty means unconstrained.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	// Format refines Type (e.g. "int64", "date-time"). Empty means absent.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Properties in document order. Names are unique.
	Properties []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	// Items is the element schema for arrays
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	// AdditionalProperties constrains object keys not named in Properties
	AdditionalProperties *Schema `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	// Required lists property names that must be present
	Required []string `yaml:"required,omitempty" json:"required,omitempty"`

	// Schema composition
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	// Discriminator selects a oneOf/anyOf member by property value
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	// Nullable is set by "nullable: true" (OAS 3.0) or "x-nullable: true" (OAS 2.0)
	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`

	// Embedded literals. A nil Default or Example means the keyword is absent;
	// an explicit null is value.Null{}.
	Default value.Value   `yaml:"-" json:"-"`
	Example value.Value   `yaml:"-" json:"-"`
	Enum    []value.Value `yaml:"-" json:"-"`

	// ReferenceID names the component this schema was defined as, if any
	ReferenceID string `yaml:"-" json:"-"`
}

// Property is a named entry of Schema.Properties.
type Property struct {
	Name   string  `yaml:"name" json:"name"`
	Schema *Schema `yaml:"schema" json:"schema"`
}

// Discriminator names the property whose value selects a composition member.
type Discriminator struct {
	PropertyName string `yaml:"propertyName" json:"propertyName"`
}

// Property returns the schema of the named property.
func (s *Schema) Property(name string) (*Schema, bool) {
	if s == nil {
		return nil, false
	}
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// HasProperty reports whether name is a key of Properties.
func (s *Schema) HasProperty(name string) bool {
	_, ok := s.Property(name)
	return ok
}

// IsRequired reports whether name appears in Required.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Members returns the composition list of the given kind.
func (s *Schema) Members(kind CompositionKind) []*Schema {
	if s == nil {
		return nil
	}
	switch kind {
	case OneOf:
		return s.OneOf
	case AnyOf:
		return s.AnyOf
	case AllOf:
		return s.AllOf
	default:
		return nil
	}
}

// DisplayName identifies the schema in messages.
func (s *Schema) DisplayName() string {
	if s == nil || s.ReferenceID == "" {
		return "<inline>"
	}
	return s.ReferenceID
}

// CompositionKind is the closed set of composition keywords.
type CompositionKind int

const (
	// OneOf is an exclusive choice between members.
	OneOf CompositionKind = iota
	// AnyOf is an inclusive choice between members.
	AnyOf
	// AllOf is a conjunction of members.
	AllOf
)

// CompositionKinds lists every kind in traversal order.
var CompositionKinds = [...]CompositionKind{OneOf, AnyOf, AllOf}

// Keyword returns the schema keyword, e.g. "oneOf".
func (k CompositionKind) Keyword() string {
	switch k {
	case OneOf:
		return "oneOf"
	case AnyOf:
		return "anyOf"
	case AllOf:
		return "allOf"
	default:
		return fmt.Sprintf("composition(%d)", int(k))
	}
}

// String implements fmt.Stringer.
func (k CompositionKind) String() string {
	return k.Keyword()
}
