// Package discriminator checks that every member of a discriminated oneOf or
// anyOf composition declares the discriminator property and requires it.
package discriminator

import (
	"fmt"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/parser"
)

// Registered rule names.
const (
	OneOfRuleName = "ValidateOneOfDiscriminator"
	AnyOfRuleName = "ValidateAnyOfDiscriminator"
)

// Finding texts.
const (
	PropertyMissingMessage = "composite schema must contain the property specified in the discriminator."
	NotRequiredMessage     = "composite schema's required field list must contain the property specified in the discriminator."
)

// RuleName returns the rule that checks kind, or "" for allOf.
func RuleName(kind parser.CompositionKind) string {
	switch kind {
	case parser.OneOf:
		return OneOfRuleName
	case parser.AnyOf:
		return AnyOfRuleName
	default:
		return ""
	}
}

// Check validates the members of s's kind composition against its
// discriminator. pointer locates s; findings are reported at
// pointer + "/oneOf" or "/anyOf" regardless of which member failed.
//
// Each member contributes a property-missing finding when the property is
// absent from its properties and a not-required finding when it is absent
// from its required list. Both are checked for every member. Nothing is
// reported without a discriminator, for an empty list, or for allOf.
func Check(s *parser.Schema, kind parser.CompositionKind, pointer string) []issues.Issue {
	rule := RuleName(kind)
	if rule == "" || s == nil || s.Discriminator == nil {
		return nil
	}
	members := s.Members(kind)
	if len(members) == 0 {
		return nil
	}

	prop := s.Discriminator.PropertyName
	at := pathutil.Join(pointer, kind.Keyword())
	var found []issues.Issue
	for _, m := range members {
		if !m.HasProperty(prop) {
			found = append(found, issues.Issue{
				Rule:    rule,
				Code:    issues.CodeDiscriminatorPropertyMissing,
				Pointer: at,
				Message: describe(PropertyMissingMessage, m, prop),
			})
		}
		if !m.IsRequired(prop) {
			found = append(found, issues.Issue{
				Rule:    rule,
				Code:    issues.CodeDiscriminatorNotRequired,
				Pointer: at,
				Message: describe(NotRequiredMessage, m, prop),
			})
		}
	}
	return found
}

func describe(msg string, member *parser.Schema, prop string) string {
	return fmt.Sprintf("%s (schema %q, property %q)", msg, member.DisplayName(), prop)
}
