package rules

import (
	"github.com/erraggy/oaslint/discriminator"
	"github.com/erraggy/oaslint/match"
	"github.com/erraggy/oaslint/parser"
)

// Built-in rule names.
const (
	TypeMismatch               = match.RuleName
	ValidateOneOfDiscriminator = discriminator.OneOfRuleName
	ValidateAnyOfDiscriminator = discriminator.AnyOfRuleName
)

// TypeMismatchRule checks defaults, examples and enum members against the
// schema that declares them.
func TypeMismatchRule() Rule {
	return Rule{
		Name:        TypeMismatch,
		Kind:        KindValue,
		Description: "default, example and enum values must match the schema type and format",
		Severity:    SeverityError,
		CheckValue:  match.Check,
	}
}

// OneOfDiscriminatorRule checks oneOf members against the discriminator.
func OneOfDiscriminatorRule() Rule {
	return compositionRule(parser.OneOf,
		"oneOf members must declare and require the discriminator property")
}

// AnyOfDiscriminatorRule checks anyOf members against the discriminator.
func AnyOfDiscriminatorRule() Rule {
	return compositionRule(parser.AnyOf,
		"anyOf members must declare and require the discriminator property")
}

func compositionRule(kind parser.CompositionKind, description string) Rule {
	return Rule{
		Name:        discriminator.RuleName(kind),
		Kind:        KindSchema,
		Description: description,
		Severity:    SeverityError,
		CheckSchema: func(s *parser.Schema, pointer string) []Issue {
			return discriminator.Check(s, kind, pointer)
		},
	}
}

// Builtin returns the built-in rules in their default order.
func Builtin() []Rule {
	return []Rule{
		TypeMismatchRule(),
		OneOfDiscriminatorRule(),
		AnyOfDiscriminatorRule(),
	}
}

// Default returns a new RuleSet holding the built-in rules.
func Default() *RuleSet {
	return &RuleSet{rules: Builtin()}
}
