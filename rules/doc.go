// Package rules defines validation rules and the ordered rule sets that the
// walker runs.
//
// A [Rule] is a named pure function bound to a node-visit [Kind]:
// [KindSchema] rules see every schema node, [KindValue] rules see every
// default, example and enum member together with the schema that governs it.
// A [RuleSet] is ordered; findings appear in rule order at each visit.
//
// # Built-in Rules
//
//   - TypeMismatch: literal values must match the schema type and format
//   - ValidateOneOfDiscriminator: oneOf members must declare and require the
//     discriminator property
//   - ValidateAnyOfDiscriminator: the same for anyOf members
//
// # Custom Rules
//
//	rs := rules.Default()
//	err := rs.Add(rules.Rule{
//		Name:     "NoEmptyEnum",
//		Kind:     rules.KindSchema,
//		Severity: rules.SeverityWarning,
//		CheckSchema: func(s *parser.Schema, pointer string) []rules.Issue {
//			if s.Enum != nil && len(s.Enum) == 0 {
//				return []rules.Issue{{Pointer: pointer + "/enum", Message: "enum is empty"}}
//			}
//			return nil
//		},
//	})
//
// # Configuration
//
// A [Registry] maps names to rules. [LoadConfig] reads a YAML or JSON rules
// file and [Registry.FromConfig] turns it into a RuleSet:
//
//	rules:
//	  - TypeMismatch
//	  - name: ValidateAnyOfDiscriminator
//	    severity: warning
package rules
