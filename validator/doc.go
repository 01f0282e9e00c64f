// Package validator lints the schemas of API description documents.
//
// It loads a document with the parser, walks every top-level schema with a
// [rules.RuleSet], and splits the findings by severity. The built-in rules
// check that default, example and enum literals match their schema's type
// and format, and that discriminated oneOf/anyOf members declare and require
// the discriminator property.
//
// # Quick Start
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e)
//		}
//	}
//
// # Locations
//
// Each named schema is walked at its document pointer, e.g.
// "#/components/schemas/Pet" or "#/definitions/Pet", and a standalone
// schema document at "#". Finding pointers extend that root:
// "#/components/schemas/Pet/properties/id/example".
//
// # Rule Selection
//
// Pass [WithRuleSet] to run a subset, reorder rules or change severities.
// Findings with warning or info severity go to Warnings and do not affect
// Valid; [WithIncludeWarnings] (false) drops them from the result.
package validator
