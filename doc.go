// Package oaslint lints the schemas of OpenAPI and JSON Schema documents.
//
// oaslint loads a document, walks every schema graph in it, and runs a set
// of rules at each schema node. The built-in rules check that:
//
//   - default, example and enum literals match the declaring schema's type
//     and format (TypeMismatch)
//   - every oneOf member of a discriminated schema declares and requires the
//     discriminator property (ValidateOneOfDiscriminator)
//   - the same holds for anyOf members (ValidateAnyOfDiscriminator)
//
// Supported inputs are OAS 2.0 documents (definitions), OAS 3.x documents
// (components.schemas) and bare JSON Schema documents, in YAML or JSON.
//
// # Packages
//
//   - parser: load documents into schema graphs with typed literal values
//   - value: the typed literal value model (Integer, Long, Date, Object, ...)
//   - match: type and format compatibility between a value and a schema
//   - discriminator: discriminator checks for oneOf/anyOf members
//   - rules: rule definitions, rule sets, the registry and rule configuration
//   - walker: depth-first schema traversal that runs a rule set
//   - validator: load, walk and collect findings in one call
//   - oaserrors: structured error types
//
// # Quick Start
//
//	import "github.com/erraggy/oaslint/validator"
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range result.Errors {
//		fmt.Println(e)
//	}
//
// Findings carry the rule name, a severity and a JSON pointer such as
// "#/components/schemas/Pet/properties/id/example". Findings never abort a
// walk; Go errors are reserved for documents that cannot be loaded and for
// malformed schema graphs.
//
// # Command-Line Tool
//
// The oaslint command wraps the validator:
//
//	oaslint validate openapi.yaml
//	oaslint validate --rules TypeMismatch --format json openapi.yaml
//	oaslint rules
//	oaslint mcp
package oaslint
