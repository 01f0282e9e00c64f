package validator_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/rules"
	"github.com/erraggy/oaslint/validator"
	"github.com/erraggy/oaslint/value"
)

func Example() {
	result, err := validator.ValidateWithOptions(
		validator.WithFilePath("../testdata/invalid-3.0.yaml"),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("valid: %v, errors: %d\n", result.Valid, result.ErrorCount)
	fmt.Println(result.Errors[0].Pointer)
	// Output:
	// valid: false, errors: 9
	// #/components/schemas/Settings/properties/name/default
}

func ExampleValidator_ValidateSchema() {
	s := &parser.Schema{
		Type:  "array",
		Items: &parser.Schema{Type: "integer"},
		Default: value.Array{
			value.Integer(1),
			value.String("two"),
			value.Integer(3),
		},
	}
	result, err := validator.New().ValidateSchema(s, "#/definitions/Numbers")
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range result.Errors {
		fmt.Println(e.Pointer, e.Rule)
	}
	// Output:
	// #/definitions/Numbers/default/1 TypeMismatch
}

func ExampleWithRuleSet() {
	rs := rules.Default()
	if err := rs.SetSeverity(rules.ValidateOneOfDiscriminator, rules.SeverityWarning); err != nil {
		log.Fatal(err)
	}
	result, err := validator.ValidateWithOptions(
		validator.WithFilePath("../testdata/invalid-3.0.yaml"),
		validator.WithRuleSet(rs),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("errors: %d, warnings: %d\n", result.ErrorCount, result.WarningCount)
	// Output:
	// errors: 6, warnings: 3
}
