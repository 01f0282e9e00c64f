package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaslint/rules"
	"github.com/erraggy/oaslint/validator"
)

type validateInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The document to lint"`
	Rules      []string  `json:"rules,omitempty"       jsonschema:"Rule names to run, in order (default: OASLINT_RULES or every rule)"`
	NoWarnings *bool     `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
	Offset     int       `json:"offset,omitempty"      jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit      int       `json:"limit,omitempty"       jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type validateIssue struct {
	Pointer  string `json:"pointer"`
	Message  string `json:"message"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Kind         string          `json:"kind"`
	Version      string          `json:"version,omitempty"`
	SchemaCount  int             `json:"schema_count"`
	Rules        []string        `json:"rules"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Returned     int             `json:"returned"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}
	names := input.Rules
	if len(names) == 0 {
		names = cfg.Rules
	}

	rs, err := selectRules(names)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.ValidateWithOptions(
		validator.WithParsed(parseResult),
		validator.WithRuleSet(rs),
		validator.WithIncludeWarnings(!noWarnings),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		Kind:         string(result.Kind),
		Version:      result.Version,
		SchemaCount:  result.SchemaCount,
		Rules:        result.Rules,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
	}

	output.Errors = paginate(toIssues(result.Errors), input.Offset, input.Limit)
	output.Warnings = paginate(toIssues(result.Warnings), input.Offset, input.Limit)
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}

func toIssues(found []validator.ValidationError) []validateIssue {
	out := makeSlice[validateIssue](len(found))
	for _, f := range found {
		out = append(out, validateIssue{
			Pointer:  f.Pointer,
			Message:  f.Message,
			Rule:     f.Rule,
			Severity: f.Severity.String(),
		})
	}
	return out
}

// selectRules resolves rule names against the registry. No names selects
// every registered rule.
func selectRules(names []string) (*rules.RuleSet, error) {
	if len(names) == 0 {
		return registry.All(), nil
	}
	return registry.Select(names...)
}
