package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listRulesInput struct{}

type ruleSummary struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type listRulesOutput struct {
	Count int           `json:"count"`
	Rules []ruleSummary `json:"rules"`
}

func handleListRules(_ context.Context, _ *mcp.CallToolRequest, _ listRulesInput) (*mcp.CallToolResult, listRulesOutput, error) {
	all := registry.All().Rules()
	output := listRulesOutput{
		Count: len(all),
		Rules: make([]ruleSummary, 0, len(all)),
	}
	for _, r := range all {
		output.Rules = append(output.Rules, ruleSummary{
			Name:        r.Name,
			Kind:        r.Kind.String(),
			Severity:    r.Severity.String(),
			Description: r.Description,
		})
	}
	return nil, output, nil
}
