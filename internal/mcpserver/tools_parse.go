package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The document to parse"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N schemas (for pagination)"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of schemas to return (default 100)"`
}

type parseSchemaSummary struct {
	Name    string `json:"name,omitempty"`
	Pointer string `json:"pointer"`
	Type    string `json:"type,omitempty"`
	AliasOf string `json:"alias_of,omitempty"`
}

type parseOutput struct {
	Kind        string               `json:"kind"`
	Version     string               `json:"version,omitempty"`
	Format      string               `json:"format"`
	SchemaCount int                  `json:"schema_count"`
	Returned    int                  `json:"returned"`
	Schemas     []parseSchemaSummary `json:"schemas,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	summaries := makeSlice[parseSchemaSummary](len(result.Schemas))
	for _, ns := range result.Schemas {
		summaries = append(summaries, parseSchemaSummary{
			Name:    ns.Name,
			Pointer: ns.Pointer,
			Type:    ns.Schema.Type,
			AliasOf: ns.AliasOf,
		})
	}

	output := parseOutput{
		Kind:        string(result.Kind),
		Version:     result.Version,
		Format:      string(result.SourceFormat),
		SchemaCount: len(result.Schemas),
		Schemas:     paginate(summaries, input.Offset, input.Limit),
	}
	output.Returned = len(output.Schemas)
	return nil, output, nil
}
