// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaslint capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/rules"
)

const serverInstructions = `oaslint MCP server. Lints the schemas of OpenAPI 2.0/3.x and JSON Schema documents: default, example and enum values must match their schema's type and format, and discriminated oneOf/anyOf members must declare and require the discriminator property.

Configuration: defaults are configurable via OASLINT_* environment variables set in your MCP client config.

Key settings:
- OASLINT_VALIDATE_LIMIT (default: 100): default page size for validate results
- OASLINT_VALIDATE_NO_WARNINGS (default: false): suppress warnings by default
- OASLINT_RULES: comma-separated rule names to run when a call names none
- OASLINT_MAX_LIMIT (default: 1000): upper bound on any page size
- OASLINT_MAX_CONTENT_SIZE (default: 10MiB): upper bound on inline content
- OASLINT_CACHE_ENABLED (default: true): cache parsed documents per session

Finding locations are JSON pointers such as #/components/schemas/Pet/properties/id/example.`

// registry resolves rule names for every tool call.
var registry = rules.NewRegistry()

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaslint", Version: oaslint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Lint the schemas of an OpenAPI or JSON Schema document. Returns errors and warnings with JSON pointer locations and the rule that produced each. Use rules to run a subset of rules (see list_rules). Use no_warnings to focus on errors and offset/limit to paginate. Defaults are configurable via OASLINT_RULES, OASLINT_VALIDATE_NO_WARNINGS and OASLINT_VALIDATE_LIMIT.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI or JSON Schema document and list its named schemas with their JSON pointers. Use this to check that a document loads and that references resolve before linting.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_rules",
		Description: "List the lint rules the validate tool can run, in default order, with kind, severity and description.",
	}, handleListRules)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ValidateLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ValidateLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
