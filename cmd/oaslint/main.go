package main

import (
	"errors"
	"os"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/cmd/oaslint/commands"
)

// commandNames lists the top-level commands for typo suggestions.
var commandNames = []string{"validate", "rules", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a command and returns the process exit code.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	command := args[0]
	var err error

	switch command {
	case "version", "-v", "--version":
		commands.Writef(commands.Stdout, "oaslint v%s\n", oaslint.Version())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "validate":
		err = commands.HandleValidate(args[1:])
	case "rules":
		err = commands.HandleRules(args[1:])
	case "mcp":
		err = commands.HandleMCP(args[1:])
	default:
		commands.Writef(commands.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			commands.Writef(commands.Stderr, "Did you mean: oaslint %s\n", s)
		}
		commands.Writef(commands.Stderr, "\n")
		printUsage()
		return 1
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, commands.ErrValidationFailed):
		return 1
	default:
		commands.Writef(commands.Stderr, "Error: %v\n", err)
		return 1
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	out := commands.Stderr
	commands.Writef(out, "oaslint - lint OpenAPI and JSON Schema documents\n\n")
	commands.Writef(out, "Usage:\n")
	commands.Writef(out, "  oaslint <command> [options]\n\n")
	commands.Writef(out, "Commands:\n")
	commands.Writef(out, "  validate    Lint the schemas of a document\n")
	commands.Writef(out, "  rules       List the lint rules\n")
	commands.Writef(out, "  mcp         Serve the lint tools over MCP stdio\n")
	commands.Writef(out, "  version     Show version information\n")
	commands.Writef(out, "  help        Show this help message\n\n")
	commands.Writef(out, "Examples:\n")
	commands.Writef(out, "  oaslint validate openapi.yaml\n")
	commands.Writef(out, "  oaslint validate --format json openapi.yaml\n")
	commands.Writef(out, "  oaslint rules\n\n")
	commands.Writef(out, "Run 'oaslint <command> --help' for more information on a command.\n")
}
