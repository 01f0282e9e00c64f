package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaslint/internal/mcpserver"
)

// HandleMCP serves the MCP tools over stdio until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint mcp\n\n")
		Writef(fs.Output(), "Serve the validate, parse and list_rules tools over MCP stdio.\n")
		Writef(fs.Output(), "Defaults are read from OASLINT_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
