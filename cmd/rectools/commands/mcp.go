package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/rectools/internal/cliutil"
	"github.com/erraggy/rectools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rectools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the rectools MCP server on stdin/stdout.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes record conversion, format listing, and sample\n")
		cliutil.Writef(fs.Output(), "generation as MCP tools. It speaks the stdio transport and is meant\n")
		cliutil.Writef(fs.Output(), "to be launched by an MCP client, not interactively.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
