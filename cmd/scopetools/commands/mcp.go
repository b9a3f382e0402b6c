package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/scopetools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: scopetools mcp\n\n")
		Writef(output, "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(output, "The server exposes merge, scope, operations, and dependencies tools\n")
		Writef(output, "to MCP clients. It reads requests from stdin and writes responses to\n")
		Writef(output, "stdout, so all diagnostics go to stderr.\n\n")
		Writef(output, "Configuration (environment variables):\n")
		Writef(output, "  SCOPETOOLS_CACHE_ENABLED       enable document caching (default: true)\n")
		Writef(output, "  SCOPETOOLS_CACHE_FILE_TTL      cache TTL for file documents (default: 15m)\n")
		Writef(output, "  SCOPETOOLS_CACHE_URL_TTL       cache TTL for URL documents (default: 5m)\n")
		Writef(output, "  SCOPETOOLS_MAX_SERVICE_SPECS   maximum services per call (default: 20)\n")
		Writef(output, "  SCOPETOOLS_MAX_INLINE_SIZE     maximum inline content bytes (default: 4194304)\n")
		Writef(output, "  SCOPETOOLS_LIST_LIMIT          default operations list limit (default: 100)\n")
		Writef(output, "  SCOPETOOLS_ALLOW_PRIVATE_IPS   allow URLs resolving to private IPs (default: false)\n")
		Writef(output, "\nExample MCP client configuration:\n")
		Writef(output, "  {\"mcpServers\": {\"scopetools\": {\"command\": \"scopetools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

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

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
