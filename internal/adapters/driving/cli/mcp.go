package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/storage/sqlite"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/mcp"
	"github.com/brightline-labs/deckhand-cli/internal/core/services"
	"github.com/brightline-labs/deckhand-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve [deck file]",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes the deck as resources (deck://outline, deck://guide,
deck://slides/{id}, deck://sessions) and a find_slides tool. By default it communicates
over stdio using JSON-RPC; use --port to serve HTTP instead.

Examples:
  # Stdio mode (default)
  deckhand mcp serve training/deck.toml

  # HTTP mode (for MCP Inspector, remote access)
  deckhand mcp serve training/deck.toml --port 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCPServe,
}

func init() {
	addDeckFlags(mcpServeCmd)
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	deckService, err := newDeckService(args)
	if err != nil {
		return err
	}

	ports := &mcp.Ports{
		Deck:  deckService,
		Guide: services.NewGuideService(),
	}

	// Recorded sessions are exposed when the local store opens; the
	// server still runs without it.
	if store, err := sqlite.NewStore(""); err == nil {
		defer store.Close() //nolint:errcheck
		ports.Responses = services.NewResponseService(store)
	} else {
		logger.Warn("response store unavailable: %v", err)
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
