package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andsky/talekeeper/pkg/adapters/mcp"
	"github.com/andsky/talekeeper/pkg/session"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the agent as an MCP server so an LLM conversation driver can
invoke its tools.

Supported transports:
- stdio (default): Standard Input/Output. Ideal for local process integration.
- sse: Server-Sent Events over HTTP. Ideal for remote drivers or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		app, err := buildEnv(cmd)
		if err != nil {
			log.Fatalf("Error initializing talekeeper: %v", err)
		}

		sessions := session.NewManager(
			session.NewFileStore(app.cfg.SessionDir),
			session.WithLogger(app.logger),
		)

		srv := mcp.NewServer(app.registry, app.orders,
			mcp.WithPersona(app.persona),
			mcp.WithSessionManager(sessions),
			mcp.WithLogger(app.logger),
		)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on stdout.
			log.SetOutput(os.Stderr)
			app.logger.Info("starting MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				app.logger.Error("MCP server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			app.logger.Info("starting MCP server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					app.logger.Error("MCP server execution failed", "err", err)
					os.Exit(1)
				}
			}
			app.logger.Info("MCP server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
