// Package mcp exposes the tool surface over the Model Context Protocol so an
// LLM-driven conversation driver can invoke it.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/andsky/talekeeper/internal/logging"
	"github.com/andsky/talekeeper/internal/metrics"
	"github.com/andsky/talekeeper/pkg/engine"
	"github.com/andsky/talekeeper/pkg/ledger"
	"github.com/andsky/talekeeper/pkg/session"
	"github.com/andsky/talekeeper/pkg/world"
)

// Version is reported to MCP clients during initialization.
const Version = "0.3.0"

// defaultSession is used when the driver does not tag calls with a session id.
const defaultSession = "default"

// Server wraps the agent engine and exposes it as an MCP server. Each
// distinct session_id gets its own agent; the ledger is shared.
type Server struct {
	registry *world.Registry
	orders   ledger.Ledger
	sessions *session.Manager
	persona  engine.Persona
	logger   *slog.Logger

	mcpServer *server.MCPServer

	mu     sync.Mutex
	agents map[string]*engine.Agent
}

// Option configures the Server.
type Option func(*Server)

// WithPersona sets the persona used for new agents.
func WithPersona(p engine.Persona) Option {
	return func(s *Server) {
		s.persona = p
	}
}

// WithSessionManager enables cross-restart session persistence.
func WithSessionManager(m *session.Manager) Option {
	return func(s *Server) {
		s.sessions = m
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP server instance.
func NewServer(registry *world.Registry, orders ledger.Ledger, opts ...Option) *Server {
	s := &Server{
		registry:  registry,
		orders:    orders,
		persona:   engine.PersonaGameMaster,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("talekeeper", Version),
		agents:    make(map[string]*engine.Agent),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// agentFor returns the agent bound to the session id, creating it (and
// loading persisted state, when a session manager is configured) on first
// use.
func (s *Server) agentFor(ctx context.Context, sessionID string) (*engine.Agent, error) {
	if sessionID == "" {
		sessionID = defaultSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.agents[sessionID]; ok {
		return a, nil
	}

	opts := []engine.AgentOption{
		engine.WithPersona(s.persona),
		engine.WithLogger(s.logger),
	}
	if s.sessions != nil {
		state, err := s.sessions.LoadOrStart(ctx, sessionID, s.registry.StartScene())
		if err != nil {
			return nil, fmt.Errorf("failed to open session %s: %w", sessionID, err)
		}
		opts = append(opts, engine.WithState(state))
	}

	a := engine.NewAgent(s.registry, s.orders, opts...)
	s.agents[sessionID] = a
	return a, nil
}

func (s *Server) persist(ctx context.Context, sessionID string, a *engine.Agent) {
	if s.sessions == nil {
		return
	}
	if sessionID == "" {
		sessionID = defaultSession
	}
	if err := s.sessions.Save(ctx, sessionID, a.State()); err != nil {
		s.logger.Warn("failed to persist session", "session_id", sessionID, "err", err)
	}
}

// handle adapts a tool name to an MCP handler going through the dispatcher.
func (s *Server) handle(tool string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		sessionID, _ := args["session_id"].(string)

		agent, err := s.agentFor(ctx, sessionID)
		if err != nil {
			metrics.ObserveTool(tool, err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		text, err := agent.Dispatch(ctx, tool, args)
		metrics.ObserveTool(tool, err)
		if err != nil {
			s.logger.Warn("tool call rejected", "tool", tool, "err", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		s.persist(ctx, sessionID, agent)
		return mcp.NewToolResultText(text), nil
	}
}

func (s *Server) registerTools() {
	sessionParam := mcp.WithString("session_id",
		mcp.Description("Conversation session identifier (optional, defaults to a shared session)"))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolStartAdventure,
		mcp.WithDescription("Reset the session and start the adventure. Returns the greeting and the first scene."),
		mcp.WithString("player_name", mcp.Description("Player name (defaults to 'traveler')")),
		sessionParam,
	), s.handle(engine.ToolStartAdventure))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolGetScene,
		mcp.WithDescription("Render the current scene and its choices without changing anything."),
		sessionParam,
	), s.handle(engine.ToolGetScene))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolPlayerAction,
		mcp.WithDescription("Apply a player action. Free text is matched against the current scene's choices."),
		mcp.WithString("action", mcp.Required(), mcp.Description("Player action or choice code")),
		sessionParam,
	), s.handle(engine.ToolPlayerAction))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolShowJournal,
		mcp.WithDescription("Show the session journal, inventory, and recent choices."),
		sessionParam,
	), s.handle(engine.ToolShowJournal))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolRestartAdventure,
		mcp.WithDescription("Reset the adventure to the first scene."),
		sessionParam,
	), s.handle(engine.ToolRestartAdventure))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolShowCatalog,
		mcp.WithDescription("List catalog products, optionally filtered."),
		mcp.WithString("query", mcp.Description("Free-text search over names and descriptions")),
		mcp.WithString("category", mcp.Description("Product category (synonyms like 'tees' or 'phones' are understood)")),
		mcp.WithNumber("min_price", mcp.Description("Minimum price")),
		mcp.WithNumber("max_price", mcp.Description("Maximum price")),
		mcp.WithString("color", mcp.Description("Product color")),
		mcp.WithString("size", mcp.Description("Required size, e.g. M")),
		sessionParam,
	), s.handle(engine.ToolShowCatalog))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolAddToCart,
		mcp.WithDescription("Resolve a product reference and add it to the cart."),
		mcp.WithString("product", mcp.Required(), mcp.Description("Product reference: id, name fragment, ordinal, or index")),
		mcp.WithNumber("quantity", mcp.Description("Quantity (defaults to 1)")),
		mcp.WithString("size", mcp.Description("Size for apparel, e.g. M")),
		sessionParam,
	), s.handle(engine.ToolAddToCart))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolShowCart,
		mcp.WithDescription("Show cart lines with per-line and grand totals."),
		sessionParam,
	), s.handle(engine.ToolShowCart))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolClearCart,
		mcp.WithDescription("Empty the cart."),
		sessionParam,
	), s.handle(engine.ToolClearCart))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolPlaceOrder,
		mcp.WithDescription("Turn the cart into a confirmed order and append it to the ledger."),
		mcp.WithBoolean("confirm", mcp.Description("Set false to abort without changes")),
		sessionParam,
	), s.handle(engine.ToolPlaceOrder))

	s.mcpServer.AddTool(mcp.NewTool(engine.ToolLastOrder,
		mcp.WithDescription("Show the most recent order from the ledger."),
		sessionParam,
	), s.handle(engine.ToolLastOrder))
}

func (s *Server) registerResources() {
	// EXPOSE: talekeeper://catalog
	s.mcpServer.AddResource(mcp.NewResource("talekeeper://catalog", "Product Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.registry.Products())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "talekeeper://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
