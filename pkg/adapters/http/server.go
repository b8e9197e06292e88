// Package http exposes the tool surface as a small JSON API, plus health and
// metrics endpoints for the worker process.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andsky/talekeeper/internal/logging"
	"github.com/andsky/talekeeper/internal/metrics"
	"github.com/andsky/talekeeper/pkg/engine"
	"github.com/andsky/talekeeper/pkg/world"
)

// Dispatcher is the slice of the agent the HTTP adapter needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, args map[string]any) (string, error)
}

// ToolResponse is the JSON envelope for a tool invocation.
type ToolResponse struct {
	Tool string `json:"tool"`
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler builds the chi router for the agent. Tool calls are serialized:
// the agent assumes sequential invocations per session, but an HTTP listener
// accepts concurrent requests from independent clients.
func NewHandler(agent Dispatcher, registry *world.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	var dispatchMu sync.Mutex

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/catalog", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, registry.Products(), logger)
	})

	r.Get("/tools", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, engine.ToolNames(), logger)
	})

	r.Post("/tools/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")

		args := map[string]any{}
		if req.Body != nil && req.ContentLength != 0 {
			if err := json.NewDecoder(req.Body).Decode(&args); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"}, logger)
				return
			}
		}

		dispatchMu.Lock()
		text, err := agent.Dispatch(req.Context(), name, args)
		dispatchMu.Unlock()
		metrics.ObserveTool(name, err)
		if err != nil {
			logger.Warn("tool call rejected", "tool", name, "err", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()}, logger)
			return
		}

		writeJSON(w, http.StatusOK, ToolResponse{Tool: name, Text: text}, logger)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "err", err)
	}
}
