package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/andsky/talekeeper/pkg/adapters/http"
	"github.com/andsky/talekeeper/pkg/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the agent as a JSON API over HTTP, with health and Prometheus metrics endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		app, err := buildEnv(cmd)
		if err != nil {
			fmt.Printf("Error initializing talekeeper: %v\n", err)
			os.Exit(1)
		}
		if addr == "" {
			addr = app.cfg.HTTPAddr
		}

		agent := engine.NewAgent(app.registry, app.orders,
			engine.WithPersona(app.persona),
			engine.WithLogger(app.logger),
		)
		handler := httpAdapter.NewHandler(agent, app.registry, app.logger)

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			app.logger.Info("starting HTTP server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			app.logger.Error("server error", "err", err)
			os.Exit(1)

		case sig := <-shutdown:
			app.logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				app.logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					app.logger.Error("error killing server", "err", err)
				}
			}
			app.logger.Info("server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (defaults to TALEKEEPER_HTTP_ADDR)")
}
