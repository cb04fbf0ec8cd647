package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/saffronlabs/menuboard/internal/config"
	"github.com/saffronlabs/menuboard/internal/gemini"
	"github.com/saffronlabs/menuboard/internal/handlers"
	"github.com/saffronlabs/menuboard/internal/menu"
	"github.com/saffronlabs/menuboard/internal/render"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var menuFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the menu page",
		Long: `Starts the Menuboard web interface on the specified port.

Cards for every menu item appear immediately with placeholders and are
backfilled in place as Gemini returns each description and photo.`,
		Example: `  # Start server on default port 8888
  menuboard serve

  # Start server on custom port with a custom menu
  menuboard serve --port 3000 --menu menu.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			entries, err := loadEntries(menuFile)
			if err != nil {
				return err
			}

			// A missing or invalid credential must not kill the server;
			// the page shows a single error message instead of the menu.
			var gen menu.Generator
			client, err := gemini.New(cmd.Context(), cfg)
			if err != nil {
				slog.Error("Generation client unavailable", "err", err)
			} else {
				gen = client
				defer func() {
					if err := client.Close(); err != nil {
						slog.Error("Unable to close gemini client", "err", err)
					}
				}()
			}

			board := menu.NewBoard(gen, entries)
			// Launched requests run to completion even if the CLI context
			// is cancelled, so the board gets a background context.
			board.Render(context.Background())

			handler := handlers.New(board, render.New())

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/menu", handler.HandleMenu)
			mux.HandleFunc("/api/render", handler.HandleRender)
			mux.HandleFunc("/", handler.HandleIndex)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Menuboard available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVarP(&menuFile, "menu", "m", "", "Path to a YAML menu file overriding the built-in menu")

	return cmd
}
