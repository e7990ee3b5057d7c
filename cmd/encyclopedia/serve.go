package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/encyclopedia/pkg/markdown"
	"github.com/aretw0/encyclopedia/pkg/web"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr     string
	serveSanitize bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the wiki over HTTP",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addr := cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		sanitize := cfg.Sanitize || serveSanitize

		service, err := openService()
		if err != nil {
			fatal("Failed to open encyclopedia", err)
		}

		logger := slog.Default()
		site, err := web.New(service, web.Options{
			Logger:   logger,
			Renderer: markdown.New(markdown.Options{Sanitize: sanitize}),
		})
		if err != nil {
			fatal("Failed to build web server", err)
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           site.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving encyclopedia", "addr", addr, "dir", cfg.Dir, "sanitize", sanitize)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				fatal("Server stopped", err)
			}
			return
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fatal("Server shutdown failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8000", "Listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serveSanitize, "sanitize", false, "Strip unsafe HTML from rendered entries")
}
