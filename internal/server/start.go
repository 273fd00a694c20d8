package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/livereload"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server and its background workers until ctx is canceled,
// then shuts everything down gracefully.
func (s *Server) Start(ctx context.Context) error {
	workers, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	if err := s.startWorkers(workers); err != nil {
		return err
	}

	addr := ":" + s.Cfg.GetPort()
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr, "env", s.Cfg.GetAppEnv())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			cancelWorkers()
			s.shutdownServices()
			return fmt.Errorf("server stopped: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	cancelWorkers()
	err := s.E.Shutdown(shutdownCtx)
	s.shutdownServices()
	return err
}

// startWorkers runs the hub and, when enabled, the live reload subscriber and
// the content watcher.
func (s *Server) startWorkers(ctx context.Context) error {
	go s.hub.Run(ctx)

	if s.Cfg.GetLiveReload() {
		if err := livereload.Subscribe(ctx, s.bus, s.hub); err != nil {
			return fmt.Errorf("subscribe live reload: %w", err)
		}
	}

	dir := s.Cfg.GetContentDir()
	if s.Cfg.GetWatchContent() {
		if dir == "" {
			slog.Warn("WATCH_CONTENT is set but CONTENT_DIR is empty; nothing to watch")
			return nil
		}
		if err := content.NewWatcher(dir, s.store, s.bus).Start(ctx); err != nil {
			return fmt.Errorf("watch content: %w", err)
		}
	}
	return nil
}

func (s *Server) shutdownServices() {
	s.injector.Shutdown()
	slog.Info("Server stopped")
}
