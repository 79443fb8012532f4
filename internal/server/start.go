package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/bloomly/internal/content"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is cancelled or the process is
// signalled, then shuts it down gracefully. Background services (the audit
// subscriber and, when content is read from disk, the content watcher) live
// for the same span.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.Deps.Audit.Start(ctx, s.Deps.Bus); err != nil {
		return fmt.Errorf("start audit subscriber: %w", err)
	}

	if s.Deps.Config.GetContentDir() != "" {
		if err := s.Deps.Content.Watch(ctx); err != nil && !errors.Is(err, content.ErrNotWatchable) {
			return fmt.Errorf("watch content: %w", err)
		}
	}

	addr := s.Deps.Config.GetServerAddr()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", addr, "backend", s.Deps.Backend.BaseURL())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	go func() {
		waitForShutdown(ctx)
		cancel()
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	slog.Info("Shutting down server")
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
