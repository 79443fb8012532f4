package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/bloomly/internal/app"
	"github.com/nfrund/bloomly/internal/config"
	"github.com/nfrund/bloomly/internal/logging"
	"github.com/nfrund/bloomly/internal/server"
)

func main() {
	cfg := config.New()
	logging.New() // Initialize the structured logger

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	container := app.NewContainer(cfg)
	defer container.Shutdown()

	deps, err := container.Resolve()
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Create a new server instance and register all application routes.
	s := server.New(deps)
	s.RegisterRoutes()

	if err := s.Start(context.Background()); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
