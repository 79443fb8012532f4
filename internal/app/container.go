package app

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/bloomly/internal/backend"
	"github.com/nfrund/bloomly/internal/config"
	"github.com/nfrund/bloomly/internal/content"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/nfrund/bloomly/internal/rendering"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Container owns the service graph. Services are built lazily on first use.
type Container struct {
	injector do.Injector
}

// NewContainer registers every application service for cfg.
func NewContainer(cfg *config.Config) *Container {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, provideBackend)
	do.Provide(i, provideContent)
	do.Provide(i, provideBus)
	do.Provide(i, provideAudit)
	do.Provide(i, provideGate)
	do.Provide(i, provideRenderer)

	return &Container{injector: i}
}

// Resolve builds (or fetches) every core service.
func (c *Container) Resolve() (Dependencies, error) {
	var (
		deps Dependencies
		err  error
	)

	if deps.Config, err = do.Invoke[*config.Config](c.injector); err != nil {
		return deps, fmt.Errorf("resolve config: %w", err)
	}
	if deps.Backend, err = do.Invoke[*backend.Client](c.injector); err != nil {
		return deps, fmt.Errorf("resolve backend: %w", err)
	}
	if deps.Content, err = do.Invoke[*content.Library](c.injector); err != nil {
		return deps, fmt.Errorf("resolve content: %w", err)
	}
	if deps.Bus, err = do.Invoke[pubsub.Bus](c.injector); err != nil {
		return deps, fmt.Errorf("resolve bus: %w", err)
	}
	if deps.Audit, err = do.Invoke[*pubsub.Audit](c.injector); err != nil {
		return deps, fmt.Errorf("resolve audit: %w", err)
	}
	if deps.Gate, err = do.Invoke[nav.Gate](c.injector); err != nil {
		return deps, fmt.Errorf("resolve gate: %w", err)
	}
	if deps.Renderer, err = do.Invoke[rendering.Renderer](c.injector); err != nil {
		return deps, fmt.Errorf("resolve renderer: %w", err)
	}
	return deps, nil
}

// Shutdown closes the event bus and tears the container down.
func (c *Container) Shutdown() {
	if bus, err := do.Invoke[pubsub.Bus](c.injector); err == nil {
		if err := bus.Close(); err != nil {
			slog.Error("Failed to close event bus", "error", err)
		}
	}
	report := c.injector.Shutdown()
	slog.Debug("Container shut down", "report", report)
}

func provideBackend(i do.Injector) (*backend.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return backend.New(backend.Config{
		BaseURL: cfg.GetBackendURL(),
		Timeout: cfg.GetBackendTimeout(),
	})
}

// provideContent reads the content document from CONTENT_DIR when set, the
// embedded copy otherwise.
func provideContent(i do.Injector) (*content.Library, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if dir := cfg.GetContentDir(); dir != "" {
		return content.NewLibrary(afero.NewOsFs(), dir)
	}
	return content.NewLibrary(nil, "")
}

func provideBus(do.Injector) (pubsub.Bus, error) {
	return pubsub.NewChannelBus(slog.Default()), nil
}

func provideAudit(do.Injector) (*pubsub.Audit, error) {
	return pubsub.NewAudit(slog.Default()), nil
}

func provideGate(i do.Injector) (nav.Gate, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return nav.NewGate(nav.WithReturnToRequested(cfg.GetReturnToRequested())), nil
}

func provideRenderer(do.Injector) (rendering.Renderer, error) {
	return rendering.NewComponentRenderer(), nil
}
