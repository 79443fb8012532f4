package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bloomly/internal/pubsub"
)

type loggerKey struct{}

// Logger attaches a logger tagged with the request id to the request
// context, and the id itself for events published while handling it.
// Register it after RequestID.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Response().Header().Get(echo.HeaderXRequestID)
		req := c.Request()

		ctx := WithLogger(req.Context(), slog.Default().With("request_id", id, "path", req.URL.Path))
		ctx = pubsub.WithRequestID(ctx, id)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
