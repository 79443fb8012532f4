package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/stretchr/testify/assert"
)

func TestLogger_InjectsRequestScope(t *testing.T) {
	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: func() string { return "req-42" }}))
	e.Use(Logger)

	var requestID string
	var logger *slog.Logger
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		requestID = pubsub.RequestID(ctx)
		logger = FromContext(ctx)
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "req-42", requestID)
	assert.NotSame(t, slog.Default(), logger)
}

func TestFromContext_Default(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
