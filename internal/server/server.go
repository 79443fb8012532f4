package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/bloomly/internal/app"
	"github.com/nfrund/bloomly/internal/handlers"
	appmiddleware "github.com/nfrund/bloomly/internal/middleware"
	"github.com/nfrund/bloomly/internal/rendering"
	"github.com/nfrund/bloomly/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E    *echo.Echo
	Deps app.Dependencies

	appHandler    *handlers.AppHandler
	healthHandler *handlers.HealthHandler
}

// New creates a new Server instance wired to deps. Routes are registered
// separately with RegisterRoutes.
func New(deps app.Dependencies) *Server {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer
	if e.Renderer == nil {
		e.Renderer = rendering.NewComponentRenderer()
	}
	setupErrorHandling(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(requestLogger())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.GetSessionMaxAge(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(appmiddleware.Session(cfg.GetSessionMaxAge()))

	// Serve the embedded static assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:             e,
		Deps:          deps,
		appHandler:    handlers.NewAppHandler(deps.Backend, deps.Content, deps.Gate, deps.Bus, cfg.GetTrackingRecordID()),
		healthHandler: handlers.NewHealthHandler(deps.Backend.BaseURL()),
	}
}

// requestLogger writes one line per request through the request-scoped
// logger.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := appmiddleware.FromContext(c.Request().Context())
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.Round(time.Microsecond),
			}
			if v.Error != nil {
				logger.Warn("Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("Request", attrs...)
			return nil
		},
	})
}
