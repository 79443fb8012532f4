package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bloomly/internal/backend"
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/form"
	"github.com/nfrund/bloomly/internal/middleware"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/nfrund/bloomly/internal/view"
	"github.com/nfrund/bloomly/web/src/templates/pages"
)

// MsgLoggedOut is flashed after a logout.
const MsgLoggedOut = "You have been logged out."

// Login handles POST /auth/login.
func (h *AppHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login request")
	}

	origin := h.loginOrigin(req.Requested)
	shown := nav.Decision{Requested: origin.Requested, View: nav.Login, Gated: origin.Gated}
	props := pages.LoginProps{Email: req.Email, Requested: origin.Requested, Gated: origin.Gated}

	if err := c.Validate(&req.Credentials); err != nil {
		props.Invalid = domain.FieldErrors(err)
		return h.render(c, shown, pages.Login(props), view.FlashData{})
	}

	var (
		sub    form.Submission
		result *domain.LoginResult
	)
	err := sub.Run(ctx, func(ctx context.Context) error {
		var err error
		result, err = h.backend.Login(ctx, req.Credentials)
		return err
	})
	if err != nil {
		logger.Warn("Login failed", "error", err, "status", backend.StatusCode(err))
		props.Error = backend.LoginMessage(err)
		return h.render(c, shown, pages.Login(props), view.FlashData{})
	}

	if err := middleware.SessionStore(c).Login(); err != nil {
		logger.Error("Failed to set session marker", "error", err)
		props.Error = backend.MsgLoginUnavailable
		return h.render(c, shown, pages.Login(props), view.FlashData{})
	}

	logger.Info("User logged in")
	publish(c, h.publisher, pubsub.SessionLogin, pubsub.SessionPayload{Authenticated: true})
	return h.finish(c, h.gate.AfterLogin(origin), result.Greeting())
}

// loginOrigin rebuilds the gate decision that led to the login view from the
// form's hidden field. A login opened directly has no protected origin.
func (h *AppHandler) loginOrigin(requested string) nav.Decision {
	page, ok := nav.Parse(requested)
	if !ok || requested == "" {
		return nav.Decision{Requested: nav.Login, View: nav.Login}
	}
	return h.gate.Decide(page, false)
}

// Register handles POST /auth/register.
func (h *AppHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var reg domain.Registration
	if err := c.Bind(&reg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid registration request")
	}

	shown := nav.Decision{Requested: nav.Register, View: nav.Register}
	props := pages.RegisterProps{Name: reg.Name, Email: reg.Email, AcceptTerms: reg.AcceptTerms}

	// Checked before anything else; a mismatch never reaches the backend.
	if err := reg.CheckPasswords(); err != nil {
		props.Error = domain.MsgPasswordMismatch
		return h.render(c, shown, pages.Register(props), view.FlashData{})
	}

	if err := c.Validate(&reg); err != nil {
		props.Invalid = domain.FieldErrors(err)
		return h.render(c, shown, pages.Register(props), view.FlashData{})
	}

	var sub form.Submission
	err := sub.Run(ctx, func(ctx context.Context) error {
		return h.backend.Register(ctx, reg)
	})
	if err != nil {
		logger.Warn("Registration failed", "error", err, "status", backend.StatusCode(err))
		props.Error = backend.RegisterMessage(err)
		return h.render(c, shown, pages.Register(props), view.FlashData{})
	}

	logger.Info("Account registered")
	publish(c, h.publisher, pubsub.AccountRegistered, pubsub.AccountPayload{Name: reg.Name})
	return h.finish(c, nav.Login, reg.Greeting())
}

// Logout handles POST /logout: clear the marker and go home.
func (h *AppHandler) Logout(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	if err := middleware.SessionStore(c).Logout(); err != nil {
		logger.Error("Failed to clear session marker", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not end the session")
	}

	logger.Info("User logged out")
	publish(c, h.publisher, pubsub.SessionLogout, pubsub.SessionPayload{Authenticated: false})
	return h.finish(c, nav.Home, MsgLoggedOut)
}
