package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bloomly/internal/content"
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/middleware"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/nfrund/bloomly/internal/view"
	"github.com/nfrund/bloomly/web/src/templates/layouts"
	"github.com/nfrund/bloomly/web/src/templates/pages"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	htmxhttp "maragu.dev/gomponents-htmx/http"
)

// Backend is the part of the screening backend the views call.
type Backend interface {
	Predict(ctx context.Context, a domain.Assessment) (*domain.Prediction, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
	Register(ctx context.Context, r domain.Registration) error
	Tracking(ctx context.Context, id string) (*domain.TrackingRecord, error)
}

// ScrollTrigger is the client event fired after every navigation.
const ScrollTrigger = "scroll-top"

// AppHandler serves the single-page app: the shell, navigation and the form
// views. Every request builds its own router on top of the request's
// session store.
type AppHandler struct {
	backend    Backend
	content    *content.Library
	gate       nav.Gate
	publisher  pubsub.Publisher
	trackingID string
	now        func() time.Time
}

// NewAppHandler creates a new AppHandler. publisher may be nil, in which
// case no domain events are emitted.
func NewAppHandler(b Backend, lib *content.Library, gate nav.Gate, publisher pubsub.Publisher, trackingID string) *AppHandler {
	return &AppHandler{
		backend:    b,
		content:    lib,
		gate:       gate,
		publisher:  publisher,
		trackingID: trackingID,
		now:        time.Now,
	}
}

// scrollSurface asks the browser to scroll the app region back to the top
// once htmx has swapped it in.
type scrollSurface struct {
	header http.Header
}

func (s scrollSurface) ScrollToOrigin() {
	htmxhttp.SetTrigger(s.header, ScrollTrigger)
}

func (h *AppHandler) router(c echo.Context) *nav.Router {
	return nav.NewRouter(h.gate, middleware.SessionStore(c), scrollSurface{header: c.Response().Header()})
}

// decide re-evaluates the gate for page without moving the viewport.
func (h *AppHandler) decide(c echo.Context, page nav.Page) nav.Decision {
	return h.gate.Decide(page, middleware.SessionStore(c).IsAuthenticated())
}

// render writes the app region for d. htmx requests get the fragment only;
// anything else gets the full document around it.
func (h *AppHandler) render(c echo.Context, d nav.Decision, body cmp.Node, flash view.FlashData) error {
	app := pages.App(pages.AppProps{
		Active:        d.View,
		Current:       d.Requested,
		Authenticated: middleware.SessionStore(c).IsAuthenticated(),
		Success:       flash.Success,
		Body:          body,
	})

	if htmxhttp.IsRequest(c.Request().Header) {
		return c.Render(http.StatusOK, "", app)
	}

	doc := h.content.Current()
	return c.Render(http.StatusOK, "", layouts.Base(title(d.View), app, partials.Footer(doc.Footer, h.now())))
}

// body builds the default state of the view the gate chose.
func (h *AppHandler) body(c echo.Context, d nav.Decision) cmp.Node {
	doc := h.content.Current()

	switch d.View {
	case nav.Login:
		return pages.Login(pages.LoginProps{Requested: d.Requested, Gated: d.Gated})
	case nav.Register:
		return pages.Register(pages.RegisterProps{})
	case nav.Detection:
		return pages.Detection(pages.DetectionProps{})
	case nav.Tracking:
		return h.tracking(c)
	case nav.Diet:
		return pages.Diet(doc.Diet)
	case nav.Wellness:
		return pages.Wellness(doc.Wellness)
	default:
		return pages.Home(doc.Home)
	}
}

// finish completes a successful submission by moving to page with a success
// message. Plain form posts are redirected to the shell so a reload does not
// submit again.
func (h *AppHandler) finish(c echo.Context, page nav.Page, message string) error {
	if !htmxhttp.IsRequest(c.Request().Header) {
		view.SetFlashSuccess(c, message)
		view.SetContinuation(c, page.String())
		return c.Redirect(http.StatusSeeOther, "/")
	}

	d := h.router(c).Navigate(page.String())
	return h.render(c, d, h.body(c, d), view.FlashData{Success: []string{message}})
}

func title(p nav.Page) string {
	if p == nav.Home {
		return ""
	}
	return p.Label()
}

// publish emits a domain event for the web surface. Failures are logged and
// never surface to the user.
func publish[T any](c echo.Context, p pubsub.Publisher, event pubsub.Event[T], payload T) {
	if p == nil {
		return
	}
	ctx := c.Request().Context()
	if err := pubsub.Publish(ctx, p, event, pubsub.SourceWeb, payload); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish event", "topic", event.Name(), "error", err)
	}
}
