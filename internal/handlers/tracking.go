package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bloomly/internal/dashboard"
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/middleware"
	"github.com/nfrund/bloomly/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
)

// tracking fetches the configured record. Any failure renders the empty
// state.
func (h *AppHandler) tracking(c echo.Context) cmp.Node {
	ctx := c.Request().Context()

	rec, err := h.backend.Tracking(ctx, h.trackingID)
	if err != nil {
		logger := middleware.FromContext(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Info("No tracking record", "id", h.trackingID)
		} else {
			logger.Warn("Tracking fetch failed", "id", h.trackingID, "error", err)
		}
		return pages.Tracking(pages.TrackingProps{})
	}

	board := dashboard.Build(*rec)
	return pages.Tracking(pages.TrackingProps{Dashboard: &board})
}
