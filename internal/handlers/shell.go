package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bloomly/internal/middleware"
	"github.com/nfrund/bloomly/internal/view"
)

// Shell handles GET /. A fresh router always starts at the default page,
// unless a form post queued a one-shot continuation.
func (h *AppHandler) Shell(c echo.Context) error {
	flash := view.GetFlashData(c)

	router := h.router(c)
	d := router.Active()
	if flash.Continue != "" {
		d = router.Navigate(flash.Continue)
	}

	return h.render(c, d, h.body(c, d), flash)
}

// Navigate handles POST /navigate.
func (h *AppHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid navigation request")
	}

	d := h.router(c).Navigate(req.Page)
	if d.Gated {
		middleware.FromContext(c.Request().Context()).Debug("Navigation gated",
			"requested", d.Requested, "view", d.View)
	}

	return h.render(c, d, h.body(c, d), view.FlashData{})
}
