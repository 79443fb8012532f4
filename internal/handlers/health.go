package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness. It never calls the backend.
type HealthHandler struct {
	backendURL string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(backendURL string) *HealthHandler {
	return &HealthHandler{backendURL: backendURL}
}

// HealthGet handles GET /health.
func (h *HealthHandler) HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Backend: h.backendURL})
}
