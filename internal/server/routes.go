package server

import (
	appmiddleware "github.com/nfrund/bloomly/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := appmiddleware.RateLimiter()
	h := s.appHandler

	s.E.GET("/", h.Shell)
	s.E.POST("/navigate", h.Navigate)

	s.E.POST("/auth/login", h.Login, rateLimiter)
	s.E.POST("/auth/register", h.Register, rateLimiter)
	s.E.POST("/logout", h.Logout)

	s.E.POST("/detection/predict", h.Predict)
	s.E.POST("/detection/reset", h.ResetDetection)

	s.E.GET("/health", s.healthHandler.HealthGet)
}
