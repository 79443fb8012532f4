package handlers

import (
	"github.com/nfrund/bloomly/internal/domain"
)

// CustomValidator implements Echo's Validator interface on top of the domain
// validator, so every failure wraps domain.ErrInvalidForm.
type CustomValidator struct{}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return domain.Validate(i)
}

// navigateRequest is the body of POST /navigate.
type navigateRequest struct {
	Page string `form:"page"`
}

// loginRequest adds the page that triggered the login detour.
type loginRequest struct {
	domain.Credentials
	Requested string `form:"requested"`
}
