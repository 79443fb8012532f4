package domain

import "fmt"

// Credentials is the login form state.
type Credentials struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// Registration is the sign-up form state. ConfirmPassword never leaves the
// client.
type Registration struct {
	Name            string `form:"name" json:"name" validate:"required"`
	Email           string `form:"email" json:"email" validate:"required,email"`
	Password        string `form:"password" json:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" json:"-"`
	AcceptTerms     bool   `form:"terms" json:"-" validate:"required"`
}

// MsgPasswordMismatch is shown when the confirmation does not match.
const MsgPasswordMismatch = "Passwords don't match!"

// CheckPasswords is the client-side check run before any network call.
func (r Registration) CheckPasswords() error {
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Greeting is the success text shown after an account is created.
func (r Registration) Greeting() string {
	name := r.Name
	if name == "" {
		name = "beautiful soul"
	}
	return fmt.Sprintf("Welcome aboard, %s! Your account has been created successfully.", name)
}

// LoginResult is the part of the login response the frontend uses.
type LoginResult struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}

// Greeting is the success text shown after a login.
func (r LoginResult) Greeting() string {
	name := r.Name
	if name == "" {
		name = "Beautiful Soul"
	}
	return fmt.Sprintf("Welcome back, %s!", name)
}
