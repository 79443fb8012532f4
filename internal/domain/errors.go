package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common form and contract failures.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidForm      = errors.New("form input is invalid")
	ErrNotFound         = errors.New("requested resource not found")
	ErrUnexpectedStatus = errors.New("unexpected success status")
)
