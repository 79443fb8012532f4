package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindTransport means the request never completed (connection refused,
	// timeout, cancelled context).
	KindTransport Kind = iota
	// KindStatus means the backend answered with a non-success status.
	KindStatus
	// KindDecode means the backend answered but the body was not the
	// expected JSON.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by every Client method on failure.
type Error struct {
	Op         string
	Kind       Kind
	StatusCode int
	// Message is the backend's own explanation, when it sent one.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("backend %s: status %d: %s", e.Op, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("backend %s: status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("backend %s: %s error: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsStatus reports whether err is a non-success answer from the backend.
func IsStatus(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindStatus
}

// IsTransport reports whether err means the backend could not be reached.
func IsTransport(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindTransport
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var be *Error
	if errors.As(err, &be) {
		return be.StatusCode
	}
	return 0
}

// UserMessage picks the text to show for a failed call: the backend's own
// message for status errors when present, the fallback otherwise.
func UserMessage(err error, fallback string) string {
	var be *Error
	if errors.As(err, &be) && be.Kind == KindStatus && be.Message != "" {
		return be.Message
	}
	return fallback
}
