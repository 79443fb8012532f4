package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/bloomly/internal/session"
)

// SessionContextKey is the echo context key holding the request's
// *session.Store.
const SessionContextKey = "session"

// Session loads the session flag from the signed marker cookie and makes the
// store available to handlers. It never rejects a request: pages are gated
// by the navigation layer, not by route. It must run after the echo-contrib
// session middleware.
func Session(maxAge int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := session.Load(session.NewCookieMarker(c, maxAge))
			c.Set(SessionContextKey, store)
			return next(c)
		}
	}
}

// SessionStore returns the store attached by Session. Outside that
// middleware it returns an unauthenticated in-memory store so handlers never
// see nil.
func SessionStore(c echo.Context) *session.Store {
	if store, ok := c.Get(SessionContextKey).(*session.Store); ok {
		return store
	}
	return session.Load(session.NewMemoryMarker(false))
}
