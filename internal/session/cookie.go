package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// CookieName is the gorilla session that carries the marker.
	CookieName = "bloomly-session"
	markerKey  = "token"
	markerOn   = "true"
)

// CookieMarker stores the marker in a signed session cookie. It needs the
// echo-contrib session middleware in the chain.
type CookieMarker struct {
	c      echo.Context
	maxAge int
}

// NewCookieMarker binds a marker to the current request. maxAge is the cookie
// lifetime in seconds.
func NewCookieMarker(c echo.Context, maxAge int) *CookieMarker {
	return &CookieMarker{c: c, maxAge: maxAge}
}

// Present treats any non-empty value as a marker. A cookie that fails to
// decode is silently treated as absent.
func (m *CookieMarker) Present() bool {
	sess, err := echosession.Get(CookieName, m.c)
	if err != nil || sess == nil {
		return false
	}
	return truthy(sess.Values[markerKey])
}

func (m *CookieMarker) Set() error {
	sess, err := m.session()
	if err != nil {
		return err
	}
	sess.Options = m.options(m.maxAge)
	sess.Values[markerKey] = markerOn
	return sess.Save(m.c.Request(), m.c.Response())
}

func (m *CookieMarker) Clear() error {
	sess, err := m.session()
	if err != nil {
		return err
	}
	delete(sess.Values, markerKey)
	sess.Options = m.options(-1)
	return sess.Save(m.c.Request(), m.c.Response())
}

// session returns the marker session, replacing an undecodable cookie with a
// fresh one so writes still succeed.
func (m *CookieMarker) session() (*sessions.Session, error) {
	sess, err := echosession.Get(CookieName, m.c)
	if sess != nil {
		return sess, nil
	}
	if err == nil {
		err = errors.New("session store returned no session")
	}
	return nil, err
}

func (m *CookieMarker) options(maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}

func truthy(v any) bool {
	switch val := v.(type) {
	case string:
		return val != ""
	case bool:
		return val
	default:
		return false
	}
}
