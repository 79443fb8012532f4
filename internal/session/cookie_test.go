package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// serve runs fn inside the session middleware and returns the recorder so
// the caller can carry cookies into the next request.
func serve(t *testing.T, req *http.Request, fn func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	store := sessions.NewCookieStore([]byte(testSessionSecret))

	handler := func(c echo.Context) error { fn(c); return nil }
	require.NoError(t, echosession.Middleware(store)(handler)(e.NewContext(req, rec)))
	return rec
}

func requestWithCookies(cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestCookieMarker_RoundTrip(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) {
		s := Load(NewCookieMarker(c, 3600))
		assert.False(t, s.IsAuthenticated())
		require.NoError(t, s.Login())
	})

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	rec = serve(t, requestWithCookies(cookies), func(c echo.Context) {
		s := Load(NewCookieMarker(c, 3600))
		assert.True(t, s.IsAuthenticated(), "marker survives into the next request")
		require.NoError(t, s.Logout())
	})

	expired := rec.Result().Cookies()
	require.NotEmpty(t, expired)
	assert.Less(t, expired[0].MaxAge, 0, "logout expires the cookie")
}

func TestCookieMarker_MalformedCookieIsUnauthenticated(t *testing.T) {
	req := requestWithCookies([]*http.Cookie{{Name: CookieName, Value: "tampered-value"}})

	rec := serve(t, req, func(c echo.Context) {
		s := Load(NewCookieMarker(c, 3600))
		assert.False(t, s.IsAuthenticated())
		require.NoError(t, s.Login(), "a fresh session replaces the broken cookie")
	})

	serve(t, requestWithCookies(rec.Result().Cookies()), func(c echo.Context) {
		assert.True(t, NewCookieMarker(c, 3600).Present())
	})
}

func TestTruthy(t *testing.T) {
	assert.True(t, truthy("true"))
	assert.True(t, truthy("false"), "any non-empty string is a marker")
	assert.True(t, truthy(true))
	assert.False(t, truthy(""))
	assert.False(t, truthy(false))
	assert.False(t, truthy(nil))
	assert.False(t, truthy(1))
}
