package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	htmxhttp "maragu.dev/gomponents-htmx/http"
)

const (
	rateLimitedMessage = "Too many requests. Please try again later."
	rateLimitedAlert   = `<div class="alert alert-error" role="alert"><span>` + rateLimitedMessage + `</span></div>`
)

// RateLimiter guards the credential endpoints. Each client IP may burst up to
// 10 submissions and then refills at one request every six seconds.
func RateLimiter() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      0.1,
			Burst:     10,
			ExpiresIn: 3 * time.Minute,
		}),

		// We identify clients by their real IP address.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			// htmx requests get an alert prepended to the main region instead
			// of replacing the app.
			if htmxhttp.IsRequest(c.Request().Header) {
				htmxhttp.SetRetarget(c.Response().Header(), "#main")
				htmxhttp.SetReswap(c.Response().Header(), "afterbegin")
				return c.HTML(http.StatusTooManyRequests, rateLimitedAlert)
			}
			return c.String(http.StatusTooManyRequests, rateLimitedMessage)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
