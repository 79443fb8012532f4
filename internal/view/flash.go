package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "bloomly-flash"
	flashKeySuccess  = "success"
	flashKeyContinue = "continue"
)

// FlashData is everything queued for the next full page render.
type FlashData struct {
	Success []string
	// Continue is the page the next shell render should open on instead of
	// the default. Empty when none was queued.
	Continue string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetContinuation makes the next shell render open on page once. A reload
// after that starts at the default page again.
func SetContinuation(c echo.Context, page string) {
	setFlash(c, flashKeyContinue, page)
}

// GetFlashData retrieves and clears all queued flashes.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return data
	}

	// Flashes() returns and removes the values for a key.
	success := sess.Flashes(flashKeySuccess)
	cont := sess.Flashes(flashKeyContinue)

	data.Success = toStrings(success)
	if pages := toStrings(cont); len(pages) > 0 {
		data.Continue = pages[len(pages)-1]
	}

	// Save the session to persist the clearing of flashes.
	if len(success) > 0 || len(cont) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
