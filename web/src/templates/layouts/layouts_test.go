package layouts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Diet - Bloomly", CalculateTitle("Diet"))
	assert.Equal(t, "Bloomly - PCOS Detector", CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Base("Home", g.Div(g.ID("app")), cmp.Text("footer")).Render(&b))

	html := b.String()
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Home - Bloomly</title>")
	assert.Contains(t, html, HTMXSrc)
	assert.Contains(t, html, `<div id="app"></div>`)
}
