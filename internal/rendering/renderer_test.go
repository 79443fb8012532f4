package rendering

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestHTML(t *testing.T) {
	r := NewComponentRenderer()

	out, err := r.HTML(context.Background(), g.P(cmp.Text("gomponents")))
	require.NoError(t, err)
	assert.Equal(t, "<p>gomponents</p>", string(out))

	out, err = r.HTML(context.Background(), templ.Raw("<b>templ</b>"))
	require.NoError(t, err)
	assert.Equal(t, "<b>templ</b>", string(out))

	_, err = r.HTML(context.Background(), 42)
	assert.ErrorContains(t, err, "unsupported component int")

	_, err = r.HTML(context.Background(), nil)
	assert.Error(t, err)
}

func TestRender_EchoRenderer(t *testing.T) {
	e := echo.New()
	e.Renderer = NewComponentRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.Render(http.StatusAccepted, "", g.Span(cmp.Text("x"))))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Equal(t, "<span>x</span>", rec.Body.String())
}

func TestRender_FailingComponentWritesNothing(t *testing.T) {
	e := echo.New()
	e.Renderer = NewComponentRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	broken := cmp.Group{g.P(cmp.Text("partial")), cmp.NodeFunc(func(io.Writer) error {
		return errors.New("boom")
	})}

	err := c.Render(http.StatusOK, "", broken)

	assert.EqualError(t, err, "boom")
	assert.Empty(t, rec.Body.String())
	assert.False(t, c.Response().Committed)
}
