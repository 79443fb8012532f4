// Package rendering turns view components into HTML for echo responses.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// Renderer is the echo renderer used by the web frontend. Views pass the
// component as the data argument of c.Render; the template name is unused.
type Renderer interface {
	echo.Renderer

	// HTML renders a single component, e.g. for tests or error pages.
	HTML(ctx context.Context, component any) ([]byte, error)
}

// ComponentRenderer renders gomponents nodes and templ components.
type ComponentRenderer struct{}

var _ Renderer = (*ComponentRenderer)(nil)

func NewComponentRenderer() *ComponentRenderer {
	return &ComponentRenderer{}
}

func write(ctx context.Context, w io.Writer, component any) error {
	switch v := component.(type) {
	case cmp.Node:
		return v.Render(w)
	case templ.Component:
		return v.Render(ctx, w)
	case nil:
		return fmt.Errorf("rendering: nil component")
	default:
		return fmt.Errorf("rendering: unsupported component %T", component)
	}
}

func (r *ComponentRenderer) HTML(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(ctx, &buf, component); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render buffers the whole component before writing, so a view that fails
// halfway leaves the response untouched for the error handler.
func (r *ComponentRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	body, err := r.HTML(c.Request().Context(), data)
	if err != nil {
		return err
	}
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	_, err = w.Write(body)
	return err
}
