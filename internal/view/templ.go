package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
)

// Templ embeds a templ component in a gomponents tree. gomponents does not
// carry a context, so the component renders with context.Background.
func Templ(component templ.Component) cmp.Node {
	return cmp.NodeFunc(func(w io.Writer) error {
		return component.Render(context.Background(), w)
	})
}

// SafeHref sanitizes a URL taken from editable content. Schemes other than
// http, https, mailto and tel are replaced by an inert placeholder.
func SafeHref(url string) string {
	return string(templ.URL(url))
}
