package partials

import (
	"time"

	"github.com/nfrund/bloomly/internal/content"
	"github.com/nfrund/bloomly/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Footer renders the site footer from the content document.
func Footer(f content.Footer, now time.Time) cmp.Node {
	return g.Footer(
		g.Class("footer"),
		g.Div(
			g.Class("footer-grid"),
			g.Div(
				g.Div(g.Class("footer-brand"), Icon("heart", "icon"), g.Span(cmp.Text(f.Brand))),
				g.P(cmp.Text(f.Tagline)),
			),
			g.Div(
				g.H3(cmp.Text("Quick Links")),
				g.Ul(cmp.Map(f.Links, func(l content.Link) cmp.Node {
					return g.Li(g.A(g.Href(view.SafeHref(l.URL)), cmp.Text(l.Label)))
				})),
			),
			g.Div(
				g.H3(cmp.Text("Connect With Us")),
				g.Ul(
					g.Class("footer-social"),
					cmp.Map(f.Social, func(l content.Link) cmp.Node {
						return g.Li(g.A(g.Href(view.SafeHref(l.URL)), g.Rel("noopener noreferrer"), cmp.Text(l.Label)))
					}),
				),
			),
		),
		g.P(g.Class("footer-notice"), cmp.Textf("© %d %s. %s", now.Year(), f.Brand, f.Notice)),
	)
}
