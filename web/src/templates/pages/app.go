package pages

import (
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AppProps describes one render of the app region.
type AppProps struct {
	// Active is the view on screen after the gate decision.
	Active nav.Page
	// Current is the page the user navigated to, highlighted in the navbar.
	// It differs from Active while the gate shows the login view instead.
	// Defaults to Active.
	Current       nav.Page
	Authenticated bool
	Success       []string
	Body          cmp.Node
}

// App is the region htmx swaps on every navigation: navbar plus the active
// view.
func App(p AppProps) cmp.Node {
	current := p.Current
	if current == "" {
		current = p.Active
	}
	return g.Div(
		g.ID("app"),
		cmp.Attr("data-page", p.Active.String()),
		partials.Navbar(current, p.Authenticated),
		g.Main(
			g.ID("main"),
			g.Class("main"),
			partials.Flashes(p.Success),
			p.Body,
		),
	)
}

// header is the centred title block most views open with.
func header(icon, title, intro string) cmp.Node {
	return g.Header(
		g.Class("page-header"),
		cmp.If(icon != "", g.Div(g.Class("page-icon"), partials.Icon(icon, "icon-lg"))),
		g.H1(cmp.Text(title)),
		cmp.If(intro != "", g.P(g.Class("lead"), cmp.Text(intro))),
	)
}

// note is a highlighted paragraph with a bold lead-in.
func note(label, text string) cmp.Node {
	return g.Div(
		g.Class("note"),
		g.P(g.Strong(cmp.Text(label+":")), cmp.Text(" "+text)),
	)
}
