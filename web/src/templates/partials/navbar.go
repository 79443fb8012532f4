package partials

import (
	"fmt"

	"github.com/nfrund/bloomly/internal/nav"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// AppTarget is the element every navigation swaps.
const AppTarget = "#app"

// NavButton is a control that asks the router for page. Without JavaScript
// it degrades to a plain form post.
func NavButton(page nav.Page, label, class string, children ...cmp.Node) cmp.Node {
	return g.FormEl(
		g.Class("nav-form"),
		g.Method("post"),
		g.Action("/navigate"),
		hx.Post("/navigate"),
		hx.Target(AppTarget),
		hx.Swap("outerHTML"),
		g.Input(g.Type("hidden"), g.Name("page"), g.Value(page.String())),
		g.Button(
			g.Type("submit"),
			g.Class(class),
			cmp.Group(children),
			cmp.Text(label),
		),
	)
}

// Navbar renders the top bar with active highlighted.
func Navbar(active nav.Page, authenticated bool) cmp.Node {
	return g.Nav(
		g.Class("navbar"),
		g.Div(
			g.Class("navbar-inner"),
			NavButton(nav.Home, "Bloomly", "brand", Icon("heart", "icon brand-icon")),
			g.Div(
				g.Class("navbar-links"),
				cmp.Map(nav.MenuPages, func(p nav.Page) cmp.Node {
					return NavButton(p, p.Label(), linkClass(p == active))
				}),
			),
			g.Div(
				g.Class("navbar-auth"),
				cmp.If(authenticated, logoutButton()),
				cmp.If(!authenticated, cmp.Group{
					NavButton(nav.Login, "Login", linkClass(active == nav.Login)),
					NavButton(nav.Register, "Sign Up", "btn btn-primary"),
				}),
			),
		),
	)
}

func logoutButton() cmp.Node {
	return g.FormEl(
		g.Class("nav-form"),
		g.Method("post"),
		g.Action("/logout"),
		hx.Post("/logout"),
		hx.Target(AppTarget),
		hx.Swap("outerHTML"),
		g.Button(g.Type("submit"), g.Class("nav-link"), Icon("logout", "icon"), cmp.Text("Logout")),
	)
}

func linkClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

func navVals(page nav.Page) string {
	return fmt.Sprintf(`{"page":%q}`, page.String())
}

// ActionButton navigates to page from inside page content.
func ActionButton(page nav.Page, label, class string) cmp.Node {
	return g.Button(
		g.Type("button"),
		g.Class(class),
		hx.Post("/navigate"),
		hx.Vals(navVals(page)),
		hx.Target(AppTarget),
		hx.Swap("outerHTML"),
		cmp.Text(label),
	)
}
