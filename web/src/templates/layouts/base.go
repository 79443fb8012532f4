package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// HTMXSrc is the pinned htmx build loaded by every page.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base is the full HTML document. The app region is swapped in place by
// htmx; everything outside it is rendered once per page load.
func Base(title string, app cmp.Node, footer cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
				g.Script(g.Src(HTMXSrc), g.Defer()),
				g.Script(g.Src("/static/app.js"), g.Defer()),
			),
			g.Body(
				g.Class("bloomly"),
				app,
				footer,
			),
		),
	)
}
