package pages

import (
	"github.com/nfrund/bloomly/internal/content"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Diet renders the diet recommendations page.
func Diet(doc content.Diet) cmp.Node {
	return g.Div(
		g.Class("page page-diet"),
		header("apple", doc.Title, doc.Intro),
		g.Div(
			g.Class("grid grid-3"),
			cmp.Map(doc.Tips, func(c content.Card) cmp.Node {
				return g.Article(
					g.Class("card accent-"+c.Accent),
					g.Div(g.Class("card-icon"), partials.Icon(c.Icon, "icon")),
					g.H3(cmp.Text(c.Title)),
					g.P(cmp.Text(c.Text)),
				)
			}),
		),
		g.Section(
			g.Class("banner"),
			g.H2(cmp.Text(doc.Limit.Title)),
			g.Div(
				g.Class("grid grid-2"),
				cmp.Map(doc.Limit.Items, func(c content.Card) cmp.Node {
					return g.Div(g.Class("banner-item"), g.H3(cmp.Text(c.Title)), g.P(cmp.Text(c.Text)))
				}),
			),
		),
		cmp.If(doc.ProTip != "", note("Pro Tip", doc.ProTip)),
	)
}
