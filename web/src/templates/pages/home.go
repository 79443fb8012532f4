package pages

import (
	"github.com/nfrund/bloomly/internal/content"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home renders the landing page.
func Home(doc content.Home) cmp.Node {
	return g.Div(
		g.Class("page page-home"),
		g.Section(
			g.Class("hero"),
			g.Div(
				g.Class("hero-text"),
				g.Span(g.Class("badge"), partials.Icon("sparkles", "icon"), cmp.Text(doc.Badge)),
				g.H1(cmp.Text(doc.Title)),
				g.P(g.Class("lead"), cmp.Text(doc.Subtitle)),
				g.Div(
					g.Class("hero-actions"),
					actionButton(doc.PrimaryAction, "btn btn-primary"),
					actionButton(doc.SecondaryAction, "btn btn-outline"),
				),
			),
			g.Div(
				g.Class("hero-card"),
				partials.Icon("heart", "icon-lg"),
				g.P(g.Class("muted"), cmp.Text(doc.Journey.Title)),
				g.P(g.Class("accent"), cmp.Text(doc.Journey.Text)),
			),
		),
		g.Section(
			g.Class("features"),
			g.H2(cmp.Text(doc.Why.Title)),
			g.P(g.Class("lead"), cmp.Text(doc.Why.Text)),
			g.Div(
				g.Class("grid grid-3"),
				cmp.Map(doc.Features, func(c content.Card) cmp.Node {
					return g.Article(
						g.Class("card"),
						g.Div(g.Class("card-icon"), partials.Icon(c.Icon, "icon-lg")),
						g.H3(cmp.Text(c.Title)),
						g.P(cmp.Text(c.Text)),
					)
				}),
			),
		),
		g.Section(
			g.Class("cta"),
			g.H2(cmp.Text(doc.CTA.Title)),
			g.P(cmp.Text(doc.CTA.Text)),
			actionButton(doc.CTA.Action, "btn btn-light"),
		),
	)
}

func actionButton(a content.Action, class string) cmp.Node {
	page, _ := nav.Parse(a.Page)
	return partials.ActionButton(page, a.Label, class)
}
