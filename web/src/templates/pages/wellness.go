package pages

import (
	"github.com/nfrund/bloomly/internal/content"
	"github.com/nfrund/bloomly/internal/view"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Wellness renders the emotional wellness page.
func Wellness(doc content.Wellness) cmp.Node {
	return g.Div(
		g.Class("page page-wellness"),
		header("heart", doc.Title, doc.Intro),
		g.Section(
			g.Class("hero-banner"),
			g.H2(cmp.Text(doc.Hero.Title)),
			g.P(cmp.Text(doc.Hero.Text)),
		),
		g.Div(
			g.Class("grid grid-3"),
			cmp.Map(doc.Tips, func(c content.Card) cmp.Node {
				return g.Article(
					g.Class("card"),
					g.Div(g.Class("card-icon"), partials.Icon(c.Icon, "icon-lg")),
					g.H3(cmp.Text(c.Title)),
					g.P(cmp.Text(c.Text)),
					cmp.If(c.Quote != "", g.BlockQuote(cmp.Textf("“%s”", c.Quote))),
				)
			}),
		),
		g.Section(
			g.Class("banner breathing"),
			g.H2(cmp.Text(doc.Breathing.Title)),
			g.P(cmp.Text(doc.Breathing.Intro)),
			g.Div(
				g.Class("grid grid-3"),
				cmp.Map(doc.Breathing.Steps, func(s content.BreathingStep) cmp.Node {
					return g.Div(
						g.Class("banner-item"),
						g.Div(g.Class("step-label"), cmp.Text(s.Label)),
						g.Div(cmp.Textf("%d seconds", s.Seconds)),
					)
				}),
			),
			g.P(cmp.Text(doc.Breathing.Outro)),
		),
		g.Section(
			g.Class("support"),
			g.Div(g.Class("card-icon"), partials.Icon("heart", "icon-lg")),
			g.Div(
				g.H3(cmp.Text(doc.Support.Title)),
				g.P(cmp.Text(doc.Support.Text)),
				g.A(
					g.Class("btn btn-primary"),
					g.Href(view.SafeHref(doc.Support.Link.URL)),
					g.Rel("noopener noreferrer"),
					cmp.Text(doc.Support.Link.Label),
				),
			),
		),
	)
}
