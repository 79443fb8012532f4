package pages

import (
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// LoginProps is the login view state. Password is never echoed back.
type LoginProps struct {
	Email string
	// Requested is the protected page that sent the user here, if any.
	Requested nav.Page
	Gated     bool
	Error     string
	Invalid   map[string]string
}

// Login renders the sign-in view.
func Login(p LoginProps) cmp.Node {
	return g.Div(
		g.Class("page page-auth"),
		g.Div(
			g.Class("auth-card"),
			g.Div(
				g.Class("auth-header"),
				g.Div(g.Class("page-icon"), partials.Icon("heart", "icon-lg")),
				g.H2(cmp.Text("Welcome Back")),
				g.P(g.Class("muted"), cmp.Text("Sign in to continue your health journey")),
			),
			cmp.If(p.Gated, g.P(g.Class("gate-notice"), cmp.Textf("Please sign in to view %s.", p.Requested.Label()))),
			g.Div(g.ID("login-alert"), partials.ErrorAlert(p.Error)),
			g.FormEl(
				g.ID("login-form"),
				g.Method("post"),
				g.Action("/auth/login"),
				hx.Post("/auth/login"),
				hx.Target(partials.AppTarget),
				hx.Swap("outerHTML"),
				cmp.Attr("hx-disabled-elt", "find button[type=submit]"),
				cmp.If(p.Gated, g.Input(g.Type("hidden"), g.Name("requested"), g.Value(p.Requested.String()))),
				input(inputField{Label: "Email Address", Name: "email", Type: "email", Placeholder: "you@example.com", Value: p.Email, Invalid: fieldMessage(p.Invalid["email"])}),
				input(inputField{Label: "Password", Name: "password", Type: "password", Placeholder: "••••••••", Invalid: fieldMessage(p.Invalid["password"])}),
				submitButton("Login", "Logging in..."),
			),
			g.P(
				g.Class("auth-switch"),
				cmp.Text("Don't have an account? "),
				partials.ActionButton(nav.Register, "Sign up", "link"),
			),
		),
		g.Aside(
			g.Class("auth-aside"),
			g.H3(cmp.Text("Your Health Journey Starts Here")),
			g.P(cmp.Text("Take control of your health with personalized PCOS support and wellness guidance.")),
		),
	)
}
