package pages

import (
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// RegisterProps is the sign-up view state.
type RegisterProps struct {
	Name        string
	Email       string
	AcceptTerms bool
	Error       string
	Invalid     map[string]string
}

const termsLabel = "I agree to the Terms of Service and Privacy Policy"

// Register renders the sign-up view.
func Register(p RegisterProps) cmp.Node {
	return g.Div(
		g.Class("page page-auth"),
		g.Aside(
			g.Class("auth-aside"),
			g.H3(cmp.Text("Begin Your Wellness Journey")),
			g.P(cmp.Text("Join a community of empowered women taking charge of their health.")),
		),
		g.Div(
			g.Class("auth-card"),
			g.Div(
				g.Class("auth-header"),
				g.H2(cmp.Text("Create Account")),
				g.P(g.Class("muted"), cmp.Text("Start your journey to better health today")),
			),
			g.Div(g.ID("register-alert"), partials.ErrorAlert(p.Error)),
			g.FormEl(
				g.ID("register-form"),
				g.Method("post"),
				g.Action("/auth/register"),
				hx.Post("/auth/register"),
				hx.Target(partials.AppTarget),
				hx.Swap("outerHTML"),
				cmp.Attr("hx-disabled-elt", "find button[type=submit]"),
				input(inputField{Label: "Full Name", Name: "name", Type: "text", Placeholder: "Jane Doe", Value: p.Name, Invalid: fieldMessage(p.Invalid["name"])}),
				input(inputField{Label: "Email Address", Name: "email", Type: "email", Placeholder: "you@example.com", Value: p.Email, Invalid: fieldMessage(p.Invalid["email"])}),
				input(inputField{Label: "Password", Name: "password", Type: "password", Placeholder: "••••••••", Invalid: fieldMessage(p.Invalid["password"])}),
				input(inputField{Label: "Confirm Password", Name: "confirmPassword", Type: "password", Placeholder: "••••••••"}),
				g.Div(
					g.Class("field"),
					checkbox("terms", termsLabel, p.AcceptTerms, g.Required()),
					cmp.If(p.Invalid["terms"] != "", cmp.El("small", g.Class("field-error"), cmp.Text("Please accept the terms to continue."))),
				),
				submitButton("Create Account", "Creating account..."),
			),
			g.P(
				g.Class("auth-switch"),
				cmp.Text("Already have an account? "),
				partials.ActionButton(nav.Login, "Login", "link"),
			),
		),
	)
}
