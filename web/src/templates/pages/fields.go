package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

type inputField struct {
	Label       string
	Name        string
	Type        string
	Placeholder string
	Value       string
	Invalid     string
	Extra       []cmp.Node
}

func input(s inputField) cmp.Node {
	id := "field-" + s.Name
	return g.Div(
		g.Class("field"),
		g.Label(g.For(id), cmp.Text(s.Label)),
		g.Input(
			g.ID(id),
			g.Type(s.Type),
			g.Name(s.Name),
			g.Placeholder(s.Placeholder),
			cmp.If(s.Value != "", g.Value(s.Value)),
			g.Required(),
			cmp.If(s.Invalid != "", cmp.Attr("aria-invalid", "true")),
			cmp.Group(s.Extra),
		),
		cmp.If(s.Invalid != "", cmp.El("small", g.Class("field-error"), cmp.Text(s.Invalid))),
	)
}

func checkbox(name, label string, checked bool, extra ...cmp.Node) cmp.Node {
	return g.Label(
		g.Class("checkbox"),
		g.Input(g.Type("checkbox"), g.Name(name), g.Value("true"), cmp.If(checked, g.Checked()), cmp.Group(extra)),
		g.Span(cmp.Text(label)),
	)
}

// submitButton shows loadingLabel while htmx has the request in flight and
// is disabled through hx-disabled-elt on the form.
func submitButton(label, loadingLabel string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("btn btn-primary btn-block"),
		g.Span(g.Class("idle-label"), cmp.Text(label)),
		g.Span(g.Class("loading-label"), cmp.Text(loadingLabel)),
	)
}

// fieldMessage turns a validator tag into user text.
func fieldMessage(tag string) string {
	switch tag {
	case "":
		return ""
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "numeric":
		return "Enter a number."
	default:
		return "This value is not valid."
	}
}
