package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ErrorAlert is the failure banner of a form view.
func ErrorAlert(message string) cmp.Node {
	if message == "" {
		return nil
	}
	return g.Div(
		g.Class("alert alert-error"),
		g.Role("alert"),
		Icon("alert", "icon"),
		g.Span(cmp.Text(message)),
	)
}

// SuccessAlert is the confirmation banner shown after a successful action.
func SuccessAlert(message string) cmp.Node {
	if message == "" {
		return nil
	}
	return g.Div(
		g.Class("alert alert-success"),
		g.Role("status"),
		Icon("check", "icon"),
		g.Span(cmp.Text(message)),
	)
}

// Flashes renders queued success messages.
func Flashes(success []string) cmp.Node {
	if len(success) == 0 {
		return nil
	}
	return g.Div(
		g.ID("flashes"),
		cmp.Map(success, SuccessAlert),
	)
}
