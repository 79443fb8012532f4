package pages

import (
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/form"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// DetectionProps is the risk-assessment view state.
type DetectionProps struct {
	Form    domain.Assessment
	Phase   form.Phase
	Result  *domain.Prediction
	Error   string
	Invalid map[string]string
}

var parameterFields = []inputField{
	{Label: "Age (years)", Name: "age", Placeholder: "25"},
	{Label: "BMI (kg/m²)", Name: "bmi", Placeholder: "22.5"},
	{Label: "AMH (ng/mL)", Name: "amh", Placeholder: "3.5"},
	{Label: "FSH/LH Ratio", Name: "fshLh", Placeholder: "1.5"},
}

// Detection renders the assessment form, plus the result card once a
// prediction succeeded.
func Detection(p DetectionProps) cmp.Node {
	return g.Div(
		g.Class("page page-detection"),
		header("activity", "PCOS Detection", "Fill in your health information and symptoms to get an instant PCOS risk assessment."),
		g.Div(
			g.Class("panel"),
			g.Div(g.ID("detection-alert"), cmp.If(p.Phase == form.Failed, partials.ErrorAlert(p.Error))),
			g.FormEl(
				g.ID("detection-form"),
				g.Method("post"),
				g.Action("/detection/predict"),
				hx.Post("/detection/predict"),
				hx.Target(partials.AppTarget),
				hx.Swap("outerHTML"),
				cmp.Attr("hx-disabled-elt", "find button[type=submit]"),
				cmp.El("fieldset",
					cmp.El("legend", cmp.Text("Medical Parameters")),
					g.Div(
						g.Class("grid grid-2"),
						cmp.Map(parameterFields, func(f inputField) cmp.Node {
							f.Type = "number"
							f.Value = p.Form.Value(f.Name)
							f.Invalid = fieldMessage(p.Invalid[f.Name])
							f.Extra = []cmp.Node{cmp.Attr("step", "any")}
							return input(f)
						}),
					),
				),
				cmp.El("fieldset",
					cmp.El("legend", cmp.Text("Symptoms")),
					cmp.Map(domain.Symptoms, func(s domain.Symptom) cmp.Node {
						return checkbox(s.Name, s.Label, p.Form.Checked(s.Name))
					}),
				),
				submitButton("Predict PCOS", "Analyzing..."),
			),
			cmp.Iff(p.Phase == form.Succeeded && p.Result != nil, func() cmp.Node {
				return resultCard(p.Result)
			}),
		),
		note("Disclaimer", "This tool provides an estimate based on the information provided and should not be used as a substitute for professional medical advice. Always consult with a qualified healthcare provider for accurate diagnosis and treatment."),
	)
}

func resultCard(r *domain.Prediction) cmp.Node {
	class, icon := "result result-low", "check"
	if r.IsHighRisk() {
		class, icon = "result result-high", "alert"
	}
	return g.Div(
		g.ID("detection-result"),
		g.Class(class),
		g.Role("status"),
		g.Div(g.Class("result-icon"), partials.Icon(icon, "icon-lg")),
		g.Div(
			g.H3(cmp.Text(r.Headline())),
			g.P(cmp.Text(r.Message())),
			g.Button(
				g.Type("button"),
				g.Class("btn btn-outline"),
				hx.Post("/detection/reset"),
				hx.Target(partials.AppTarget),
				hx.Swap("outerHTML"),
				cmp.Text("New Test"),
			),
		),
	)
}
