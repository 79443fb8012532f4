package domain

import "fmt"

// HighRisk is the exact pcos_risk value the prediction service uses for a
// positive screening. Any other value is treated as low risk.
const HighRisk = "High"

// Assessment is the risk-assessment form state. Medical parameters are kept
// as the strings the user typed; symptoms are checkboxes.
type Assessment struct {
	Age              string `form:"age" json:"age" validate:"required,numeric"`
	BMI              string `form:"bmi" json:"bmi" validate:"required,numeric"`
	AMH              string `form:"amh" json:"amh" validate:"required,numeric"`
	FSHLH            string `form:"fshLh" json:"fshLh" validate:"required,numeric"`
	IrregularPeriods bool   `form:"irregularPeriods" json:"-"`
	Acne             bool   `form:"acne" json:"-"`
	HairLoss         bool   `form:"hairLoss" json:"-"`
	WeightGain       bool   `form:"weightGain" json:"-"`
	Darkening        bool   `form:"darkening" json:"-"`
}

// Symptom describes one checkbox of the assessment form.
type Symptom struct {
	Name  string
	Label string
}

// Symptoms lists the assessment checkboxes in display order.
var Symptoms = []Symptom{
	{Name: "irregularPeriods", Label: "Irregular or missed periods"},
	{Name: "acne", Label: "Acne or oily skin"},
	{Name: "hairLoss", Label: "Hair thinning or hair loss"},
	{Name: "weightGain", Label: "Unexplained weight gain"},
	{Name: "darkening", Label: "Darkening of skin (neck, groin areas)"},
}

// Checked reports whether the named symptom is ticked.
func (a Assessment) Checked(name string) bool {
	switch name {
	case "irregularPeriods":
		return a.IrregularPeriods
	case "acne":
		return a.Acne
	case "hairLoss":
		return a.HairLoss
	case "weightGain":
		return a.WeightGain
	case "darkening":
		return a.Darkening
	}
	return false
}

// Value returns the raw text of a medical parameter field.
func (a Assessment) Value(name string) string {
	switch name {
	case "age":
		return a.Age
	case "bmi":
		return a.BMI
	case "amh":
		return a.AMH
	case "fshLh":
		return a.FSHLH
	}
	return ""
}

// Prediction is the prediction service's answer.
type Prediction struct {
	Confidence float64 `json:"confidence"`
	Risk       string  `json:"pcos_risk"`
}

// IsHighRisk compares the risk label exactly; "high" or "HIGH" are low risk.
func (p Prediction) IsHighRisk() bool {
	return p.Risk == HighRisk
}

// Headline is the short title of the result card.
func (p Prediction) Headline() string {
	if p.IsHighRisk() {
		return "High PCOS Risk"
	}
	return "Low PCOS Risk"
}

// Message is the result text with the confidence rendered to two decimals.
func (p Prediction) Message() string {
	if p.IsHighRisk() {
		return fmt.Sprintf("Based on your inputs, there is a %.2f%% confidence you may have PCOS. Please consult a healthcare professional.", p.Confidence)
	}
	return fmt.Sprintf("Your PCOS risk appears low (%.2f%% confidence). Continue maintaining a healthy lifestyle.", p.Confidence)
}
