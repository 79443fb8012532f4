package backend

import "github.com/nfrund/bloomly/internal/domain"

// predictRequest is the wire shape of POST /predict: medical parameters stay
// strings, symptoms become 0/1.
type predictRequest struct {
	Age              string `json:"age"`
	BMI              string `json:"bmi"`
	AMH              string `json:"amh"`
	FSHLH            string `json:"fshLh"`
	IrregularPeriods int    `json:"irregularPeriods"`
	Acne             int    `json:"acne"`
	HairLoss         int    `json:"hairLoss"`
	WeightGain       int    `json:"weightGain"`
	Darkening        int    `json:"darkening"`
}

func newPredictRequest(a domain.Assessment) predictRequest {
	return predictRequest{
		Age:              a.Age,
		BMI:              a.BMI,
		AMH:              a.AMH,
		FSHLH:            a.FSHLH,
		IrregularPeriods: flag(a.IrregularPeriods),
		Acne:             flag(a.Acne),
		HairLoss:         flag(a.HairLoss),
		WeightGain:       flag(a.WeightGain),
		Darkening:        flag(a.Darkening),
	}
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// registerRequest omits the confirmation field.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorResponse is the optional body of a failed call.
type errorResponse struct {
	Message string `json:"message"`
}
