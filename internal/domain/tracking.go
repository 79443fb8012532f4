package domain

// WeightPoint is one month of the weight history.
type WeightPoint struct {
	Month  string  `json:"month"`
	Weight float64 `json:"weight"`
}

// BMIPoint is one month of the BMI history.
type BMIPoint struct {
	Month string  `json:"month"`
	BMI   float64 `json:"bmi"`
}

// TrackingRecord is the health-metrics snapshot served by the tracking
// endpoint. The history arrays are optional; a nil slice means the backend
// did not send one, and a nil CycleDays means the field was absent.
type TrackingRecord struct {
	Age           float64       `json:"age"`
	BMI           float64       `json:"bmi"`
	AMH           float64       `json:"amh"`
	FSHLH         float64       `json:"fshLh"`
	Testosterone  float64       `json:"testosterone"`
	CycleDays     *int          `json:"cycle_days"`
	Progress      float64       `json:"progress"`
	Risk          string        `json:"pcos_risk"`
	Confidence    float64       `json:"confidence"`
	CreatedAt     string        `json:"created_at"`
	WeightHistory []WeightPoint `json:"weight_history,omitempty"`
	BMIHistory    []BMIPoint    `json:"bmi_history,omitempty"`
}
