// Package dashboard turns a tracking record into the figures shown on the
// tracking page: stat cards, history series with fallbacks and hormone bars.
package dashboard

import (
	"fmt"
	"strconv"

	"github.com/nfrund/bloomly/internal/domain"
)

// Fallbacks used when the record leaves a field at zero.
const (
	DefaultProgress     = 72
	DefaultCycleDays    = 32
	DefaultTestosterone = 55
	// RegularCycleMax is the longest cycle still reported as regular.
	RegularCycleMax = 35
	// weightPerBMI converts BMI into the displayed weight estimate.
	weightPerBMI = 1.8
)

// Hormone targets drawn next to the measured values.
const (
	TargetAMH          = 3.5
	TargetFSHLH        = 7.0
	TargetTestosterone = 45
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// Stat is one card of the stats grid.
type Stat struct {
	Icon     string
	Label    string
	Value    string
	Change   string
	Positive bool
}

// Point is one labelled value of a series.
type Point struct {
	Label string
	Value float64
}

// Bar pairs a measured hormone level with its target.
type Bar struct {
	Name   string
	Value  float64
	Target float64
}

// Dashboard is everything the tracking page renders.
type Dashboard struct {
	Stats    []Stat
	Weight   []Point
	BMI      []Point
	Hormones []Bar
	// Synthesized marks series that were filled in because the record had
	// no history.
	WeightSynthesized bool
	BMISynthesized    bool
}

// Build derives the dashboard from rec.
func Build(rec domain.TrackingRecord) Dashboard {
	d := Dashboard{
		Stats:    Stats(rec),
		Hormones: Hormones(rec),
	}
	d.Weight, d.WeightSynthesized = WeightSeries(rec)
	d.BMI, d.BMISynthesized = BMISeries(rec)
	return d
}

// Stats returns the four stat cards.
func Stats(rec domain.TrackingRecord) []Stat {
	progress := rec.Progress
	if progress == 0 {
		progress = DefaultProgress
	}
	cycle := DefaultCycleDays
	if rec.CycleDays != nil && *rec.CycleDays != 0 {
		cycle = *rec.CycleDays
	}
	// Regularity is judged on the raw value: an absent cycle length is
	// irregular even though the card shows the default.
	regular := rec.CycleDays != nil && *rec.CycleDays <= RegularCycleMax
	change := "Irregular"
	if regular {
		change = "Regular"
	}

	return []Stat{
		{Icon: "weight", Label: "Current Weight", Value: fmt.Sprintf("%.1f kg", rec.BMI*weightPerBMI), Change: "-2.5 kg", Positive: true},
		{Icon: "activity", Label: "BMI", Value: fmt.Sprintf("%.1f", rec.BMI), Change: "-1.1", Positive: true},
		{Icon: "trending-up", Label: "Progress", Value: formatNumber(progress) + "%", Change: "+8%", Positive: true},
		{Icon: "calendar", Label: "Cycle Days", Value: fmt.Sprintf("%d days", cycle), Change: change, Positive: regular},
	}
}

// WeightSeries returns the record's weight history, or a six-month series
// descending from bmi+42 to bmi+37 when the record has none.
func WeightSeries(rec domain.TrackingRecord) ([]Point, bool) {
	if rec.WeightHistory != nil {
		points := make([]Point, len(rec.WeightHistory))
		for i, w := range rec.WeightHistory {
			points[i] = Point{Label: w.Month, Value: w.Weight}
		}
		return points, false
	}

	points := make([]Point, len(months))
	for i, m := range months {
		points[i] = Point{Label: m, Value: rec.BMI + float64(42-i)}
	}
	return points, true
}

var bmiOffsets = []float64{1, 0, -0.5, -0.7, -0.9, -1}

// BMISeries returns the record's BMI history or a synthesized six-month
// series around the current BMI.
func BMISeries(rec domain.TrackingRecord) ([]Point, bool) {
	if rec.BMIHistory != nil {
		points := make([]Point, len(rec.BMIHistory))
		for i, b := range rec.BMIHistory {
			points[i] = Point{Label: b.Month, Value: b.BMI}
		}
		return points, false
	}

	points := make([]Point, len(months))
	for i, m := range months {
		points[i] = Point{Label: m, Value: rec.BMI + bmiOffsets[i]}
	}
	return points, true
}

// Hormones returns the hormone bars in display order.
func Hormones(rec domain.TrackingRecord) []Bar {
	testosterone := rec.Testosterone
	if testosterone == 0 {
		testosterone = DefaultTestosterone
	}
	return []Bar{
		{Name: "AMH", Value: rec.AMH, Target: TargetAMH},
		{Name: "FSH/LH", Value: rec.FSHLH, Target: TargetFSHLH},
		{Name: "Testosterone", Value: testosterone, Target: TargetTestosterone},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
