package dashboard

import (
	"testing"

	"github.com/nfrund/bloomly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(n int) *int { return &n }

func TestStats(t *testing.T) {
	rec := domain.TrackingRecord{BMI: 24.5, Progress: 60, CycleDays: days(38)}

	stats := Stats(rec)
	require.Len(t, stats, 4)

	assert.Equal(t, "44.1 kg", stats[0].Value)
	assert.Equal(t, "24.5", stats[1].Value)
	assert.Equal(t, "60%", stats[2].Value)
	assert.Equal(t, "38 days", stats[3].Value)
	assert.Equal(t, "Irregular", stats[3].Change)
	assert.False(t, stats[3].Positive)
}

func TestStats_Fallbacks(t *testing.T) {
	stats := Stats(domain.TrackingRecord{BMI: 22})

	assert.Equal(t, "72%", stats[2].Value)
	assert.Equal(t, "32 days", stats[3].Value)
	assert.Equal(t, "Irregular", stats[3].Change, "an absent cycle length is never regular")
	assert.False(t, stats[3].Positive)

	stats = Stats(domain.TrackingRecord{CycleDays: days(0)})
	assert.Equal(t, "32 days", stats[3].Value)
	assert.Equal(t, "Regular", stats[3].Change)
}

func TestStats_CycleBoundary(t *testing.T) {
	assert.Equal(t, "Regular", Stats(domain.TrackingRecord{CycleDays: days(35)})[3].Change)
	assert.Equal(t, "Irregular", Stats(domain.TrackingRecord{CycleDays: days(36)})[3].Change)
}

func TestSeries_Fallback(t *testing.T) {
	rec := domain.TrackingRecord{BMI: 24}

	weight, synthesized := WeightSeries(rec)
	assert.True(t, synthesized)
	require.Len(t, weight, 6)
	assert.Equal(t, Point{Label: "Jan", Value: 66}, weight[0])
	assert.Equal(t, Point{Label: "Jun", Value: 61}, weight[5])

	bmi, synthesized := BMISeries(rec)
	assert.True(t, synthesized)
	var values []float64
	for _, p := range bmi {
		values = append(values, p.Value)
	}
	assert.InDeltaSlice(t, []float64{25, 24, 23.5, 23.3, 23.1, 23}, values, 1e-9)
}

func TestSeries_FromRecord(t *testing.T) {
	rec := domain.TrackingRecord{
		BMI:           24,
		WeightHistory: []domain.WeightPoint{{Month: "Mar", Weight: 70}},
		BMIHistory:    []domain.BMIPoint{},
	}

	weight, synthesized := WeightSeries(rec)
	assert.False(t, synthesized)
	assert.Equal(t, []Point{{Label: "Mar", Value: 70}}, weight)

	bmi, synthesized := BMISeries(rec)
	assert.False(t, synthesized)
	assert.Empty(t, bmi)
}

func TestHormones(t *testing.T) {
	bars := Hormones(domain.TrackingRecord{AMH: 4.1, FSHLH: 1.2})

	assert.Equal(t, []Bar{
		{Name: "AMH", Value: 4.1, Target: 3.5},
		{Name: "FSH/LH", Value: 1.2, Target: 7.0},
		{Name: "Testosterone", Value: 55, Target: 45},
	}, bars)

	bars = Hormones(domain.TrackingRecord{Testosterone: 40})
	assert.Equal(t, 40.0, bars[2].Value)
}

func TestBuild(t *testing.T) {
	d := Build(domain.TrackingRecord{BMI: 20})
	assert.Len(t, d.Stats, 4)
	assert.Len(t, d.Weight, 6)
	assert.Len(t, d.BMI, 6)
	assert.Len(t, d.Hormones, 3)
	assert.True(t, d.WeightSynthesized)
	assert.True(t, d.BMISynthesized)
}
