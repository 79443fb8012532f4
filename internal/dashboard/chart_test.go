package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Line(t *testing.T) {
	f := Frame{Width: 120, Height: 120, Left: 10, Right: 10, Top: 10, Bottom: 10}
	plot := f.Line([]Point{{"Jan", 10}, {"Feb", 15}, {"Mar", 20}})

	require.Len(t, plot.Markers, 3)
	assert.Equal(t, Marker{X: 10, Y: 110, Label: "Jan", Value: 10}, plot.Markers[0])
	assert.Equal(t, Marker{X: 60, Y: 60, Label: "Feb", Value: 15}, plot.Markers[1])
	assert.Equal(t, Marker{X: 110, Y: 10, Label: "Mar", Value: 20}, plot.Markers[2])
	assert.Equal(t, "M10.0 110.0 L60.0 60.0 L110.0 10.0", plot.Path)
	assert.Len(t, plot.Ticks, tickCount+1)
	assert.Equal(t, "10", plot.Ticks[0].Label)
	assert.Equal(t, "20", plot.Ticks[tickCount].Label)
}

func TestFrame_LineFlatAndEmpty(t *testing.T) {
	f := DefaultFrame

	assert.Empty(t, f.Line(nil).Path)

	plot := f.Line([]Point{{"Jan", 5}, {"Feb", 5}})
	for _, m := range plot.Markers {
		assert.GreaterOrEqual(t, m.Y, f.Top)
		assert.LessOrEqual(t, m.Y, f.Height-f.Bottom)
	}
	assert.True(t, strings.HasPrefix(plot.Path, "M"))
}

func TestFrame_Bars(t *testing.T) {
	f := Frame{Width: 100, Height: 110, Left: 0, Right: 0, Top: 10, Bottom: 0}
	plot := f.Bars([]Bar{{Name: "AMH", Value: 50, Target: 100}})

	require.Len(t, plot.Groups, 1)
	g := plot.Groups[0]
	assert.Equal(t, "AMH", g.Label)
	assert.InDelta(t, 50, g.LabelX, 1e-9)
	assert.InDelta(t, 50, g.Measure.Height, 1e-9)
	assert.InDelta(t, 100, g.Target.Height, 1e-9)
	assert.InDelta(t, 10, g.Target.Y, 1e-9)
	assert.Less(t, g.Measure.X, g.Target.X)
}
