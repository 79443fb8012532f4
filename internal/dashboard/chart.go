package dashboard

import (
	"fmt"
	"math"
	"strings"
)

// Frame is the drawing area of an SVG chart in user units.
type Frame struct {
	Width, Height float64
	Left, Right   float64
	Top, Bottom   float64
}

// DefaultFrame matches the 300px-high chart cards.
var DefaultFrame = Frame{Width: 480, Height: 300, Left: 44, Right: 16, Top: 16, Bottom: 32}

func (f Frame) plotWidth() float64  { return f.Width - f.Left - f.Right }
func (f Frame) plotHeight() float64 { return f.Height - f.Top - f.Bottom }

// Tick is a horizontal grid line with its axis label.
type Tick struct {
	Y     float64
	Label string
}

// Marker is a plotted point with its x-axis label.
type Marker struct {
	X, Y  float64
	Label string
	Value float64
}

// LinePlot is the geometry of a line chart.
type LinePlot struct {
	Frame   Frame
	Path    string
	Markers []Marker
	Ticks   []Tick
}

// Rect is one bar.
type Rect struct {
	X, Y, Width, Height float64
	Value               float64
}

// BarGroup is the measured and target bar for one hormone.
type BarGroup struct {
	Label   string
	LabelX  float64
	Measure Rect
	Target  Rect
}

// BarPlot is the geometry of the grouped bar chart.
type BarPlot struct {
	Frame  Frame
	Groups []BarGroup
	Ticks  []Tick
}

const tickCount = 4

// Line lays out points inside f. The y axis spans the rounded data range.
func (f Frame) Line(points []Point) LinePlot {
	plot := LinePlot{Frame: f}
	if len(points) == 0 {
		return plot
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	lo, hi = niceRange(lo, hi)
	plot.Ticks = f.ticks(lo, hi)

	step := 0.0
	if len(points) > 1 {
		step = f.plotWidth() / float64(len(points)-1)
	}

	var path strings.Builder
	for i, p := range points {
		x := f.Left + step*float64(i)
		if len(points) == 1 {
			x = f.Left + f.plotWidth()/2
		}
		y := f.scaleY(p.Value, lo, hi)
		plot.Markers = append(plot.Markers, Marker{X: x, Y: y, Label: p.Label, Value: p.Value})

		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&path, "%s%.1f %.1f ", cmd, x, y)
	}
	plot.Path = strings.TrimSpace(path.String())
	return plot
}

// Bars lays out the hormone bars inside f with a zero baseline.
func (f Frame) Bars(bars []Bar) BarPlot {
	plot := BarPlot{Frame: f}
	if len(bars) == 0 {
		return plot
	}

	hi := 0.0
	for _, b := range bars {
		hi = math.Max(hi, math.Max(b.Value, b.Target))
	}
	_, hi = niceRange(0, hi)
	plot.Ticks = f.ticks(0, hi)

	slot := f.plotWidth() / float64(len(bars))
	width := slot * 0.3
	base := f.Top + f.plotHeight()
	for i, b := range bars {
		center := f.Left + slot*(float64(i)+0.5)
		mY := f.scaleY(b.Value, 0, hi)
		tY := f.scaleY(b.Target, 0, hi)
		plot.Groups = append(plot.Groups, BarGroup{
			Label:   b.Name,
			LabelX:  center,
			Measure: Rect{X: center - width - 2, Y: mY, Width: width, Height: base - mY, Value: b.Value},
			Target:  Rect{X: center + 2, Y: tY, Width: width, Height: base - tY, Value: b.Target},
		})
	}
	return plot
}

func (f Frame) scaleY(v, lo, hi float64) float64 {
	if hi == lo {
		return f.Top + f.plotHeight()/2
	}
	return f.Top + f.plotHeight()*(hi-v)/(hi-lo)
}

func (f Frame) ticks(lo, hi float64) []Tick {
	ticks := make([]Tick, 0, tickCount+1)
	for i := 0; i <= tickCount; i++ {
		v := lo + (hi-lo)*float64(i)/tickCount
		ticks = append(ticks, Tick{Y: f.scaleY(v, lo, hi), Label: formatNumber(math.Round(v*10) / 10)})
	}
	return ticks
}

// niceRange widens [lo, hi] to whole numbers so axis labels stay short.
func niceRange(lo, hi float64) (float64, float64) {
	lo, hi = math.Floor(lo), math.Ceil(hi)
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}
