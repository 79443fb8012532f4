package pages

import (
	"fmt"
	"strconv"

	"github.com/nfrund/bloomly/internal/dashboard"
	"github.com/nfrund/bloomly/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// NoTrackingData is shown whenever the tracking fetch fails.
const NoTrackingData = "No tracking data found."

// TrackingProps is the dashboard view state. A nil Dashboard renders the
// empty state.
type TrackingProps struct {
	Dashboard *dashboard.Dashboard
}

// Chart colours.
const (
	colorPink   = "#ec4899"
	colorPurple = "#a855f7"
	colorTarget = "#d1d5db"
	colorGrid   = "#f0f0f0"
	colorAxis   = "#94a3b8"
)

// Tracking renders the health tracking dashboard.
func Tracking(p TrackingProps) cmp.Node {
	if p.Dashboard == nil {
		return g.Div(
			g.Class("page page-tracking"),
			g.P(g.ID("tracking-empty"), g.Class("empty-state"), cmp.Text(NoTrackingData)),
		)
	}
	d := p.Dashboard
	frame := dashboard.DefaultFrame

	return g.Div(
		g.Class("page page-tracking"),
		header("", "Health Tracking Dashboard", "Monitor your progress and stay on top of your health metrics."),
		g.Div(
			g.Class("grid grid-4"),
			cmp.Map(d.Stats, statCard),
		),
		g.Div(
			g.Class("grid grid-2"),
			chartCard("Weight Trend", lineChart("weight-chart", frame.Line(d.Weight), colorPink),
				"Great progress! Keep maintaining a healthy routine."),
			chartCard("BMI Progress", lineChart("bmi-chart", frame.Line(d.BMI), colorPurple),
				"Your BMI is improving steadily. You're doing great!"),
		),
		chartCard("Hormone Levels Overview", barChart("hormone-chart", frame.Bars(d.Hormones)), ""),
		g.Section(
			g.Class("banner"),
			g.H2(cmp.Text("Log Your Progress")),
			g.Div(
				g.Class("grid grid-3"),
				g.Div(g.Class("banner-item"), partials.Icon("weight", "icon"), g.P(cmp.Text("Log Weight"))),
				g.Div(g.Class("banner-item"), partials.Icon("activity", "icon"), g.P(cmp.Text("Add Symptoms"))),
				g.Div(g.Class("banner-item"), partials.Icon("calendar", "icon"), g.P(cmp.Text("Track Cycle"))),
			),
		),
		note("Note", "Regular tracking helps you and your healthcare provider make informed decisions about your treatment plan."),
	)
}

func statCard(s dashboard.Stat) cmp.Node {
	changeClass := "change change-negative"
	if s.Positive {
		changeClass = "change change-positive"
	}
	return g.Article(
		g.Class("card stat"),
		g.Div(g.Class("card-icon"), partials.Icon(s.Icon, "icon")),
		g.P(g.Class("muted"), cmp.Text(s.Label)),
		g.Div(
			g.Class("stat-row"),
			g.P(g.Class("stat-value"), cmp.Text(s.Value)),
			g.Span(g.Class(changeClass), cmp.Text(s.Change)),
		),
	)
}

func chartCard(title string, chart cmp.Node, caption string) cmp.Node {
	return g.Section(
		g.Class("card chart"),
		g.H3(cmp.Text(title)),
		chart,
		cmp.If(caption != "", g.P(g.Class("muted"), cmp.Text(caption))),
	)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func svg(id string, f dashboard.Frame, children ...cmp.Node) cmp.Node {
	return cmp.El("svg",
		g.ID(id),
		cmp.Attr("xmlns", "http://www.w3.org/2000/svg"),
		cmp.Attr("viewBox", fmt.Sprintf("0 0 %s %s", num(f.Width), num(f.Height))),
		cmp.Attr("preserveAspectRatio", "none"),
		g.Role("img"),
		cmp.Group(children),
	)
}

func grid(f dashboard.Frame, ticks []dashboard.Tick) cmp.Node {
	return cmp.Map(ticks, func(t dashboard.Tick) cmp.Node {
		return cmp.Group{
			cmp.El("line",
				cmp.Attr("x1", num(f.Left)), cmp.Attr("x2", num(f.Width-f.Right)),
				cmp.Attr("y1", num(t.Y)), cmp.Attr("y2", num(t.Y)),
				cmp.Attr("stroke", colorGrid), cmp.Attr("stroke-dasharray", "3 3"),
			),
			cmp.El("text",
				cmp.Attr("x", num(f.Left-6)), cmp.Attr("y", num(t.Y+4)),
				cmp.Attr("text-anchor", "end"), cmp.Attr("fill", colorAxis), cmp.Attr("font-size", "11"),
				cmp.Text(t.Label),
			),
		}
	})
}

func axisLabel(x float64, f dashboard.Frame, label string) cmp.Node {
	return cmp.El("text",
		cmp.Attr("x", num(x)), cmp.Attr("y", num(f.Height-f.Bottom+18)),
		cmp.Attr("text-anchor", "middle"), cmp.Attr("fill", colorAxis), cmp.Attr("font-size", "11"),
		cmp.Text(label),
	)
}

func lineChart(id string, plot dashboard.LinePlot, color string) cmp.Node {
	f := plot.Frame
	return svg(id, f,
		grid(f, plot.Ticks),
		cmp.El("path",
			cmp.Attr("d", plot.Path), cmp.Attr("fill", "none"),
			cmp.Attr("stroke", color), cmp.Attr("stroke-width", "3"),
		),
		cmp.Map(plot.Markers, func(m dashboard.Marker) cmp.Node {
			return cmp.Group{
				cmp.El("circle",
					cmp.Attr("cx", num(m.X)), cmp.Attr("cy", num(m.Y)), cmp.Attr("r", "5"), cmp.Attr("fill", color),
					cmp.El("title", cmp.Textf("%s: %s", m.Label, num(m.Value))),
				),
				axisLabel(m.X, f, m.Label),
			}
		}),
	)
}

func barChart(id string, plot dashboard.BarPlot) cmp.Node {
	f := plot.Frame
	return svg(id, f,
		grid(f, plot.Ticks),
		cmp.Map(plot.Groups, func(b dashboard.BarGroup) cmp.Node {
			return cmp.Group{
				rect(b.Measure, colorPink, b.Label+" value"),
				rect(b.Target, colorTarget, b.Label+" target"),
				axisLabel(b.LabelX, f, b.Label),
			}
		}),
	)
}

func rect(r dashboard.Rect, color, title string) cmp.Node {
	return cmp.El("rect",
		cmp.Attr("x", num(r.X)), cmp.Attr("y", num(r.Y)),
		cmp.Attr("width", num(r.Width)), cmp.Attr("height", num(r.Height)),
		cmp.Attr("rx", "6"), cmp.Attr("fill", color),
		cmp.El("title", cmp.Textf("%s: %s", title, num(r.Value))),
	)
}
