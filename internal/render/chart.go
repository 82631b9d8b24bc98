package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"universe-game/internal/swarm"
)

// Series is one named time series of a run.
type Series struct {
	Name   string
	X, Y   []float64
	Second bool // plot against the secondary y axis
}

// WriteChart renders the series as a PNG line chart.
func WriteChart(w io.Writer, title string, width, height int, series ...Series) error {
	colors := []drawing.Color{
		chart.ColorBlue,
		chart.ColorRed,
		{R: 255, G: 165, B: 0, A: 255},
		chart.ColorGreen,
	}
	var cs []chart.Series
	for i, s := range series {
		if len(s.X) < 2 || len(s.X) != len(s.Y) {
			return fmt.Errorf("series %q: need at least two points with matching x and y, got %d/%d", s.Name, len(s.X), len(s.Y))
		}
		axis := chart.YAxisPrimary
		if s.Second {
			axis = chart.YAxisSecondary
		}
		cs = append(cs, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			YAxis:   axis,
			Style:   chart.Style{StrokeColor: colors[i%len(colors)], StrokeWidth: 2.0},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis:          chart.YAxis{Style: chart.Style{FontSize: 10.0}},
		YAxisSecondary: chart.YAxis{Style: chart.Style{FontSize: 10.0}},
		Series:         cs,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// WriteTelemetryChart plots polarization on the primary axis and the radius
// of gyration on the secondary one.
func WriteTelemetryChart(w io.Writer, title string, tel swarm.Telemetry) error {
	ticks := make([]float64, len(tel.Ticks))
	for i, t := range tel.Ticks {
		ticks[i] = float64(t)
	}
	return WriteChart(w, title, 1024, 512,
		Series{Name: "polarization", X: ticks, Y: tel.Polarization},
		Series{Name: "gyration", X: ticks, Y: tel.Gyration, Second: true},
	)
}
