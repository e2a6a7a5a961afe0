package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/quakesim/internal/seismic"
)

var tracePalette = []drawing.Color{
	{R: 0, G: 0, B: 204, A: 255},
	{R: 204, G: 0, B: 0, A: 255},
	{R: 0, G: 140, B: 70, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 110, G: 40, B: 160, A: 255},
}

// TraceChart builds a seismogram chart with one series per receiver.
func TraceChart(traces []seismic.Trace, title string) (*chart.Chart, error) {
	if len(traces) == 0 {
		return nil, fmt.Errorf("render: no traces")
	}

	series := make([]chart.Series, 0, len(traces))
	lo, hi := 0.0, 0.0
	first := true
	for i, tr := range traces {
		if len(tr.Samples) < 2 {
			return nil, fmt.Errorf("render: trace %s has %d samples, need at least 2", tr.Receiver.Name, len(tr.Samples))
		}
		for _, v := range tr.Samples {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s (z=%d, x=%d)", tr.Receiver.Name, tr.Receiver.Z, tr.Receiver.X),
			XValues: tr.Times(),
			YValues: tr.Samples,
			Style: chart.Style{
				StrokeColor: tracePalette[i%len(tracePalette)],
				StrokeWidth: 1.5,
			},
		})
	}

	graph := &chart.Chart{
		Title:  title,
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "Time (s)",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.3f", v.(float64))
			},
		},
		YAxis: chart.YAxis{
			Name:  DefaultBarLabel,
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.2g", v.(float64))
			},
		},
		Series: series,
	}
	if lo == hi {
		// a flat trace has no data range of its own
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}
	return graph, nil
}

// Traces renders the seismogram chart as PNG.
func Traces(w io.Writer, traces []seismic.Trace, title string) error {
	graph, err := TraceChart(traces, title)
	if err != nil {
		return err
	}
	return graph.Render(chart.PNG, w)
}
