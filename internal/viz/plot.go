package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quakesim/internal/seismic"
)

// TracePlot draws a receiver seismogram as an ASCII chart.
func TracePlot(tr seismic.Trace, width, height int) string {
	if len(tr.Samples) < 2 {
		return ""
	}
	r := tr.Receiver
	caption := fmt.Sprintf("%s (z=%d, x=%d)", r.Name, r.Z, r.X)
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(tr.Samples, opts...)
}
