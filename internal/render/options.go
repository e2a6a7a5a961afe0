package render

import "github.com/san-kum/quakesim/internal/seismic"

const (
	DefaultTitle     = "Synthetic Earthquake Model"
	DefaultXLabel    = "Distance (m)"
	DefaultYLabel    = "Depth (m)"
	DefaultBarLabel  = "Displacement"
	DefaultPlotWidth = 500
)

type Options struct {
	DX, DZ   float64
	Title    string
	XLabel   string
	YLabel   string
	BarLabel string

	// Scale is the pixel size of one cell; 0 fits the plot to DefaultPlotWidth.
	Scale int
	// Limit fixes the colour range to [-Limit, Limit]; 0 uses max |u|.
	Limit float64
	Ticks int
}

func DefaultOptions(dx, dz float64) Options {
	return Options{
		DX:       dx,
		DZ:       dz,
		Title:    DefaultTitle,
		XLabel:   DefaultXLabel,
		YLabel:   DefaultYLabel,
		BarLabel: DefaultBarLabel,
		Ticks:    5,
	}
}

func OptionsFor(p seismic.Params) Options {
	return DefaultOptions(p.DX, p.DZ)
}

func (o Options) scale(nz, nx int) int {
	if o.Scale > 0 {
		return o.Scale
	}
	n := nx
	if nz > n {
		n = nz
	}
	s := DefaultPlotWidth / n
	if s < 1 {
		s = 1
	}
	return s
}

func (o Options) limit(g *seismic.Grid) float64 {
	if o.Limit > 0 {
		return o.Limit
	}
	return g.MaxAbs()
}

func (o Options) ticks() int {
	if o.Ticks < 1 {
		return 1
	}
	return o.Ticks
}

// layout holds pixel geometry shared by the PNG and SVG renderers.
type layout struct {
	cell             int
	left, top        int
	plotW, plotH     int
	barX, barW       int
	width, height    int
	extentX, extentZ float64
	limit            float64
}

const (
	marginLeft   = 80
	marginTop    = 40
	marginBottom = 55
	barGap       = 20
	barWidth     = 20
	marginRight  = 90
)

func newLayout(g *seismic.Grid, o Options) layout {
	nz, nx := g.Shape()
	cell := o.scale(nz, nx)
	l := layout{
		cell:    cell,
		left:    marginLeft,
		top:     marginTop,
		plotW:   nx * cell,
		plotH:   nz * cell,
		barW:    barWidth,
		extentX: float64(nx) * o.DX,
		extentZ: float64(nz) * o.DZ,
		limit:   o.limit(g),
	}
	l.barX = l.left + l.plotW + barGap
	l.width = l.barX + l.barW + marginRight
	l.height = l.top + l.plotH + marginBottom
	return l
}
