package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/quakesim/internal/seismic"
)

// SVG writes the heatmap layout of Image as scalable vector graphics.
func SVG(w io.Writer, g *seismic.Grid, o Options) error {
	_, err := io.WriteString(w, SVGString(g, o))
	return err
}

func SVGString(g *seismic.Grid, o Options) string {
	l := newLayout(g, o)
	nz, nx := g.Shape()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="monospace" font-size="12">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<defs>
<linearGradient id="bar" x1="0" y1="0" x2="0" y2="1">
`, l.width, l.height, l.width, l.height))

	for i := len(seismicStops) - 1; i >= 0; i-- {
		s := seismicStops[i]
		sb.WriteString(fmt.Sprintf(`<stop offset="%.2f" stop-color="%s"/>
`, 1-s.at, Hex(Seismic(s.at))))
	}
	sb.WriteString("</linearGradient>\n</defs>\n")

	sb.WriteString(fmt.Sprintf(`<g transform="translate(%d,%d)" shape-rendering="crispEdges">
`, l.left, l.top))
	for iz := 0; iz < nz; iz++ {
		for ix := 0; ix < nx; ix++ {
			c := Seismic(Normalize(g.At(iz, ix), l.limit))
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, ix*l.cell, iz*l.cell, l.cell, l.cell, Hex(c)))
		}
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#000000"/>
<rect x="%d" y="%d" width="%d" height="%d" fill="url(#bar)" stroke="#000000"/>
`, l.left, l.top, l.plotW, l.plotH, l.barX, l.top, l.barW, l.plotH))

	n := o.ticks()
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		x := l.left + int(f*float64(l.plotW))
		y := l.top + int(f*float64(l.plotH))
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000000"/>
<text x="%d" y="%d" text-anchor="middle">%.0f</text>
<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000000"/>
<text x="%d" y="%d" text-anchor="end">%.0f</text>
`, x, l.top+l.plotH, x, l.top+l.plotH+5, x, l.top+l.plotH+18, f*l.extentX,
			l.left-5, y, l.left, y, l.left-8, y+4, f*l.extentZ))
	}

	for i, v := range []float64{l.limit, 0, -l.limit} {
		y := l.top + i*l.plotH/2
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d">%.3g</text>
`, l.barX+l.barW+6, y+4, v))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="14" font-weight="bold">%s</text>
<text x="%d" y="%d" text-anchor="middle">%s</text>
<text transform="translate(%d,%d) rotate(-90)" text-anchor="middle">%s</text>
<text transform="translate(%d,%d) rotate(90)" text-anchor="middle">%s</text>
`, l.left+l.plotW/2, l.top-15, html.EscapeString(o.Title),
		l.left+l.plotW/2, l.top+l.plotH+42, html.EscapeString(o.XLabel),
		20, l.top+l.plotH/2, html.EscapeString(o.YLabel),
		l.barX+l.barW+60, l.top+l.plotH/2, html.EscapeString(o.BarLabel)))

	sb.WriteString("</svg>")
	return sb.String()
}
