// Package render turns a finished displacement grid into images.
//
// The renderers only need a [seismic.Grid] and the grid spacing, so any
// producer of a 2-D real array can be plotted:
//
//   - [PNG]: heatmap with physical axes, title and colour bar
//   - [SVG]: the same layout as scalable vector graphics
//   - [Traces]: seismogram line chart of receiver traces
//
// Colours come from [Seismic], a diverging ramp centred on zero.
//
// Row 0 of the grid is the surface. It is drawn at the top and the depth
// axis is labelled 0 there, increasing downward to nz·dz.
package render
