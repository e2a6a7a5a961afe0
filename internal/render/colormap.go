package render

import (
	"image/color"
	"math"
)

type stop struct {
	at      float64
	r, g, b float64
}

// seismicStops is a diverging dark blue → white → dark red ramp in 0-255
// channel units.
var seismicStops = []stop{
	{0.00, 0, 0, 77},
	{0.25, 0, 0, 255},
	{0.50, 255, 255, 255},
	{0.75, 255, 0, 0},
	{1.00, 128, 0, 0},
}

// Seismic maps t in [0,1] onto the diverging colour ramp. Values outside
// the interval are clamped.
func Seismic(t float64) color.RGBA {
	if math.IsNaN(t) {
		t = 0.5
	}
	t = math.Max(0, math.Min(1, t))

	for i := 1; i < len(seismicStops); i++ {
		hi := seismicStops[i]
		if t > hi.at && i < len(seismicStops)-1 {
			continue
		}
		lo := seismicStops[i-1]
		f := (t - lo.at) / (hi.at - lo.at)
		return color.RGBA{
			R: channel(lo.r + f*(hi.r-lo.r)),
			G: channel(lo.g + f*(hi.g-lo.g)),
			B: channel(lo.b + f*(hi.b-lo.b)),
			A: 255,
		}
	}
	return color.RGBA{A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// Normalize maps v in [-limit, limit] symmetrically onto [0,1] so zero
// displacement is always the centre colour.
func Normalize(v, limit float64) float64 {
	if limit <= 0 || math.IsNaN(limit) || math.IsInf(limit, 0) {
		return 0.5
	}
	return 0.5 + 0.5*v/limit
}

// Hex formats a colour as #rrggbb.
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}
