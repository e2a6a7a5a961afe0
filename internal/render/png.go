package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/quakesim/internal/seismic"
)

const (
	glyphWidth  = 7
	glyphHeight = 13
)

var (
	background = color.RGBA{255, 255, 255, 255}
	foreground = color.RGBA{0, 0, 0, 255}
)

// Image draws the heatmap, axes, title and colour bar.
func Image(g *seismic.Grid, o Options) *image.RGBA {
	l := newLayout(g, o)
	img := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	nz, nx := g.Shape()
	for iz := 0; iz < nz; iz++ {
		for ix := 0; ix < nx; ix++ {
			c := Seismic(Normalize(g.At(iz, ix), l.limit))
			x0, y0 := l.left+ix*l.cell, l.top+iz*l.cell
			draw.Draw(img, image.Rect(x0, y0, x0+l.cell, y0+l.cell), &image.Uniform{c}, image.Point{}, draw.Src)
		}
	}

	for y := 0; y < l.plotH; y++ {
		c := Seismic(1 - float64(y)/float64(maxInt(l.plotH-1, 1)))
		draw.Draw(img, image.Rect(l.barX, l.top+y, l.barX+l.barW, l.top+y+1), &image.Uniform{c}, image.Point{}, draw.Src)
	}

	frame(img, l.left, l.top, l.plotW, l.plotH)
	frame(img, l.barX, l.top, l.barW, l.plotH)
	drawTicks(img, l, o)
	drawBarLabels(img, l, o)

	title := o.Title
	addLabel(img, l.left+(l.plotW-textWidth(title))/2, l.top-15, title)
	addLabel(img, l.left+(l.plotW-textWidth(o.XLabel))/2, l.top+l.plotH+45, o.XLabel)
	addLabel(img, 4, l.top-15, o.YLabel)
	return img
}

// PNG encodes Image(g, o) to w.
func PNG(w io.Writer, g *seismic.Grid, o Options) error {
	return png.Encode(w, Image(g, o))
}

func drawTicks(img *image.RGBA, l layout, o Options) {
	n := o.ticks()
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)

		x := l.left + int(f*float64(l.plotW))
		vline(img, x, l.top+l.plotH, 5)
		label := fmt.Sprintf("%.0f", f*l.extentX)
		addLabel(img, x-textWidth(label)/2, l.top+l.plotH+20, label)

		y := l.top + int(f*float64(l.plotH))
		hline(img, l.left-5, y, 5)
		label = fmt.Sprintf("%.0f", f*l.extentZ)
		addLabel(img, l.left-8-textWidth(label), y+glyphHeight/2-2, label)
	}
}

func drawBarLabels(img *image.RGBA, l layout, o Options) {
	x := l.barX + l.barW + 6
	values := []float64{l.limit, 0, -l.limit}
	for i, v := range values {
		y := l.top + i*l.plotH/2
		hline(img, l.barX+l.barW, y, 4)
		addLabel(img, x, y+glyphHeight/2-2, fmt.Sprintf("%.3g", v))
	}
	addLabel(img, l.barX-2, l.top-15, o.BarLabel)
}

func addLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

func textWidth(s string) int {
	return len(s) * glyphWidth
}

func frame(img *image.RGBA, x, y, w, h int) {
	hline(img, x-1, y-1, w+2)
	hline(img, x-1, y+h, w+2)
	vline(img, x-1, y-1, h+2)
	vline(img, x+w, y-1, h+2)
}

func hline(img *image.RGBA, x, y, length int) {
	for i := 0; i < length; i++ {
		img.Set(x+i, y, foreground)
	}
}

func vline(img *image.RGBA, x, y, length int) {
	for i := 0; i < length; i++ {
		img.Set(x, y+i, foreground)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
