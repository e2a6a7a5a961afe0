package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/quakesim/internal/render"
	"github.com/san-kum/quakesim/internal/seismic"
)

const halfBlock = "▀"

// Heatmap renders g as cols x rows terminal cells. Every cell shows two grid
// samples stacked vertically: the upper one as the foreground of a half
// block, the lower one as its background. A limit <= 0 scales to max|u|.
func Heatmap(g *seismic.Grid, cols, rows int, limit float64) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if limit <= 0 {
		limit = g.MaxAbs()
	}

	nz, nx := g.Shape()
	h := rows * 2
	sample := func(y, x int) lipgloss.Color {
		v := g.At(y*nz/h, x*nx/cols)
		return lipgloss.Color(render.Hex(render.Seismic(render.Normalize(v, limit))))
	}

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			cell := lipgloss.NewStyle().
				Foreground(sample(2*r, x)).
				Background(sample(2*r+1, x))
			b.WriteString(cell.Render(halfBlock))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// ColorBar renders the diverging colour map from -limit to +limit.
func ColorBar(width int, limit float64) string {
	if width < 2 {
		width = 2
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		t := float64(i) / float64(width-1)
		c := lipgloss.Color(render.Hex(render.Seismic(t)))
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("█"))
	}
	lo := fmt.Sprintf("%.3g", -limit)
	hi := fmt.Sprintf("%.3g", limit)
	gap := width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	return b.String() + "\n" + lo + strings.Repeat(" ", gap) + hi
}
