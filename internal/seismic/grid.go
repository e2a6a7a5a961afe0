package seismic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is an nz × nx displacement field stored row-major.
type Grid struct {
	nz, nx int
	data   []float64
}

// NewGrid allocates a zeroed grid. Dimensions are not validated here; use
// [Initialize] for a grid the stencil can run on.
func NewGrid(nz, nx int) *Grid {
	if nz < 0 {
		nz = 0
	}
	if nx < 0 {
		nx = 0
	}
	return &Grid{nz: nz, nx: nx, data: make([]float64, nz*nx)}
}

// GridFromRows builds a grid from equally sized rows.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid: no rows")
	}
	nx := len(rows[0])
	g := NewGrid(len(rows), nx)
	for iz, row := range rows {
		if len(row) != nx {
			return nil, fmt.Errorf("grid: row %d has %d columns, want %d", iz, len(row), nx)
		}
		copy(g.data[iz*nx:(iz+1)*nx], row)
	}
	return g, nil
}

func (g *Grid) Shape() (nz, nx int) { return g.nz, g.nx }
func (g *Grid) NZ() int             { return g.nz }
func (g *Grid) NX() int             { return g.nx }

func (g *Grid) At(iz, ix int) float64 {
	return g.data[iz*g.nx+ix]
}

func (g *Grid) Set(iz, ix int, v float64) {
	g.data[iz*g.nx+ix] = v
}

// Row returns row iz as a slice sharing the grid's storage.
func (g *Grid) Row(iz int) []float64 {
	return g.data[iz*g.nx : (iz+1)*g.nx]
}

// Rows returns a copy of the field as a slice of rows.
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.nz)
	for iz := range rows {
		rows[iz] = make([]float64, g.nx)
		copy(rows[iz], g.Row(iz))
	}
	return rows
}

// Values returns a copy of the flat row-major data.
func (g *Grid) Values() []float64 {
	c := make([]float64, len(g.data))
	copy(c, g.data)
	return c
}

func (g *Grid) Clone() *Grid {
	return &Grid{nz: g.nz, nx: g.nx, data: g.Values()}
}

// CopyFrom overwrites g with other. Shapes must match.
func (g *Grid) CopyFrom(other *Grid) {
	if g.nz != other.nz || g.nx != other.nx {
		panic(fmt.Sprintf("grid: copy %dx%d into %dx%d", other.nz, other.nx, g.nz, g.nx))
	}
	copy(g.data, other.data)
}

// IsFinite reports whether no cell is NaN or Inf.
func (g *Grid) IsFinite() bool {
	for _, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns max |u| over the grid, 0 for an empty grid.
func (g *Grid) MaxAbs() float64 {
	if len(g.data) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(g.data)), math.Abs(floats.Min(g.data)))
}

// SumSquares returns Σu² over all cells.
func (g *Grid) SumSquares() float64 {
	return floats.Dot(g.data, g.data)
}

// Equal reports exact, cell-by-cell equality.
func (g *Grid) Equal(other *Grid) bool {
	if g.nz != other.nz || g.nx != other.nx {
		return false
	}
	return floats.Equal(g.data, other.data)
}
