package seismic

import (
	"math"
	"testing"
)

func TestGridAccess(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(1, 2, 5)

	if g.At(1, 2) != 5 {
		t.Errorf("expected 5, got %v", g.At(1, 2))
	}
	if g.Row(1)[2] != 5 {
		t.Error("Row does not share storage")
	}
	rows := g.Rows()
	rows[1][2] = 7
	if g.At(1, 2) != 5 {
		t.Error("Rows did not copy")
	}
}

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatalf("from rows failed: %v", err)
	}
	if nz, nx := g.Shape(); nz != 3 || nx != 2 {
		t.Errorf("expected 3x2, got %dx%d", nz, nx)
	}
	if g.At(2, 1) != 6 {
		t.Errorf("expected 6, got %v", g.At(2, 1))
	}

	if _, err := GridFromRows([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := GridFromRows(nil); err == nil {
		t.Error("expected error for no rows")
	}
}

func TestGridReductions(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, 3)
	g.Set(1, 1, -4)

	if g.MaxAbs() != 4 {
		t.Errorf("expected max abs 4, got %v", g.MaxAbs())
	}
	if g.SumSquares() != 25 {
		t.Errorf("expected sum of squares 25, got %v", g.SumSquares())
	}
	if !g.IsFinite() {
		t.Error("expected finite grid")
	}

	g.Set(0, 1, math.Inf(1))
	if g.IsFinite() {
		t.Error("expected non-finite grid")
	}
}

func TestGridCloneEqual(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, 1)
	c := g.Clone()
	if !c.Equal(g) {
		t.Error("clone not equal")
	}
	c.Set(1, 1, 2)
	if c.Equal(g) {
		t.Error("clone shares storage")
	}
	if g.Equal(NewGrid(3, 4)) {
		t.Error("different shapes reported equal")
	}
}

func TestGridCopyFromShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on shape mismatch")
		}
	}()
	NewGrid(2, 2).CopyFrom(NewGrid(3, 3))
}
