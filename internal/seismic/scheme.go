package seismic

import "fmt"

// Scheme selects the time recurrence for interior cells.
type Scheme string

const (
	// SchemeInPlace sweeps a single buffer row-major, so cells above and to
	// the left are already at the new step when read. The 2u - u term
	// cancels, leaving u + vp²dt²·∇²u. Matches the reference output exactly.
	SchemeInPlace Scheme = "inplace"

	// SchemeDiffusive applies u + vp²dt²·∇²u reading only the previous step.
	SchemeDiffusive Scheme = "diffusive"

	// SchemeLeapfrog is the second-order recurrence
	// 2u - u_prev + vp²dt²·(∂²u/∂x² + ∂²u/∂z²) with spacing-scaled differences.
	SchemeLeapfrog Scheme = "leapfrog"
)

// Schemes lists every supported scheme.
var Schemes = []Scheme{SchemeInPlace, SchemeDiffusive, SchemeLeapfrog}

func ParseScheme(name string) (Scheme, error) {
	switch Scheme(name) {
	case SchemeInPlace, SchemeDiffusive, SchemeLeapfrog:
		return Scheme(name), nil
	case "":
		return SchemeInPlace, nil
	}
	return "", &ConfigError{Field: "scheme", Value: name, Reason: fmt.Sprintf("unknown scheme (want one of %v)", Schemes)}
}

func (s Scheme) String() string { return string(s) }

// laplacian is the unscaled five-point stencil at (iz, ix).
func laplacian(g *Grid, iz, ix int) float64 {
	c := g.At(iz, ix)
	return (g.At(iz, ix+1) - 2.0*c + g.At(iz, ix-1)) + (g.At(iz+1, ix) - 2.0*c + g.At(iz-1, ix))
}

func stepInPlace(u *Grid, coef float64) {
	for iz := 1; iz < u.nz-1; iz++ {
		for ix := 1; ix < u.nx-1; ix++ {
			lap := laplacian(u, iz, ix)
			u.Set(iz, ix, 2.0*u.At(iz, ix)-u.At(iz, ix)+coef*lap)
		}
	}
}

// stepDiffusive reads from prev (a snapshot of u) and writes into u.
func stepDiffusive(u, prev *Grid, coef float64) {
	prev.CopyFrom(u)
	for iz := 1; iz < u.nz-1; iz++ {
		for ix := 1; ix < u.nx-1; ix++ {
			u.Set(iz, ix, prev.At(iz, ix)+coef*laplacian(prev, iz, ix))
		}
	}
}

// stepLeapfrog writes the next step into next, then rotates so u holds the
// new field and prev the old current one. Boundaries in next are copied from
// u to keep them fixed.
func stepLeapfrog(u, prev, next *Grid, cx, cz float64) {
	nx := u.nx
	for iz := 0; iz < u.nz; iz++ {
		if iz == 0 || iz == u.nz-1 {
			copy(next.Row(iz), u.Row(iz))
			continue
		}
		next.Set(iz, 0, u.At(iz, 0))
		next.Set(iz, nx-1, u.At(iz, nx-1))
		for ix := 1; ix < nx-1; ix++ {
			c := u.At(iz, ix)
			lapX := u.At(iz, ix+1) - 2.0*c + u.At(iz, ix-1)
			lapZ := u.At(iz+1, ix) - 2.0*c + u.At(iz-1, ix)
			next.Set(iz, ix, 2.0*c-prev.At(iz, ix)+cx*lapX+cz*lapZ)
		}
	}
	prev.data, u.data, next.data = u.data, next.data, prev.data
}
