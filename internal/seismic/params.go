package seismic

import (
	"fmt"
	"math"
)

const (
	DefaultNX        = 100
	DefaultNZ        = 100
	DefaultSpacing   = 10.0
	DefaultVelocity  = 3500.0
	DefaultTimeStep  = 1e-4
	DefaultSteps     = 1000
	DefaultAmplitude = 1.0
)

// Params configures a run. It is passed by value and never mutated once
// stepping begins.
type Params struct {
	NX, NZ          int
	DX, DZ          float64
	VP              float64
	DT              float64
	NT              int
	SourceX         int
	SourceZ         int
	SourceAmplitude float64
	Scheme          Scheme
}

// DefaultParams returns the reference setup: a 100×100 grid at 10 m
// spacing, 3500 m/s, 1000 steps of 0.1 ms, unit source at the horizontal
// centre and a quarter of the depth.
func DefaultParams() Params {
	p := Params{
		NX:              DefaultNX,
		NZ:              DefaultNZ,
		DX:              DefaultSpacing,
		DZ:              DefaultSpacing,
		VP:              DefaultVelocity,
		DT:              DefaultTimeStep,
		NT:              DefaultSteps,
		SourceAmplitude: DefaultAmplitude,
		Scheme:          SchemeInPlace,
	}
	p.SourceX, p.SourceZ = DefaultSource(p.NX, p.NZ)
	return p
}

// DefaultSource places the source at (nz/4, nx/2).
func DefaultSource(nx, nz int) (x, z int) {
	return nx / 2, nz / 4
}

// Validate checks every precondition of Initialize, InjectSource and Run.
func (p Params) Validate() error {
	if p.NX < 3 {
		return &ConfigError{Field: "nx", Value: p.NX, Reason: "stencil needs at least 3 columns"}
	}
	if p.NZ < 3 {
		return &ConfigError{Field: "nz", Value: p.NZ, Reason: "stencil needs at least 3 rows"}
	}
	if err := positive("dx", p.DX); err != nil {
		return err
	}
	if err := positive("dz", p.DZ); err != nil {
		return err
	}
	if err := positive("dt", p.DT); err != nil {
		return err
	}
	if math.IsNaN(p.VP) || math.IsInf(p.VP, 0) || p.VP < 0 {
		return &ConfigError{Field: "vp", Value: p.VP, Reason: "must be finite and non-negative"}
	}
	if p.NT < 1 {
		return &ConfigError{Field: "nt", Value: p.NT, Reason: "must be at least 1"}
	}
	if p.SourceX < 1 || p.SourceX > p.NX-2 {
		return &ConfigError{Field: "source_x", Value: p.SourceX, Reason: fmt.Sprintf("must be interior, in [1, %d]", p.NX-2)}
	}
	if p.SourceZ < 1 || p.SourceZ > p.NZ-2 {
		return &ConfigError{Field: "source_z", Value: p.SourceZ, Reason: fmt.Sprintf("must be interior, in [1, %d]", p.NZ-2)}
	}
	if math.IsNaN(p.SourceAmplitude) || math.IsInf(p.SourceAmplitude, 0) {
		return &ConfigError{Field: "source_amplitude", Value: p.SourceAmplitude, Reason: "must be finite"}
	}
	if _, err := ParseScheme(string(p.Scheme)); err != nil {
		return err
	}
	return nil
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ConfigError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

// Coefficient is vp²dt², the factor applied to the unscaled Laplacian.
func (p Params) Coefficient() float64 {
	return p.VP * p.VP * p.DT * p.DT
}

// Extent returns the physical size of the grid in metres.
func (p Params) Extent() (width, depth float64) {
	return float64(p.NX) * p.DX, float64(p.NZ) * p.DZ
}

// Duration is the simulated time covered by the nt-1 steps.
func (p Params) Duration() float64 {
	return float64(p.NT-1) * p.DT
}

// StabilityRatio returns the quantity compared against StabilityLimit for
// the configured scheme.
func (p Params) StabilityRatio() float64 {
	if p.Scheme == SchemeLeapfrog {
		return p.VP * p.DT * math.Sqrt(1/(p.DX*p.DX)+1/(p.DZ*p.DZ))
	}
	return p.Coefficient()
}

// StabilityLimit is the largest stable StabilityRatio for the scheme.
func (p Params) StabilityLimit() float64 {
	if p.Scheme == SchemeLeapfrog {
		return 1.0
	}
	return 0.25
}

// CheckStability reports ErrNumericalInstability when the ratio exceeds the
// limit. It never alters how a run behaves.
func (p Params) CheckStability() error {
	ratio, limit := p.StabilityRatio(), p.StabilityLimit()
	if ratio > limit {
		return fmt.Errorf("%w: %s ratio %.4g exceeds %.4g", ErrNumericalInstability, p.Scheme, ratio, limit)
	}
	return nil
}
