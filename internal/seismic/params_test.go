package seismic

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if p.NX != 100 || p.NZ != 100 {
		t.Errorf("expected 100x100, got %dx%d", p.NX, p.NZ)
	}
	if p.SourceX != 50 || p.SourceZ != 25 {
		t.Errorf("expected source at (25,50), got (%d,%d)", p.SourceZ, p.SourceX)
	}
	if p.Scheme != SchemeInPlace {
		t.Errorf("expected inplace scheme, got %s", p.Scheme)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}
	if math.Abs(p.Coefficient()-0.1225) > 1e-12 {
		t.Errorf("expected coefficient 0.1225, got %v", p.Coefficient())
	}
}

func TestExtentAndDuration(t *testing.T) {
	p := DefaultParams()
	w, d := p.Extent()
	if w != 1000 || d != 1000 {
		t.Errorf("expected 1000m x 1000m, got %v x %v", w, d)
	}
	if math.Abs(p.Duration()-0.0999) > 1e-12 {
		t.Errorf("expected duration 0.0999s, got %v", p.Duration())
	}
}

func TestCheckStability(t *testing.T) {
	tests := []struct {
		name     string
		scheme   Scheme
		dt       float64
		unstable bool
	}{
		{"inplace default", SchemeInPlace, 1e-4, false},
		{"inplace large dt", SchemeInPlace, 1e-3, true},
		{"diffusive large dt", SchemeDiffusive, 2e-4, true},
		{"leapfrog default", SchemeLeapfrog, 1e-4, false},
		{"leapfrog large dt", SchemeLeapfrog, 1e-3, false},
		{"leapfrog huge dt", SchemeLeapfrog, 3e-3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.Scheme = tt.scheme
			p.DT = tt.dt
			err := p.CheckStability()
			if got := errors.Is(err, ErrNumericalInstability); got != tt.unstable {
				t.Errorf("unstable = %v, want %v (ratio %v, limit %v)", got, tt.unstable, p.StabilityRatio(), p.StabilityLimit())
			}
		})
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes {
		got, err := ParseScheme(string(s))
		if err != nil || got != s {
			t.Errorf("ParseScheme(%q) = %v, %v", s, got, err)
		}
	}
	if got, _ := ParseScheme(""); got != SchemeInPlace {
		t.Errorf("empty scheme should default to inplace, got %v", got)
	}
	if _, err := ParseScheme("rk4"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "nx", Value: 2, Reason: "too small"}
	expected := "seismic: invalid configuration: nx=2: too small"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}
