package metrics

import (
	"math"

	"github.com/san-kum/quakesim/internal/seismic"
)

// Stability is the fraction of observed steps whose grid was finite and
// bounded by threshold.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
	firstBad   int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
		firstBad:  -1,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(g *seismic.Grid, step int) {
	s.samples++
	if !g.IsFinite() || g.MaxAbs() > s.threshold {
		s.violations++
		if s.firstBad < 0 {
			s.firstBad = step
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

// FirstViolation returns the first unstable step, or -1.
func (s *Stability) FirstViolation() int {
	return s.firstBad
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
	s.firstBad = -1
}

// Default returns the metrics attached to every CLI run. The stability
// threshold is relative to the source amplitude.
func Default(amplitude float64) []seismic.Metric {
	threshold := 10.0
	if amplitude != 0 {
		threshold *= math.Abs(amplitude)
	}
	return []seismic.Metric{
		NewEnergy(),
		NewPeakAmplitude(),
		NewStability(threshold),
	}
}
