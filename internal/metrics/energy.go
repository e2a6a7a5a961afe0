package metrics

import "github.com/san-kum/quakesim/internal/seismic"

// Energy reports Σu² of the most recently observed grid.
type Energy struct {
	name    string
	initial float64
	current float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(g *seismic.Grid, step int) {
	e.current = g.SumSquares()
	if e.samples == 0 {
		e.initial = e.current
	}
	e.samples++
}

func (e *Energy) Value() float64 { return e.current }

// Ratio is the final energy relative to the post-injection energy.
func (e *Energy) Ratio() float64 {
	if e.initial == 0 {
		return 0
	}
	return e.current / e.initial
}

func (e *Energy) Reset() {
	e.initial, e.current = 0, 0
	e.samples = 0
}

// PeakAmplitude tracks the largest |u| seen over the whole run.
type PeakAmplitude struct {
	name string
	peak float64
	step int
}

func NewPeakAmplitude() *PeakAmplitude {
	return &PeakAmplitude{name: "peak_amplitude"}
}

func (p *PeakAmplitude) Name() string { return p.name }

func (p *PeakAmplitude) Observe(g *seismic.Grid, step int) {
	if v := g.MaxAbs(); v > p.peak {
		p.peak = v
		p.step = step
	}
}

func (p *PeakAmplitude) Value() float64 { return p.peak }

// Step returns the step at which the peak was first reached.
func (p *PeakAmplitude) Step() int { return p.step }

func (p *PeakAmplitude) Reset() {
	p.peak = 0
	p.step = 0
}
