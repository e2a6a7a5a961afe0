package seismic

import (
	"context"
	"fmt"
)

// Initialize allocates the nz × nx zero grid for p.
func Initialize(p Params) (*Grid, error) {
	if p.NX < 3 {
		return nil, &ConfigError{Field: "nx", Value: p.NX, Reason: "stencil needs at least 3 columns"}
	}
	if p.NZ < 3 {
		return nil, &ConfigError{Field: "nz", Value: p.NZ, Reason: "stencil needs at least 3 rows"}
	}
	return NewGrid(p.NZ, p.NX), nil
}

// InjectSource writes the source amplitude into its cell.
func InjectSource(g *Grid, p Params) error {
	if p.SourceX < 0 || p.SourceX >= g.nx {
		return &ConfigError{Field: "source_x", Value: p.SourceX, Reason: fmt.Sprintf("outside [0, %d)", g.nx)}
	}
	if p.SourceZ < 0 || p.SourceZ >= g.nz {
		return &ConfigError{Field: "source_z", Value: p.SourceZ, Reason: fmt.Sprintf("outside [0, %d)", g.nz)}
	}
	g.Set(p.SourceZ, p.SourceX, p.SourceAmplitude)
	return nil
}

// Simulator owns a wavefield and advances it one step at a time.
type Simulator struct {
	params    Params
	grid      *Grid
	prev      *Grid
	next      *Grid
	steps     int
	metrics   []Metric
	receivers []Receiver
	traces    []Trace
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		receivers: make([]Receiver, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddReceiver(r Receiver) { s.receivers = append(s.receivers, r) }
func (s *Simulator) Grid() *Grid            { return s.grid }
func (s *Simulator) Params() Params         { return s.params }
func (s *Simulator) StepsTaken() int        { return s.steps }
func (s *Simulator) Time() float64          { return float64(s.steps) * s.params.DT }
func (s *Simulator) Receivers() []Receiver  { return s.receivers }
func (s *Simulator) Traces() []Trace        { return s.traces }

// Reset validates p, allocates a fresh grid and injects the source. Grids
// returned by earlier runs are left untouched.
func (s *Simulator) Reset(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, r := range s.receivers {
		if r.Z < 0 || r.Z >= p.NZ || r.X < 0 || r.X >= p.NX {
			return &ConfigError{Field: "receiver", Value: fmt.Sprintf("%s(%d,%d)", r.Name, r.Z, r.X), Reason: "outside the grid"}
		}
	}

	g, err := Initialize(p)
	if err != nil {
		return err
	}
	if err := InjectSource(g, p); err != nil {
		return err
	}

	s.params = p
	s.grid = g
	s.steps = 0
	s.prev, s.next = nil, nil
	switch p.Scheme {
	case SchemeDiffusive:
		s.prev = NewGrid(p.NZ, p.NX)
	case SchemeLeapfrog:
		s.prev = g.Clone()
		s.next = NewGrid(p.NZ, p.NX)
	}

	s.traces = make([]Trace, len(s.receivers))
	for i, r := range s.receivers {
		s.traces[i] = Trace{Receiver: r, DT: p.DT, Samples: make([]float64, 0, p.NT)}
	}
	for _, m := range s.metrics {
		m.Reset()
	}
	s.observe()
	return nil
}

// Step advances every interior cell by one time step.
func (s *Simulator) Step() {
	if s.grid == nil {
		panic("seismic: Step called before Reset")
	}
	p := s.params
	switch p.Scheme {
	case SchemeDiffusive:
		stepDiffusive(s.grid, s.prev, p.Coefficient())
	case SchemeLeapfrog:
		c := p.Coefficient()
		stepLeapfrog(s.grid, s.prev, s.next, c/(p.DX*p.DX), c/(p.DZ*p.DZ))
	default:
		stepInPlace(s.grid, p.Coefficient())
	}
	s.steps++
	s.observe()
}

func (s *Simulator) observe() {
	for i, r := range s.receivers {
		s.traces[i].Samples = append(s.traces[i].Samples, s.grid.At(r.Z, r.X))
	}
	for _, m := range s.metrics {
		m.Observe(s.grid, s.steps)
	}
}

// Run initializes the grid, injects the source and applies exactly nt-1
// steps.
func (s *Simulator) Run(ctx context.Context, p Params) (*Result, error) {
	if err := s.Reset(p); err != nil {
		return nil, err
	}

	for i := 1; i < p.NT; i++ {
		select {
		case <-ctx.Done():
			return s.result(), &SimulationError{Step: i, Wrapped: ctx.Err()}
		default:
		}
		s.Step()
	}

	return s.result(), nil
}

func (s *Simulator) result() *Result {
	r := &Result{
		Params:     s.params,
		Grid:       s.grid,
		StepsTaken: s.steps,
		Traces:     s.traces,
		Metrics:    make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
	return r
}

// RunWithCallback steps like Run, calling fn after injection and after every
// step. Returning false from fn stops the run early.
func (s *Simulator) RunWithCallback(ctx context.Context, p Params, fn func(step int, g *Grid) bool) error {
	if err := s.Reset(p); err != nil {
		return err
	}
	if !fn(0, s.grid) {
		return nil
	}

	for i := 1; i < p.NT; i++ {
		select {
		case <-ctx.Done():
			return &SimulationError{Step: i, Wrapped: ctx.Err()}
		default:
		}
		s.Step()
		if !fn(i, s.grid) {
			return nil
		}
	}
	return nil
}
