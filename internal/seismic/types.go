package seismic

// Metric observes the grid after injection and after every step.
type Metric interface {
	Name() string
	Observe(g *Grid, step int)
	Value() float64
	Reset()
}

// Receiver samples the displacement at one cell.
type Receiver struct {
	Name string
	Z, X int
}

// Trace is the time series recorded by a Receiver. Samples[0] is the
// post-injection value; Samples[i] is the value after step i.
type Trace struct {
	Receiver Receiver
	DT       float64
	Samples  []float64
}

// Times returns the simulated time of each sample.
func (t Trace) Times() []float64 {
	times := make([]float64, len(t.Samples))
	for i := range times {
		times[i] = float64(i) * t.DT
	}
	return times
}

type Result struct {
	Params     Params
	Grid       *Grid
	StepsTaken int
	Traces     []Trace
	Metrics    map[string]float64
}
