package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/quakesim/internal/seismic"
)

func TestFirstArrival(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"interpolated", []float64{0, 0, 0.2, 1, 0.5}, 0.2375},
		{"negative onset", []float64{0, 0, -0.2, -1, 0.5}, 0.2375},
		{"first sample", []float64{1, 0.5, 0}, 0},
		{"flat", []float64{0, 0, 0}, -1},
		{"empty", nil, -1},
	}

	for _, tt := range tests {
		got := FirstArrival(tt.samples, 0.1, 0.5)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, got)
		}
	}
}

func TestApparentVelocity(t *testing.T) {
	if v := ApparentVelocity(0, 0, 3, 4, 1, 1, 5); math.Abs(v-1) > 1e-12 {
		t.Errorf("expected 1, got %f", v)
	}
	if v := ApparentVelocity(0, 0, 3, 4, 1, 1, 0); v != 0 {
		t.Errorf("expected 0 for no arrival, got %f", v)
	}
}

func TestArrivalOrderOnSimulation(t *testing.T) {
	p := seismic.DefaultParams()
	p.NT = 300
	p.Scheme = seismic.SchemeDiffusive

	sim := seismic.New()
	sim.AddReceiver(seismic.Receiver{Name: "near", Z: p.SourceZ, X: p.SourceX + 3})
	sim.AddReceiver(seismic.Receiver{Name: "far", Z: p.SourceZ, X: p.SourceX + 8})
	result, err := sim.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	near := FirstArrival(result.Traces[0].Samples, p.DT, 0.5)
	far := FirstArrival(result.Traces[1].Samples, p.DT, 0.5)
	if near <= 0 || far <= 0 {
		t.Fatalf("expected both arrivals, got near=%f far=%f", near, far)
	}
	if near >= far {
		t.Errorf("expected near arrival before far, got near=%f far=%f", near, far)
	}
}
