package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/output"
	"github.com/san-kum/quakesim/internal/seismic"
)

func newTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addSimulationFlags(cmd)
	addOutputFlags(cmd)
	cmd.Flags().StringArrayVar(&receivers, "receiver", nil, "")
	cmd.Flags().BoolVar(&withTrace, "trace", false, "")
	return cmd
}

func TestParseReceiver(t *testing.T) {
	tests := []struct {
		spec    string
		want    seismic.Receiver
		wantErr bool
	}{
		{"3,4", seismic.Receiver{Z: 3, X: 4}, false},
		{"station=1, 50", seismic.Receiver{Name: "station", Z: 1, X: 50}, false},
		{"3", seismic.Receiver{}, true},
		{"a,4", seismic.Receiver{}, true},
		{"3,b", seismic.Receiver{}, true},
	}

	for _, tt := range tests {
		got, err := parseReceiver(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.spec, tt.want, got)
		}
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	cmd := newTestCommand(t)
	path := filepath.Join(t.TempDir(), "quake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  nx: 80\nphysics:\n  nt: 40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	flags := map[string]string{
		"preset":   "leapfrog",
		"config":   path,
		"nt":       "12",
		"receiver": "top=1,40",
	}
	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Physics.Scheme != "leapfrog" {
		t.Errorf("expected preset scheme, got %s", cfg.Physics.Scheme)
	}
	if cfg.Grid.NX != 80 {
		t.Errorf("expected config nx 80, got %d", cfg.Grid.NX)
	}
	if cfg.Physics.NT != 12 {
		t.Errorf("expected flag nt 12, got %d", cfg.Physics.NT)
	}
	if len(cfg.Receivers) != 1 || cfg.Receivers[0].Name != "top" {
		t.Errorf("expected flag receivers to replace preset, got %+v", cfg.Receivers)
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	cmd := newTestCommand(t)
	if err := cmd.Flags().Set("preset", "nope"); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPrepareStrictStability(t *testing.T) {
	cmd := newTestCommand(t)
	if err := cmd.Flags().Set("dt", "1e-3"); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := prepare(cfg); err != nil {
		t.Errorf("expected warning only, got %v", err)
	}
	cfg.StrictStability = true
	if _, err := prepare(cfg); err == nil {
		t.Error("expected strict stability to fail")
	}
}

func TestWriteWavefieldFormats(t *testing.T) {
	p := seismic.DefaultParams()
	p.NX, p.NZ = 12, 10
	p.SourceX, p.SourceZ = seismic.DefaultSource(p.NX, p.NZ)
	p.NT = 4
	result, err := seismic.New().Run(t.Context(), p)
	if err != nil {
		t.Fatal(err)
	}

	w := output.New(t.TempDir())
	if err := w.Init(); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"png", "svg", "csv", "json"} {
		if err := writeWavefield(w, f, result, nil); err != nil {
			t.Errorf("%s: unexpected error: %v", f, err)
			continue
		}
		if _, err := os.Stat(w.Path("wavefield." + f)); err != nil {
			t.Errorf("%s: expected file: %v", f, err)
		}
	}

	var buf bytes.Buffer
	if err := writeWavefield(w, "term", result, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Synthetic Earthquake Model") {
		t.Error("expected title in terminal output")
	}

	if err := writeWavefield(w, "bmp", result, nil); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteTracesSingleSample(t *testing.T) {
	p := seismic.DefaultParams()
	p.NX, p.NZ = 12, 10
	p.SourceX, p.SourceZ = seismic.DefaultSource(p.NX, p.NZ)
	p.NT = 1

	sim := seismic.New()
	sim.AddReceiver(seismic.Receiver{Name: "r", Z: 2, X: 6})
	result, err := sim.Run(t.Context(), p)
	if err != nil {
		t.Fatal(err)
	}

	w := output.New(t.TempDir())
	if err := w.Init(); err != nil {
		t.Fatal(err)
	}
	if err := writeTraces(w, "png", result, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(w.Path("traces.csv")); err != nil {
		t.Errorf("expected traces.csv: %v", err)
	}
	if _, err := os.Stat(w.Path("traces.png")); !os.IsNotExist(err) {
		t.Error("expected no chart for a single sample")
	}
}

func TestWriteTracesChart(t *testing.T) {
	p := seismic.DefaultParams()
	p.NX, p.NZ = 12, 10
	p.SourceX, p.SourceZ = seismic.DefaultSource(p.NX, p.NZ)
	p.NT = 6

	sim := seismic.New()
	sim.AddReceiver(seismic.Receiver{Name: "r", Z: 2, X: 7})
	result, err := sim.Run(t.Context(), p)
	if err != nil {
		t.Fatal(err)
	}

	w := output.New(t.TempDir())
	if err := w.Init(); err != nil {
		t.Fatal(err)
	}
	if err := writeTraces(w, "png", result, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(w.Path("traces.png")); err != nil {
		t.Errorf("expected traces.png: %v", err)
	}
}
