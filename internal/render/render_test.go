package render

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/san-kum/quakesim/internal/seismic"
)

func TestSeismicStops(t *testing.T) {
	tests := []struct {
		t    float64
		want color.RGBA
	}{
		{0, color.RGBA{0, 0, 77, 255}},
		{0.25, color.RGBA{0, 0, 255, 255}},
		{0.5, color.RGBA{255, 255, 255, 255}},
		{0.75, color.RGBA{255, 0, 0, 255}},
		{1, color.RGBA{128, 0, 0, 255}},
		{-3, color.RGBA{0, 0, 77, 255}},
		{7, color.RGBA{128, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := Seismic(tt.t); got != tt.want {
			t.Errorf("Seismic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if Normalize(0, 2) != 0.5 {
		t.Error("zero should map to the centre")
	}
	if Normalize(2, 2) != 1 || Normalize(-2, 2) != 0 {
		t.Error("limits should map to the ends")
	}
	if Normalize(3, 0) != 0.5 {
		t.Error("zero limit should map to the centre")
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{255, 16, 1, 255}); got != "#ff1001" {
		t.Errorf("Hex = %s", got)
	}
}

func testGrid() *seismic.Grid {
	g := seismic.NewGrid(10, 10)
	g.Set(2, 3, 1)
	g.Set(5, 5, -0.5)
	return g
}

func TestImageLayout(t *testing.T) {
	o := DefaultOptions(10, 10)
	o.Scale = 5
	img := Image(testGrid(), o)

	b := img.Bounds()
	if b.Dx() != 260 || b.Dy() != 145 {
		t.Fatalf("expected 260x145 image, got %dx%d", b.Dx(), b.Dy())
	}

	if got := img.RGBAAt(80+3*5+2, 40+2*5+2); got != (color.RGBA{128, 0, 0, 255}) {
		t.Errorf("positive peak should be dark red, got %v", got)
	}
	if got := img.RGBAAt(80+5*5+2, 40+5*5+2); got != Seismic(0.25) {
		t.Errorf("half negative should be blue, got %v", got)
	}
	if got := img.RGBAAt(80+8*5+2, 40+8*5+2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("zero should be white, got %v", got)
	}
}

func TestPNGEncodes(t *testing.T) {
	p := seismic.DefaultParams()
	p.NT = 20
	result, err := seismic.New().Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var buf bytes.Buffer
	if err := PNG(&buf, result.Grid, OptionsFor(p)); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.Width != 80+500+20+20+90 || cfg.Height != 40+500+55 {
		t.Errorf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSVG(t *testing.T) {
	o := DefaultOptions(10, 10)
	o.Scale = 4
	svg := SVGString(testGrid(), o)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not an svg document")
	}
	for _, want := range []string{DefaultTitle, DefaultXLabel, DefaultYLabel, DefaultBarLabel, ">100<"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(svg, `fill="#800000"`); n != 1 {
		t.Errorf("expected one peak cell, got %d", n)
	}
}

func TestTraces(t *testing.T) {
	if _, err := TraceChart(nil, "empty"); err == nil {
		t.Error("expected error for no traces")
	}

	p := seismic.DefaultParams()
	p.NT = 100
	s := seismic.New()
	s.AddReceiver(seismic.Receiver{Name: "near", Z: 25, X: 52})
	s.AddReceiver(seismic.Receiver{Name: "edge", Z: 0, X: 0})
	result, err := s.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Traces(&buf, result.Traces, "Seismogram"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := png.DecodeConfig(&buf); err != nil {
		t.Errorf("trace chart is not a png: %v", err)
	}
}

func TestTracesFlat(t *testing.T) {
	tr := seismic.Trace{Receiver: seismic.Receiver{Name: "flat"}, DT: 0.1, Samples: []float64{0, 0, 0}}
	var buf bytes.Buffer
	if err := Traces(&buf, []seismic.Trace{tr}, "flat"); err != nil {
		t.Fatalf("flat trace should render: %v", err)
	}
}

func TestDepthAxisIncreasesDownward(t *testing.T) {
	o := DefaultOptions(10, 10)
	o.Scale = 4
	svg := SVGString(testGrid(), o)

	// plot spans y=40..80: surface label at the top, nz·dz at the bottom
	for _, want := range []string{
		`<text x="72" y="44" text-anchor="end">0</text>`,
		`<text x="72" y="84" text-anchor="end">100</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing depth label %q", want)
		}
	}
}
