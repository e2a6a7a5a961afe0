package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/analysis"
	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/output"
	"github.com/san-kum/quakesim/internal/render"
	"github.com/san-kum/quakesim/internal/seismic"
	"github.com/san-kum/quakesim/internal/viz"
)

const (
	termCols        = 80
	termRows        = 30
	arrivalFraction = 0.5
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run simulation and render the final wavefield",
	Args:  cobra.NoArgs,
	RunE:  runSimulation,
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := prepare(cfg)
	if err != nil {
		return err
	}

	sim := seismic.New()
	for _, m := range metrics.Default(p.SourceAmplitude) {
		sim.AddMetric(m)
	}
	for _, r := range cfg.GetReceivers() {
		sim.AddReceiver(r)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running simulation", "grid", fmt.Sprintf("%dx%d", p.NZ, p.NX), "steps", p.NT-1, "scheme", p.Scheme)
	start := time.Now()
	result, err := sim.Run(ctx, p)
	if err != nil {
		return err
	}
	logger.Info("completed", "elapsed", time.Since(start), "steps", result.StepsTaken, "time", fmt.Sprintf("%.4fs", p.Duration()))
	for name, val := range result.Metrics {
		logger.Info("metric", "name", name, "value", val)
	}
	if !result.Grid.IsFinite() {
		logger.Warn("wavefield contains non-finite values")
	}

	w := output.New(cfg.Output.Dir)
	if cfg.Output.Format != "term" {
		if err := w.Init(); err != nil {
			return err
		}
	}
	if err := writeWavefield(w, cfg.Output.Format, result, os.Stdout); err != nil {
		return err
	}

	if cfg.Output.Trace && len(result.Traces) > 0 {
		return writeTraces(w, cfg.Output.Format, result, os.Stdout)
	}
	return nil
}

// writeWavefield emits result in format. The term format prints to stdout
// instead of the output directory.
func writeWavefield(w *output.Writer, format string, result *seismic.Result, stdout io.Writer) error {
	opts := render.OptionsFor(result.Params)
	var (
		path string
		err  error
	)
	switch format {
	case "png":
		path, err = w.WriteTo("wavefield.png", func(dst io.Writer) error {
			return render.PNG(dst, result.Grid, opts)
		})
	case "svg":
		path, err = w.WriteTo("wavefield.svg", func(dst io.Writer) error {
			return render.SVG(dst, result.Grid, opts)
		})
	case "csv":
		path, err = w.WriteGridCSV("wavefield.csv", result.Grid)
	case "json":
		path, err = w.WriteGridJSON("wavefield.json", result)
	case "term":
		printHeatmap(stdout, result.Grid)
		return nil
	default:
		return fmt.Errorf("unknown format: %s (available: png, svg, csv, json, term)", format)
	}
	if err != nil {
		return err
	}
	logger.Info("wrote wavefield", "path", path)
	return nil
}

func printHeatmap(stdout io.Writer, g *seismic.Grid) {
	fmt.Fprintln(stdout, render.DefaultTitle)
	fmt.Fprintln(stdout, viz.Heatmap(g, termCols, termRows, 0))
	fmt.Fprintln(stdout, viz.ColorBar(40, g.MaxAbs()))
}

func writeTraces(w *output.Writer, format string, result *seismic.Result, stdout io.Writer) error {
	p, traces := result.Params, result.Traces
	for _, tr := range traces {
		r := tr.Receiver
		arrival := analysis.FirstArrival(tr.Samples, tr.DT, arrivalFraction)
		logger.Info("receiver",
			"name", r.Name,
			"peak", tr.Samples[peakIndex(tr.Samples)],
			"arrival_s", arrival,
			"apparent_vp", analysis.ApparentVelocity(p.SourceZ, p.SourceX, r.Z, r.X, p.DX, p.DZ, arrival),
			"dominant_hz", analysis.DominantFrequency(tr.Samples, tr.DT),
		)
	}

	if format == "term" {
		for _, tr := range traces {
			fmt.Fprintln(stdout, viz.TracePlot(tr, termCols, 10))
		}
		return nil
	}

	path, err := w.WriteTracesCSV("traces.csv", traces)
	if err != nil {
		return err
	}
	logger.Info("wrote traces", "path", path)

	if len(traces[0].Samples) < 2 {
		logger.Info("skipping seismogram chart", "samples", len(traces[0].Samples))
		return nil
	}
	path, err = w.WriteTo("traces.png", func(dst io.Writer) error {
		return render.Traces(dst, traces, "Synthetic Seismograms")
	})
	if err != nil {
		return err
	}
	logger.Info("wrote seismograms", "path", path)
	return nil
}

func peakIndex(samples []float64) int {
	best := 0
	for i, v := range samples {
		if math.Abs(v) > math.Abs(samples[best]) {
			best = i
		}
	}
	return best
}
