package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/config"
	"github.com/san-kum/quakesim/internal/seismic"
)

// resolveConfig layers the preset, the config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("nx") {
		cfg.Grid.NX = nx
	}
	if f.Changed("nz") {
		cfg.Grid.NZ = nz
	}
	if f.Changed("dx") {
		cfg.Grid.DX = dx
	}
	if f.Changed("dz") {
		cfg.Grid.DZ = dz
	}
	if f.Changed("vp") {
		cfg.Physics.VP = vp
	}
	if f.Changed("dt") {
		cfg.Physics.DT = dt
	}
	if f.Changed("nt") {
		cfg.Physics.NT = nt
	}
	if f.Changed("scheme") {
		cfg.Physics.Scheme = scheme
	}
	if f.Changed("src-x") {
		x := srcX
		cfg.Source.X = &x
	}
	if f.Changed("src-z") {
		z := srcZ
		cfg.Source.Z = &z
	}
	if f.Changed("amplitude") {
		cfg.Source.Amplitude = amplitude
	}
	if f.Changed("format") {
		cfg.Output.Format = format
	}
	if f.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if f.Changed("trace") {
		cfg.Output.Trace = withTrace
	}
	if f.Changed("receiver") {
		cfg.Receivers = cfg.Receivers[:0]
		for _, spec := range receivers {
			r, err := parseReceiver(spec)
			if err != nil {
				return nil, err
			}
			cfg.Receivers = append(cfg.Receivers, config.ReceiverConfig{Name: r.Name, Z: r.Z, X: r.X})
		}
	}
	return cfg, nil
}

// parseReceiver accepts "z,x" or "name=z,x".
func parseReceiver(spec string) (seismic.Receiver, error) {
	var r seismic.Receiver
	coords := spec
	if name, rest, ok := strings.Cut(spec, "="); ok {
		r.Name = strings.TrimSpace(name)
		coords = rest
	}
	zs, xs, ok := strings.Cut(coords, ",")
	if !ok {
		return r, fmt.Errorf("invalid receiver %q: want z,x", spec)
	}
	z, err := strconv.Atoi(strings.TrimSpace(zs))
	if err != nil {
		return r, fmt.Errorf("invalid receiver %q: %w", spec, err)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return r, fmt.Errorf("invalid receiver %q: %w", spec, err)
	}
	r.Z, r.X = z, x
	return r, nil
}

// prepare converts cfg into parameters and applies the stability policy.
func prepare(cfg *config.Config) (seismic.Params, error) {
	p, err := cfg.Params()
	if err != nil {
		return p, err
	}
	logger.Debug("parameters",
		"grid", fmt.Sprintf("%dx%d", p.NZ, p.NX),
		"dx", p.DX, "dz", p.DZ, "vp", p.VP, "dt", p.DT, "nt", p.NT,
		"source", fmt.Sprintf("(%d,%d)", p.SourceZ, p.SourceX),
		"scheme", p.Scheme,
	)
	if err := p.CheckStability(); err != nil {
		if cfg.StrictStability {
			return p, err
		}
		logger.Warn("scheme may be unstable", "error", err)
	}
	return p, nil
}
