package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/seismic"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "compare update schemes on the same parameters",
	Args:  cobra.NoArgs,
	RunE:  compareSchemes,
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base, err := cfg.Params()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCHEME\tRATIO\tLIMIT\tMAX|U|\tENERGY\tSTABILITY\tFINITE\tTIME")
	for _, s := range seismic.Schemes {
		p := base
		p.Scheme = s

		sim := seismic.New()
		for _, m := range metrics.Default(p.SourceAmplitude) {
			sim.AddMetric(m)
		}

		start := time.Now()
		result, err := sim.Run(context.Background(), p)
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}

		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.6g\t%.6g\t%.3f\t%t\t%v\n",
			s,
			p.StabilityRatio(),
			p.StabilityLimit(),
			result.Grid.MaxAbs(),
			result.Metrics["energy"],
			result.Metrics["stability"],
			result.Grid.IsFinite(),
			time.Since(start).Round(time.Millisecond),
		)
	}
	return tw.Flush()
}
