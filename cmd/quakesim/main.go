// quakesim simulates a 2-D synthetic earthquake with an explicit
// finite-difference scheme and renders the final displacement field.
//
// Usage:
//
//	quakesim run                 - Run a simulation and write the wavefield
//	quakesim render <grid.csv>   - Render a grid produced elsewhere
//	quakesim live                - Step a simulation in the terminal
//	quakesim compare             - Run every scheme on the same parameters
//	quakesim presets             - List named configurations
//	quakesim config init [path]  - Write the default configuration file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	// Simulation flags shared by run, live and compare
	configFile string
	preset     string
	nx, nz     int
	dx, dz     float64
	vp, dt     float64
	nt         int
	srcX, srcZ int
	amplitude  float64
	scheme     string
	receivers  []string

	// Output flags
	format    string
	outDir    string
	withTrace bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "quakesim",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "quakesim",
	Short:         "2-D seismic wave propagation simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	addSimulationFlags(runCmd)
	addOutputFlags(runCmd)
	runCmd.Flags().StringArrayVar(&receivers, "receiver", nil, "receiver as z,x or name=z,x (repeatable)")
	runCmd.Flags().BoolVar(&withTrace, "trace", false, "also write receiver seismograms")

	addSimulationFlags(liveCmd)
	liveCmd.Flags().StringArrayVar(&receivers, "receiver", nil, "receiver as z,x or name=z,x (repeatable)")
	liveCmd.Flags().IntVar(&stepsPerFrame, "speed", 5, "steps per frame")

	addSimulationFlags(compareCmd)

	renderCmd.Flags().Float64Var(&dx, "dx", 10, "horizontal grid spacing (m)")
	renderCmd.Flags().Float64Var(&dz, "dz", 10, "vertical grid spacing (m)")
	renderCmd.Flags().StringVar(&format, "format", "png", "output format (png, svg, term)")
	renderCmd.Flags().StringVar(&outDir, "out", "out", "output directory")

	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, renderCmd, liveCmd, compareCmd, presetsCmd, configCmd)
}

func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&nx, "nx", 100, "grid points along distance")
	cmd.Flags().IntVar(&nz, "nz", 100, "grid points along depth")
	cmd.Flags().Float64Var(&dx, "dx", 10, "horizontal grid spacing (m)")
	cmd.Flags().Float64Var(&dz, "dz", 10, "vertical grid spacing (m)")
	cmd.Flags().Float64Var(&vp, "vp", 3500, "wave velocity (m/s)")
	cmd.Flags().Float64Var(&dt, "dt", 1e-4, "time step (s)")
	cmd.Flags().IntVar(&nt, "nt", 1000, "number of time levels")
	cmd.Flags().IntVar(&srcX, "src-x", 0, "source column (default nx/2)")
	cmd.Flags().IntVar(&srcZ, "src-z", 0, "source row (default nz/4)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1, "source amplitude")
	cmd.Flags().StringVar(&scheme, "scheme", "inplace", "update scheme (inplace, diffusive, leapfrog)")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&format, "format", "png", "output format (png, svg, csv, json, term)")
	cmd.Flags().StringVar(&outDir, "out", "out", "output directory")
}
