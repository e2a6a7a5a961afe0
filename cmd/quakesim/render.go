package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/output"
	"github.com/san-kum/quakesim/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [grid.csv]",
	Short: "render a displacement grid from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  renderGrid,
}

func renderGrid(cmd *cobra.Command, args []string) error {
	g, err := output.ReadGridCSV(args[0])
	if err != nil {
		return err
	}
	nz, nx := g.Shape()
	logger.Debug("loaded grid", "path", args[0], "nz", nz, "nx", nx)

	if format == "term" {
		printHeatmap(os.Stdout, g)
		return nil
	}

	opts := render.DefaultOptions(dx, dz)
	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	var encode func(io.Writer) error
	switch format {
	case "png":
		encode = func(dst io.Writer) error { return render.PNG(dst, g, opts) }
	case "svg":
		encode = func(dst io.Writer) error { return render.SVG(dst, g, opts) }
	default:
		return fmt.Errorf("unknown format: %s (available: png, svg, term)", format)
	}

	w := output.New(outDir)
	if err := w.Init(); err != nil {
		return err
	}
	path, err := w.WriteTo(base+"."+format, encode)
	if err != nil {
		return err
	}
	logger.Info("wrote wavefield", "path", path)
	return nil
}
