package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/config"
)

var force bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "list available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("presets:")
		for _, name := range config.ListPresets() {
			c := config.GetPreset(name)
			fmt.Printf("  %-10s %dx%d %-9s nt=%d\n", name, c.Grid.NZ, c.Grid.NX, c.Physics.Scheme, c.Physics.NT)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "quakesim.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := config.Save(path, config.DefaultConfig()); err != nil {
			return err
		}
		logger.Info("wrote config", "path", path)
		return nil
	},
}
