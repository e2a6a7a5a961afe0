package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/viz"
)

var stepsPerFrame int

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "run simulation with live visualization",
	Args:  cobra.NoArgs,
	RunE:  runLive,
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := prepare(cfg)
	if err != nil {
		return err
	}

	m, err := viz.NewLiveModel(p, cfg.GetReceivers(), stepsPerFrame)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
