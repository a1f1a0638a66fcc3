package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/torgrid/torsnake/internal/config"
	"github.com/torgrid/torsnake/internal/core"
	"github.com/torgrid/torsnake/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Fatal("could not load configuration", "error", err)
	}

	// Flag overrides
	if flagCellSize > 0 {
		cfg.Render.CellSize = flagCellSize
	}
	if flagInterval >= 0 {
		cfg.Step.AutoIntervalMs = flagInterval
	}

	// Malformed configuration is fatal here, once, before the game
	// loop ever runs.
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(cfg, rt); err != nil {
		log.Fatal("game ended with an error", "error", err)
	}
}
