// Command uboat runs the Lone U-Boat hex chart prototype in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mkessler/lone-uboat/internal/config"
	"github.com/mkessler/lone-uboat/internal/scenario"
	"github.com/mkessler/lone-uboat/internal/sprite"
	"github.com/mkessler/lone-uboat/internal/tui"
)

func main() {
	// Log to stderr; the TUI owns stdout while the alt screen is up.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	var (
		sc  *scenario.Scenario
		err error
	)
	if cfg.ScenarioPath != "" {
		sc, err = scenario.Load(cfg.ScenarioPath)
	} else {
		sc, err = scenario.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		os.Exit(1)
	}

	glyphs := sprite.LoadOrFallback(cfg.SpritePath, logger)

	if err := tui.Run(sc, glyphs, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
