package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/camelrace/internal/platform/tui"
	"github.com/vovakirdan/camelrace/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a race variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a race.
Quitting a race returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select race
  Q/Esc        - Quit

Examples:
  camelrace menu
  camelrace menu --fps 60`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		if result.Quit || result.GameID == "" {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating race: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running race: %v\n", err)
		}
	}
}
