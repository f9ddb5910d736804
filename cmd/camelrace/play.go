package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/camelrace/internal/config"
	"github.com/vovakirdan/camelrace/internal/core"
	"github.com/vovakirdan/camelrace/internal/games/camelrace"
	"github.com/vovakirdan/camelrace/internal/platform/tui"
	"github.com/vovakirdan/camelrace/internal/registry"
)

var (
	flagAuto    bool
	flagPace    string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a race",
	Long: `Start a race in the terminal. The variant defaults to "camelrace".

Controls:
  Space/Enter  - Roll the next die
  N            - New race (random line-up)
  R            - Back to the initial line-up
  Left/Right   - Move the cell cursor
  T            - Cycle boost/trap marker under the cursor
  1-5          - Nudge white/orange/yellow/green/blue one cell
  P            - Pause autoplay
  E            - Event log
  ?            - All keys
  Q/Ctrl+C     - Quit

Pace options (autoplay):
  slow, normal, fast

Examples:
  camelrace play
  camelrace play --auto --pace fast
  camelrace play --seed 42 --log-file race.log
  camelrace play --config ./my-race.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Advance automatically")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Autoplay pace: "+pacesHelp())
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write race events to this file")
}

func pacesHelp() string {
	return fmt.Sprintf("%s, %s, %s", config.PaceSlow, config.PaceNormal, config.PaceFast)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "camelrace"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagAuto {
		gameID = "camelrace_auto"
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown race %q, run 'camelrace list' to see them", gameID)
	}

	if flagPace != "" && config.IntervalForPace(config.PacePreset(flagPace)) == 0 {
		return fmt.Errorf("unknown pace %q, want one of %s", flagPace, pacesHelp())
	}
	camelrace.SetPacePreset(flagPace)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("error running race: %w", err)
	}
	return nil
}

// runtimeConfig sizes the race to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// sessionLogger logs to --log-file, or nowhere while the TUI owns the
// terminal.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "camelrace")
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "camelrace")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
