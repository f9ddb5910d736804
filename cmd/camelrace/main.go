// camelrace runs the camel race board in the terminal.
//
// Usage:
//
//	camelrace list              - List race variants
//	camelrace play [variant]    - Play a race
//	camelrace menu              - Pick a variant interactively
//	camelrace sim               - Run a race headless and print the board
//	camelrace serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible races
//	--config <path>     - Use a custom camelrace.yaml
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/camelrace/internal/games/camelrace"
)

var (
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "camelrace",
	Short: "Camel Race - a stacking camel race in your terminal",
	Long: `Camel Race moves five stacking camels around a sixteen-cell track.
Each leg every camel rolls one die; a camel carries everyone riding on
top of it, and boost or trap markers change how stacks land.

Available commands:
  list     - Show the race variants
  play     - Play a race directly
  menu     - Interactive variant picker
  sim      - Run a race without the TUI and print the result
  serve    - Start SSH server for remote play

Examples:
  camelrace play
  camelrace play --auto --pace fast
  camelrace sim --steps 20 --seed 7 --modifier 4=boost
  camelrace serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		camelrace.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom camelrace.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}
