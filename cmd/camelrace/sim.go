package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/camelrace/internal/config"
	"github.com/vovakirdan/camelrace/internal/games/camelrace"
	"github.com/vovakirdan/camelrace/internal/race"
)

var (
	flagSteps     int
	flagInitial   bool
	flagModifiers []string
	flagRolls     []string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a race headless and print the board",
	Long: `Run the race engine without the TUI. Markers are placed, the given
rolls are played in order, then --steps random advances follow. Every move
is logged to stderr and the final board is printed to stdout.

Invariants are checked after every operation.

Examples:
  camelrace sim --steps 10 --seed 7
  camelrace sim --initial --roll white=3 --roll blue=1
  camelrace sim --modifier 4=boost --modifier 9=trap --steps 25`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSteps, "steps", 5, "Random advances to play")
	simCmd.Flags().BoolVar(&flagInitial, "initial", false, "Keep the initial line-up instead of a random start")
	simCmd.Flags().StringArrayVar(&flagModifiers, "modifier", nil, "Marker as cell=kind (kind: boost, trap), repeatable")
	simCmd.Flags().StringArrayVar(&flagRolls, "roll", nil, "Scripted roll as camel=die, repeatable")
}

// simOptions describes one headless run.
type simOptions struct {
	Seed      int64
	Steps     int
	Initial   bool
	Modifiers []string
	Rolls     []string
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	cfg, err := config.LoadCamelRace(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e, err := simulate(cfg, simOptions{
		Seed:      seed,
		Steps:     flagSteps,
		Initial:   flagInitial,
		Modifiers: flagModifiers,
		Rolls:     flagRolls,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("seed %d\n\n", seed)
	fmt.Println(renderSim(e))
	return nil
}

// simulate builds an engine and plays opts against it.
func simulate(cfg config.CamelRaceConfig, opts simOptions, logger *log.Logger) (*race.Engine, error) {
	if opts.Steps < 0 {
		return nil, fmt.Errorf("steps must be >= 0, got %d", opts.Steps)
	}

	placements := cfg.Board.Placements()
	for _, raw := range opts.Modifiers {
		cell, m, err := parseModifierFlag(raw)
		if err != nil {
			return nil, err
		}
		placements[cell] = m
	}

	rolls := make([]scriptedRoll, 0, len(opts.Rolls))
	for _, raw := range opts.Rolls {
		r, err := parseRollFlag(raw)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, r)
	}

	e := race.NewEngine(race.NewRandSource(opts.Seed), race.WithDebug(true))
	if !opts.Initial {
		e.StartNewRace()
	}

	for _, cell := range slices.Sorted(maps.Keys(placements)) {
		if !e.SetModifier(cell, placements[cell]) {
			logger.Warn("marker skipped", "cell", cell, "kind", placements[cell])
		}
	}
	if marked := e.State().Board.Modified(); len(marked) > 0 {
		logger.Info("markers placed", "cells", marked)
	}

	for _, r := range rolls {
		if e.Phase() == race.PhaseLegComplete {
			e.Advance()
			logger.Info("leg started", "leg", e.Leg())
		}
		if _, rolled := e.State().Dice.Rolled(r.camel); rolled {
			return nil, fmt.Errorf("roll %s=%d: %s already rolled in leg %d", r.camel, r.die, r.camel, e.Leg())
		}
		e.Roll(r.camel, r.die)
		logMove(logger, e)
	}

	for range opts.Steps {
		if e.Phase() == race.PhaseLegComplete {
			e.Advance()
			logger.Info("leg started", "leg", e.Leg())
			continue
		}
		e.Advance()
		logMove(logger, e)
	}

	return e, nil
}

func logMove(logger *log.Logger, e *race.Engine) {
	move, ok := e.LastMove()
	if !ok {
		return
	}
	logger.Info("camel moved", "leg", e.Leg(), "move", camelrace.DescribeMove(move))
	if e.Phase() == race.PhaseLegComplete {
		logger.Info("leg complete", "leg", e.Leg())
	}
}

type scriptedRoll struct {
	camel race.CamelName
	die   int
}

// parseModifierFlag parses "cell=kind".
func parseModifierFlag(s string) (int, race.Modifier, error) {
	cellText, kindText, ok := strings.Cut(s, "=")
	if !ok {
		return 0, race.ModifierNone, fmt.Errorf("modifier %q: want cell=kind", s)
	}
	cell, err := strconv.Atoi(strings.TrimSpace(cellText))
	if err != nil {
		return 0, race.ModifierNone, fmt.Errorf("modifier %q: bad cell: %w", s, err)
	}
	if cell < 0 || cell >= race.BoardSize {
		return 0, race.ModifierNone, fmt.Errorf("modifier %q: cell must be in [0, %d)", s, race.BoardSize)
	}
	m, ok := race.ParseModifier(strings.ToLower(strings.TrimSpace(kindText)))
	if !ok {
		return 0, race.ModifierNone, fmt.Errorf("modifier %q: unknown kind %q", s, kindText)
	}
	return cell, m, nil
}

// parseRollFlag parses "camel=die".
func parseRollFlag(s string) (scriptedRoll, error) {
	nameText, dieText, ok := strings.Cut(s, "=")
	if !ok {
		return scriptedRoll{}, fmt.Errorf("roll %q: want camel=die", s)
	}
	name, err := race.ParseCamelName(nameText)
	if err != nil {
		return scriptedRoll{}, fmt.Errorf("roll %q: %w", s, err)
	}
	die, err := strconv.Atoi(strings.TrimSpace(dieText))
	if err != nil {
		return scriptedRoll{}, fmt.Errorf("roll %q: bad die: %w", s, err)
	}
	if die < race.MinDie || die > race.MaxDie {
		return scriptedRoll{}, fmt.Errorf("roll %q: die must be %d-%d", s, race.MinDie, race.MaxDie)
	}
	return scriptedRoll{camel: name, die: die}, nil
}

var (
	simBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	simHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	simCell   = lipgloss.NewStyle().Padding(0, 1)
)

func simTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(simBorder).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return simHeader.Padding(0, 1)
			}
			return simCell
		})
}

// renderSim prints the leg summary, the occupied or marked cells and every
// camel.
func renderSim(e *race.Engine) string {
	s := e.State()

	var b strings.Builder
	fmt.Fprintf(&b, "Leg %d, %d of %d dice rolled (%s)\n", e.Leg(), s.Dice.Count(), race.CamelCount, e.Phase())

	track := simTable("Cell", "Marker", "Camels (bottom to top)")
	for _, cell := range s.Board {
		stack := s.CamelsAt(cell.Index)
		if len(stack) == 0 && cell.Modifier == race.ModifierNone {
			continue
		}
		names := make([]string, len(stack))
		for i, c := range stack {
			names[i] = string(c.Name)
		}
		marker := ""
		if cell.Modifier != race.ModifierNone {
			marker = cell.Modifier.String()
		}
		track.Row(strconv.Itoa(cell.Index), marker, strings.Join(names, " "))
	}
	b.WriteString(track.Render())
	b.WriteString("\n")

	camels := simTable("Camel", "Cell", "Rank", "Die")
	for _, c := range s.Camels {
		die := "-"
		if v, ok := s.Dice.Rolled(c.Name); ok {
			die = strconv.Itoa(v)
		}
		camels.Row(string(c.Name), strconv.Itoa(c.Position), strconv.Itoa(c.Rank), die)
	}
	b.WriteString(camels.Render())

	if move, ok := e.LastMove(); ok {
		b.WriteString("\nlast: ")
		b.WriteString(camelrace.DescribeMove(move))
	}
	return b.String()
}
