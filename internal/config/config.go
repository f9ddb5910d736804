// Package config provides YAML-based configuration loading for the camel
// race and its autoplay pace presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/camelrace/internal/race"
)

// CamelRaceConfig contains all configuration for the camel race game.
type CamelRaceConfig struct {
	Autoplay AutoplayConfig `yaml:"autoplay"`
	Engine   EngineConfig   `yaml:"engine"`
	Board    BoardConfig    `yaml:"board"`
	Render   RenderConfig   `yaml:"render"`
}

// AutoplayConfig controls automatic advancing.
type AutoplayConfig struct {
	Enabled       bool `yaml:"enabled"`
	IntervalTicks int  `yaml:"interval_ticks"` // Ticks between automatic advances
}

// EngineConfig controls the race engine.
type EngineConfig struct {
	DebugInvariants bool `yaml:"debug_invariants"`
	StartRace       bool `yaml:"start_race"`
}

// BoardConfig lists markers placed at the start of every race.
type BoardConfig struct {
	Modifiers []ModifierPlacement `yaml:"modifiers"`
}

// ModifierPlacement is a marker kind ("boost" or "trap") on a cell.
type ModifierPlacement struct {
	Cell int    `yaml:"cell"`
	Kind string `yaml:"kind"`
}

// RenderConfig controls what the board view shows.
type RenderConfig struct {
	ShowRanks    bool `yaml:"show_ranks"`
	ShowLastMove bool `yaml:"show_last_move"`
}

// Validate checks the config for values the game cannot use.
func (c CamelRaceConfig) Validate() error {
	if c.Autoplay.IntervalTicks <= 0 {
		return fmt.Errorf("autoplay.interval_ticks must be positive, got %d", c.Autoplay.IntervalTicks)
	}
	seen := make(map[int]int, len(c.Board.Modifiers))
	for i, m := range c.Board.Modifiers {
		if m.Cell <= 0 || m.Cell >= race.BoardSize {
			return fmt.Errorf("board.modifiers[%d]: cell %d outside 1..%d", i, m.Cell, race.BoardSize-1)
		}
		if first, dup := seen[m.Cell]; dup {
			return fmt.Errorf("board.modifiers[%d]: cell %d already listed at board.modifiers[%d]", i, m.Cell, first)
		}
		seen[m.Cell] = i
		kind, ok := race.ParseModifier(m.Kind)
		if !ok || kind == race.ModifierNone {
			return fmt.Errorf("board.modifiers[%d]: unknown kind %q", i, m.Kind)
		}
	}
	return nil
}

// Placements returns the configured markers as engine values.
// Call Validate first; unknown kinds are skipped.
func (b BoardConfig) Placements() map[int]race.Modifier {
	out := make(map[int]race.Modifier, len(b.Modifiers))
	for _, m := range b.Modifiers {
		if kind, ok := race.ParseModifier(m.Kind); ok && kind != race.ModifierNone {
			out[m.Cell] = kind
		}
	}
	return out
}
