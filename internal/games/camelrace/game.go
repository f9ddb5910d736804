// Package camelrace hosts the race engine as a terminal game: it maps input
// frames to engine intents, runs autoplay and draws the board.
package camelrace

import (
	"slices"

	"github.com/vovakirdan/camelrace/internal/config"
	"github.com/vovakirdan/camelrace/internal/core"
	"github.com/vovakirdan/camelrace/internal/race"
	"github.com/vovakirdan/camelrace/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeAuto   Mode = "auto"
)

// Game implements the camel race on top of race.Engine.
type Game struct {
	mode   Mode
	cfg    config.CamelRaceConfig
	engine *race.Engine
	tick   uint64

	cursor       int  // Cell under the editing cursor
	autoplay     bool // Advance on a timer
	paused       bool // Autoplay suspended
	sinceAdvance int  // Ticks since the last automatic advance

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	events []core.Event
}

// Package-level variables for config
var (
	configPath string
	pacePreset config.PacePreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetPacePreset sets the autoplay pace preset.
func SetPacePreset(preset string) {
	pacePreset = config.PacePreset(preset)
}

// New creates a camel race driven by key presses.
func New() *Game {
	return &Game{mode: ModeManual}
}

// NewAuto creates a camel race that advances on its own.
func NewAuto() *Game {
	return &Game{mode: ModeAuto}
}

func init() {
	registry.Register("camelrace", func() registry.Game {
		return New()
	})
	registry.Register("camelrace_auto", func() registry.Game {
		return NewAuto()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAuto {
		return "camelrace_auto"
	}
	return "camelrace"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAuto {
		return "Camel Race (Autoplay)"
	}
	return "Camel Race"
}

// Reset loads configuration and builds a fresh engine seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.events = nil

	raceCfg, err := config.LoadCamelRace(configPath)
	if err != nil {
		g.emit("config error", "path", configPath, "error", err)
		raceCfg = config.DefaultCamelRaceConfig()
	}
	config.ApplyPacePreset(&raceCfg, pacePreset)
	g.configure(raceCfg, race.NewRandSource(cfg.Seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// configure builds the engine from an already loaded config.
func (g *Game) configure(cfg config.CamelRaceConfig, src race.Source) {
	g.cfg = cfg
	g.engine = race.NewEngine(src, race.WithDebug(cfg.Engine.DebugInvariants))
	g.tick = 0
	g.cursor = 1
	g.autoplay = g.mode == ModeAuto || cfg.Autoplay.Enabled
	g.paused = false
	g.sinceAdvance = 0

	if cfg.Engine.StartRace {
		g.startRace()
	}
}

// startRace starts a new race and places the configured markers.
func (g *Game) startRace() {
	g.engine.StartNewRace()

	placements := g.cfg.Board.Placements()
	cells := make([]int, 0, len(placements))
	for cell := range placements {
		cells = append(cells, cell)
	}
	slices.Sort(cells)
	for _, cell := range cells {
		if !g.engine.SetModifier(cell, placements[cell]) {
			g.emit("marker skipped", "cell", cell, "kind", placements[cell].String())
		}
	}

	g.emit("race started", "positions", g.positions(), "markers", g.engine.State().Board.Modified())
}

// Resize follows a terminal resize without restarting the race.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies one tick of input and autoplay.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && g.autoplay {
		g.paused = !g.paused
	}

	switch {
	case in.Has(core.ActionCursorLeft):
		g.cursor = race.Wrap(g.cursor - 1)
	case in.Has(core.ActionCursorRight):
		g.cursor = race.Wrap(g.cursor + 1)
	}

	if in.Has(core.ActionToggleModifier) {
		g.toggleAtCursor()
	}

	for i, action := range core.NudgeActions {
		if in.Has(action) {
			name := race.CamelNames[i]
			g.engine.NudgeCamel(name)
			c, _ := g.engine.State().Camel(name)
			g.emit("camel nudged", "camel", name, "to", c.Position)
		}
	}

	switch {
	case in.Has(core.ActionReset):
		g.engine.Reset()
		g.sinceAdvance = 0
		g.emit("line-up reset")
	case in.Has(core.ActionNewRace):
		g.startRace()
		g.sinceAdvance = 0
	case in.Has(core.ActionAdvance):
		g.advance()
		g.sinceAdvance = 0
	}

	if g.autoplay && !g.paused {
		g.sinceAdvance++
		if g.sinceAdvance >= g.cfg.Autoplay.IntervalTicks {
			g.advance()
			g.sinceAdvance = 0
		}
	}

	return g.result()
}

// toggleAtCursor cycles the marker on the cursor cell.
func (g *Game) toggleAtCursor() {
	before := g.engine.State().Board.ModifierAt(g.cursor)
	after := g.engine.ToggleModifier(g.cursor).Board.ModifierAt(g.cursor)
	if before == after {
		g.emit("marker refused", "cell", g.cursor)
		return
	}
	g.emit("marker changed", "cell", g.cursor, "kind", after.String())
}

// advance plays one turn and reports what happened.
func (g *Game) advance() {
	legDone := g.engine.Phase() == race.PhaseLegComplete
	g.engine.Advance()

	if legDone {
		g.emit("leg started", "leg", g.engine.Leg())
		return
	}

	move, _ := g.engine.LastMove()
	g.emit("camel moved",
		"camel", move.Camel,
		"die", move.Die,
		"from", move.From,
		"to", move.To,
		"modifier", move.Modifier.String(),
		"carried", len(move.Carried)-1,
	)
	if g.engine.Phase() == race.PhaseLegComplete {
		g.emit("leg complete", "leg", g.engine.Leg())
	}
}

func (g *Game) emit(kind string, attrs ...any) {
	g.events = append(g.events, core.Event{Kind: kind, Attrs: attrs})
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = slices.Clone(g.events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// positions returns each camel's cell in canonical order, for logging.
func (g *Game) positions() []int {
	s := g.engine.State()
	out := make([]int, race.CamelCount)
	for i, c := range s.Camels {
		out[i] = c.Position
	}
	return out
}

// PendingEvents returns events raised outside Step, such as during Reset,
// and clears them.
func (g *Game) PendingEvents() []core.Event {
	events := g.events
	g.events = nil
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.State()
	return core.GameState{
		Leg:     g.engine.Leg(),
		Rolled:  s.Dice.Count(),
		Paused:  g.paused || g.tooSmall,
		LegDone: g.engine.Phase() == race.PhaseLegComplete,
	}
}
