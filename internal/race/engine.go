// Package race implements the camel race leg engine: a 16-cell ring, five
// stacking camels, per-leg dice and boost/trap markers. It has no UI or I/O
// dependencies; all randomness comes from an injected Source.
package race

import "fmt"

// Phase is the leg controller's state.
type Phase int

const (
	PhaseActiveLeg   Phase = iota // some camels still have to roll
	PhaseLegComplete              // every camel rolled; next advance starts a leg
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseLegComplete {
		return "leg complete"
	}
	return "active leg"
}

// Option configures an Engine.
type Option func(*Engine)

// WithDebug enables invariant checks after every operation. A violation
// panics.
func WithDebug(enabled bool) Option {
	return func(e *Engine) {
		e.debug = enabled
	}
}

// Engine owns a State and applies intents to it. It is not safe for
// concurrent use; callers serialize access.
type Engine struct {
	state    State
	rng      Source
	leg      int
	debug    bool
	lastMove *Move
}

// NewEngine returns an engine holding InitialState.
func NewEngine(src Source, opts ...Option) *Engine {
	if src == nil {
		panic("race: nil randomness source")
	}
	e := &Engine{rng: src}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Phase reports whether the current leg still has camels to roll.
func (e *Engine) Phase() Phase {
	if e.state.Dice.Full() {
		return PhaseLegComplete
	}
	return PhaseActiveLeg
}

// Leg returns the 1-based leg number since the race started.
func (e *Engine) Leg() int {
	return e.leg
}

// LastMove returns the most recent die roll of the current leg.
func (e *Engine) LastMove() (Move, bool) {
	if e.lastMove == nil {
		return Move{}, false
	}
	return *e.lastMove, true
}

// Reset restores InitialState.
func (e *Engine) Reset() State {
	e.state = InitialState()
	e.leg = 1
	e.lastMove = nil
	e.check("reset")
	return e.state
}

// StartNewRace clears the board and dice and drops each camel, in canonical
// order, onto a random cell among the first three. A camel lands on top of
// whoever was placed on that cell before it.
func (e *Engine) StartNewRace() State {
	s := InitialState()
	for i := range s.Camels {
		pos := e.rng.Intn(3)
		s.Camels[i].Rank = len(s.Camels.indicesAt(pos))
		s.Camels[i].Position = pos
	}
	e.state = s
	e.leg = 1
	e.lastMove = nil
	e.check("start race")
	return e.state
}

// Advance plays one turn. While the leg is active a random unrolled camel
// rolls a random die; once every camel has rolled the dice and modifiers are
// cleared for a new leg and no camel moves.
func (e *Engine) Advance() State {
	if e.Phase() == PhaseLegComplete {
		e.state.Dice.Clear()
		e.state.Board.ResetModifiers()
		e.leg++
		e.lastMove = nil
		e.check("new leg")
		return e.state
	}

	available := e.state.Dice.Available()
	name := available[e.rng.Intn(len(available))]
	die := MinDie + e.rng.Intn(MaxDie-MinDie+1)
	move := Resolve(&e.state, name, die)
	e.lastMove = &move
	e.check("advance")
	return e.state
}

// Roll resolves a specific die for a specific camel, bypassing the random
// pick. The camel must not have rolled this leg.
func (e *Engine) Roll(name CamelName, die int) State {
	move := Resolve(&e.state, name, die)
	e.lastMove = &move
	e.check("roll")
	return e.state
}

// ToggleModifier cycles the marker on a cell. Illegal placements are ignored.
func (e *Engine) ToggleModifier(cell int) State {
	e.state.Board.ToggleModifier(cell)
	e.check("toggle modifier")
	return e.state
}

// SetModifier toggles a cell until it carries m, following the same
// placement rules as ToggleModifier. Reports whether the cell ended up with m.
func (e *Engine) SetModifier(cell int, m Modifier) bool {
	if cell < 0 || cell >= BoardSize {
		return false
	}
	ok := true
	for range 3 {
		if e.state.Board.ModifierAt(cell) == m {
			break
		}
		if !e.state.Board.ToggleModifier(cell) {
			ok = false
			break
		}
	}
	e.check("set modifier")
	return ok && e.state.Board.ModifierAt(cell) == m
}

// NudgeCamel moves a single camel one cell forward onto the top of the next
// stack, ignoring dice, modifiers and the leg.
func (e *Engine) NudgeCamel(name CamelName) State {
	Nudge(&e.state, name)
	e.check("nudge")
	return e.state
}

func (e *Engine) check(op string) {
	if !e.debug {
		return
	}
	if err := CheckInvariants(e.state); err != nil {
		panic(fmt.Sprintf("race: %s: %v", op, err))
	}
}
