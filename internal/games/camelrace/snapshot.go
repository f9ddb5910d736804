package camelrace

import "github.com/vovakirdan/camelrace/internal/race"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Leg      int
	Phase    race.Phase
	Cursor   int
	Autoplay bool
	Paused   bool
	Race     race.State
	LastMove *race.Move
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Leg:      g.engine.Leg(),
		Phase:    g.engine.Phase(),
		Cursor:   g.cursor,
		Autoplay: g.autoplay,
		Paused:   g.paused,
		Race:     g.engine.State(),
	}
	if move, ok := g.engine.LastMove(); ok {
		snap.LastMove = &move
	}
	return snap
}
