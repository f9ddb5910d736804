package race

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewEngineStartsAtInitialState(t *testing.T) {
	e := NewEngine(NewSequenceSource(0), WithDebug(true))

	require.Equal(t, InitialState(), e.State())
	require.Equal(t, 1, e.Leg())
	require.Equal(t, PhaseActiveLeg, e.Phase())
	_, ok := e.LastMove()
	require.False(t, ok)
}

func TestAdvanceFromInitialCarriesWholeStack(t *testing.T) {
	// Pick index 0 (white, bottom of the stack) and die face 3.
	e := NewEngine(NewSequenceSource(0, 2), WithDebug(true))

	s := e.Advance()

	require.Equal(t, []CamelName{White, Orange, Yellow, Green, Blue}, names(s.CamelsAt(2)))
	move, ok := e.LastMove()
	require.True(t, ok)
	require.Equal(t, White, move.Camel)
	require.Equal(t, 3, move.Die)
	require.Equal(t, StartPosition, move.From)
	require.Equal(t, 2, move.To)
}

func TestAdvancePicksOnlyUnrolledCamels(t *testing.T) {
	// Index 0 of the remaining list each time, die 1.
	e := NewEngine(NewSequenceSource(0, 0), WithDebug(true))

	e.Advance()
	e.Advance()

	s := e.State()
	_, whiteRolled := s.Dice.Rolled(White)
	_, orangeRolled := s.Dice.Rolled(Orange)
	require.True(t, whiteRolled)
	require.True(t, orangeRolled)
	require.Equal(t, []CamelName{Yellow, Green, Blue}, s.Dice.Available())
}

func TestLegCompletion(t *testing.T) {
	e := NewEngine(NewRandSource(7), WithDebug(true))
	e.StartNewRace()

	for i := 0; i < CamelCount; i++ {
		require.Equal(t, PhaseActiveLeg, e.Phase())
		e.Advance()
		require.Equal(t, i+1, e.State().Dice.Count(), "each advance rolls a new camel")
	}
	require.Equal(t, PhaseLegComplete, e.Phase())

	e.ToggleModifier(4)
	e.ToggleModifier(10)
	e.ToggleModifier(10)
	before := e.State()
	require.Len(t, before.Board.Modified(), 2)

	after := e.Advance()

	require.Equal(t, 0, after.Dice.Count())
	require.Empty(t, after.Board.Modified())
	require.Equal(t, before.Camels, after.Camels, "leg reset must not move camels")
	require.Equal(t, 2, e.Leg())
	require.Equal(t, PhaseActiveLeg, e.Phase())
	_, ok := e.LastMove()
	require.False(t, ok)
}

func TestAdvanceDieRange(t *testing.T) {
	e := NewEngine(NewRandSource(99), WithDebug(true))
	for i := 0; i < 600; i++ {
		e.Advance()
		if move, ok := e.LastMove(); ok {
			require.GreaterOrEqual(t, move.Die, MinDie)
			require.LessOrEqual(t, move.Die, MaxDie)
		}
	}
}

func TestStartNewRaceStacksInPlacementOrder(t *testing.T) {
	e := NewEngine(NewSequenceSource(0, 0, 1, 2, 1), WithDebug(true))
	e.ToggleModifier(6)

	s := e.StartNewRace()

	require.Equal(t, []CamelName{White, Orange}, names(s.CamelsAt(0)))
	require.Equal(t, []CamelName{Yellow, Blue}, names(s.CamelsAt(1)))
	require.Equal(t, []CamelName{Green}, names(s.CamelsAt(2)))
	require.Empty(t, s.Board.Modified())
	require.Equal(t, 0, s.Dice.Count())
}

func TestStartNewRaceDistribution(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		e := NewEngine(NewRandSource(seed))
		s := e.StartNewRace()

		for _, c := range s.Camels {
			require.Contains(t, []int{0, 1, 2}, c.Position, "seed %d", seed)
		}
		require.NoError(t, CheckInvariants(s), "seed %d", seed)
	}
}

func TestStartNewRaceResetsLegCounter(t *testing.T) {
	e := NewEngine(NewRandSource(3))
	for i := 0; i < 12; i++ {
		e.Advance()
	}
	require.Equal(t, 3, e.Leg())

	e.StartNewRace()
	require.Equal(t, 1, e.Leg())
}

func TestToggleModifierThroughEngine(t *testing.T) {
	e := NewEngine(NewRandSource(1), WithDebug(true))

	e.ToggleModifier(5)
	s := e.ToggleModifier(6)
	require.Equal(t, ModifierBoost, s.Board.ModifierAt(5))
	require.Equal(t, ModifierNone, s.Board.ModifierAt(6))

	e.ToggleModifier(5)
	s = e.ToggleModifier(5)
	require.Equal(t, ModifierNone, s.Board.ModifierAt(5))
}

func TestRollSpecificDie(t *testing.T) {
	e := NewEngine(NewRandSource(1), WithDebug(true))
	e.ToggleModifier(2)
	e.ToggleModifier(2)

	s := e.Roll(Green, 3)

	// Green carries blue onto the empty trap cell in the same order.
	require.Equal(t, []CamelName{Green, Blue}, names(s.CamelsAt(2)))
	require.Equal(t, []CamelName{White, Orange, Yellow}, names(s.CamelsAt(StartPosition)))
}

func TestStateIsCopy(t *testing.T) {
	e := NewEngine(NewRandSource(1))
	s := e.State()
	s.Camels[0].Position = 3
	s.Board.ToggleModifier(4)

	require.Equal(t, InitialState(), e.State())
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []State {
		e := NewEngine(NewRandSource(2024), WithDebug(true))
		var states []State
		states = append(states, e.StartNewRace())
		for i := 0; i < 40; i++ {
			states = append(states, e.Advance())
		}
		return states
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different races (-first +second):\n%s", diff)
	}
}

// TestInvariantsUnderRandomIntents drives the engine with a random mix of
// every intent and checks the state after each one.
func TestInvariantsUnderRandomIntents(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		intents := rand.New(rand.NewSource(seed))
		e := NewEngine(NewRandSource(seed * 31))
		if seed%2 == 0 {
			e.StartNewRace()
		}

		for step := 0; step < 400; step++ {
			var s State
			switch intents.Intn(10) {
			case 0, 1:
				s = e.ToggleModifier(intents.Intn(BoardSize+2) - 1)
			case 2:
				s = e.NudgeCamel(CamelNames[intents.Intn(CamelCount)])
			case 3:
				if intents.Intn(20) == 0 {
					s = e.StartNewRace()
				} else {
					s = e.Advance()
				}
			default:
				s = e.Advance()
			}
			require.NoError(t, CheckInvariants(s), "seed %d step %d", seed, step)

			rolled := s.Dice.Count()
			require.Len(t, s.Dice.Available(), CamelCount-rolled)
		}
	}
}

func TestDebugPanicsOnCorruptState(t *testing.T) {
	e := NewEngine(NewRandSource(1), WithDebug(true))
	e.state.Camels[0].Rank = 9

	require.Panics(t, func() { e.ToggleModifier(3) })
}

func TestCheckInvariantsReportsViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{"position off board", func(s *State) { s.Camels[0].Position = BoardSize }},
		{"duplicate rank", func(s *State) { s.Camels[1].Rank = 0 }},
		{"gap in ranks", func(s *State) { s.Camels[4].Rank = 7 }},
		{"modifier on cell zero", func(s *State) { s.Board[0].Modifier = ModifierTrap }},
		{"adjacent modifiers", func(s *State) {
			s.Board[3].Modifier = ModifierBoost
			s.Board[4].Modifier = ModifierTrap
		}},
		{"adjacent through wrap", func(s *State) {
			s.Board[15].Modifier = ModifierBoost
			s.Board[0].Modifier = ModifierBoost
		}},
		{"die out of range", func(s *State) { s.Dice[2] = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := InitialState()
			tt.mutate(&s)
			require.Error(t, CheckInvariants(s))
		})
	}
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(4, -1, 2)

	require.Equal(t, 1, src.Intn(3))
	require.Equal(t, 2, src.Intn(3))
	require.Equal(t, 2, src.Intn(3))
	require.Equal(t, 1, src.Intn(3), "wraps to the first value")
	require.Equal(t, 4, src.pos)
	require.Equal(t, 0, NewSequenceSource().Intn(5))
}

func TestSetModifier(t *testing.T) {
	e := NewEngine(NewRandSource(1), WithDebug(true))

	require.True(t, e.SetModifier(4, ModifierTrap))
	require.Equal(t, ModifierTrap, e.State().Board.ModifierAt(4))

	require.True(t, e.SetModifier(4, ModifierBoost))
	require.Equal(t, ModifierBoost, e.State().Board.ModifierAt(4))

	require.False(t, e.SetModifier(5, ModifierTrap), "adjacent to cell 4")
	require.False(t, e.SetModifier(0, ModifierBoost))
	require.False(t, e.SetModifier(BoardSize, ModifierBoost))

	require.True(t, e.SetModifier(4, ModifierNone))
	require.Empty(t, e.State().Board.Modified())
}
