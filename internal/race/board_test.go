package race

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleModifierCycles(t *testing.T) {
	b := NewBoard()

	require.True(t, b.ToggleModifier(5))
	require.Equal(t, ModifierBoost, b.ModifierAt(5))
	require.True(t, b.ToggleModifier(5))
	require.Equal(t, ModifierTrap, b.ModifierAt(5))
	require.True(t, b.ToggleModifier(5))
	require.Equal(t, ModifierNone, b.ModifierAt(5))
}

func TestToggleModifierAdjacencyBlocked(t *testing.T) {
	b := NewBoard()
	b.ToggleModifier(5)

	require.False(t, b.ToggleModifier(6))
	require.False(t, b.ToggleModifier(4))
	require.Equal(t, ModifierNone, b.ModifierAt(6))
	require.Equal(t, ModifierNone, b.ModifierAt(4))

	// Two cells away is fine.
	require.True(t, b.ToggleModifier(7))
	require.Equal(t, ModifierBoost, b.ModifierAt(7))
}

func TestToggleModifierMarkedCellWithMarkedNeighbourStuck(t *testing.T) {
	b := NewBoard()
	b.ToggleModifier(5)
	b.ToggleModifier(7)

	// Cell 6 is blocked both ways; cell 5 itself still cycles.
	require.False(t, b.ToggleModifier(6))
	require.True(t, b.ToggleModifier(5))
	require.Equal(t, ModifierTrap, b.ModifierAt(5))
}

func TestToggleModifierCellZero(t *testing.T) {
	b := NewBoard()
	require.False(t, b.ToggleModifier(0))
	require.Equal(t, ModifierNone, b.ModifierAt(0))
}

func TestToggleModifierOutOfRange(t *testing.T) {
	b := NewBoard()
	require.False(t, b.ToggleModifier(-1))
	require.False(t, b.ToggleModifier(BoardSize))
	require.Empty(t, b.Modified())
}

func TestToggleModifierRingEnd(t *testing.T) {
	b := NewBoard()
	require.True(t, b.ToggleModifier(15))
	require.False(t, b.ToggleModifier(14))
	// Cell 1 neighbours 0 and 2, neither marked.
	require.True(t, b.ToggleModifier(1))
	require.Equal(t, []int{1, 15}, b.Modified())
}

func TestResetModifiers(t *testing.T) {
	b := NewBoard()
	b.ToggleModifier(3)
	b.ToggleModifier(9)
	b.ToggleModifier(9)

	b.ResetModifiers()

	for i := range b {
		require.Equal(t, ModifierNone, b[i].Modifier, "cell %d", i)
		require.Equal(t, i, b[i].Index)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{15, 15},
		{16, 0},
		{17, 1},
		{-1, 15},
		{-16, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseModifier(t *testing.T) {
	m, ok := ParseModifier("trap")
	require.True(t, ok)
	require.Equal(t, ModifierTrap, m)

	m, ok = ParseModifier("+")
	require.True(t, ok)
	require.Equal(t, ModifierBoost, m)

	_, ok = ParseModifier("oasis")
	require.False(t, ok)
}
