package race

// BoardSize is the number of cells on the ring.
const BoardSize = 16

// Modifier is a player-placed marker on a cell.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierBoost
	ModifierTrap
)

// String returns a human-readable name for the modifier.
func (m Modifier) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierBoost:
		return "boost"
	case ModifierTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// ParseModifier converts a config or CLI value to a Modifier.
func ParseModifier(s string) (Modifier, bool) {
	switch s {
	case "none", "":
		return ModifierNone, true
	case "boost", "+":
		return ModifierBoost, true
	case "trap", "-":
		return ModifierTrap, true
	default:
		return ModifierNone, false
	}
}

// next returns the following modifier in the None -> Boost -> Trap cycle.
func (m Modifier) next() Modifier {
	switch m {
	case ModifierNone:
		return ModifierBoost
	case ModifierBoost:
		return ModifierTrap
	default:
		return ModifierNone
	}
}

// Cell is one square of the ring.
type Cell struct {
	Index    int
	Modifier Modifier
}

// Board is the fixed ring of cells.
type Board [BoardSize]Cell

// NewBoard returns a board with every cell unmodified.
func NewBoard() Board {
	var b Board
	for i := range b {
		b[i].Index = i
	}
	return b
}

// Wrap maps any integer onto a ring position.
func Wrap(position int) int {
	return ((position % BoardSize) + BoardSize) % BoardSize
}

// ModifierAt returns the modifier on the cell at position.
func (b Board) ModifierAt(position int) Modifier {
	return b[Wrap(position)].Modifier
}

// CanPlace reports whether a modifier may be set or cycled at position:
// never on cell 0 and never next to another marker.
func (b Board) CanPlace(position int) bool {
	if position <= 0 || position >= BoardSize {
		return false
	}
	return b.ModifierAt(position-1) == ModifierNone && b.ModifierAt(position+1) == ModifierNone
}

// ToggleModifier cycles the cell's modifier None -> Boost -> Trap -> None.
// Disallowed cells are left untouched. Reports whether the cell changed.
func (b *Board) ToggleModifier(position int) bool {
	if !b.CanPlace(position) {
		return false
	}
	b[position].Modifier = b[position].Modifier.next()
	return true
}

// ResetModifiers clears every cell.
func (b *Board) ResetModifiers() {
	for i := range b {
		b[i].Modifier = ModifierNone
	}
}

// Modified returns the indices of cells carrying a modifier.
func (b Board) Modified() []int {
	var cells []int
	for i := range b {
		if b[i].Modifier != ModifierNone {
			cells = append(cells, i)
		}
	}
	return cells
}
