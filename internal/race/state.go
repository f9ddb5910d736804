package race

// StartPosition is where every camel waits before a race is started.
const StartPosition = BoardSize - 1

// State is the whole game: board, camels and the current leg's dice.
// It is built from arrays, so assigning a State copies it.
type State struct {
	Board  Board
	Camels Camels
	Dice   Dice
}

// InitialState returns an empty board with every camel stacked on the last
// cell in canonical order and no dice rolled.
func InitialState() State {
	s := State{Board: NewBoard()}
	for i, name := range CamelNames {
		s.Camels[i] = Camel{Name: name, Position: StartPosition, Rank: i}
	}
	return s
}

// Camel returns the named camel.
func (s State) Camel(name CamelName) (Camel, bool) {
	i := name.Index()
	if i < 0 {
		return Camel{}, false
	}
	return s.Camels[i], true
}

// CamelsAt returns the camels on the cell at position, bottom to top.
func (s State) CamelsAt(position int) []Camel {
	return s.Camels.At(Wrap(position))
}

// ReformStack restores dense ranks on the cell at position.
func (s *State) ReformStack(position int) {
	s.Camels.ReformStack(Wrap(position))
}
