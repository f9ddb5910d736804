package race

import "fmt"

// Move describes one resolved die roll.
type Move struct {
	Camel    CamelName
	Die      int
	From     int
	To       int
	Modifier Modifier    // modifier on the landing cell
	Carried  []CamelName // moving camel first, then those that rode on it
}

// Resolve applies a die roll for the named camel. The camel and every camel
// stacked above it move together onto the landing cell. A trap on that cell
// slides the group underneath the camels already there; otherwise the group
// lands on top. Both the departed and the landing cell are renumbered.
//
// The camel must not have rolled yet this leg and die must be a valid face;
// anything else is a caller bug and panics.
func Resolve(s *State, name CamelName, die int) Move {
	ci := name.Index()
	if ci < 0 {
		panic(fmt.Sprintf("race: resolve unknown camel %q", name))
	}
	if die < MinDie || die > MaxDie {
		panic(fmt.Sprintf("race: die value %d out of range", die))
	}
	if _, rolled := s.Dice.Rolled(name); rolled {
		panic(fmt.Sprintf("race: camel %q already rolled this leg", name))
	}

	from := s.Camels[ci].Position
	baseRank := s.Camels[ci].Rank
	to := Wrap(from + die)

	s.Dice.Record(name, die)
	mod := s.Board.ModifierAt(to)

	var carried []int
	for _, i := range s.Camels.indicesAt(from) {
		if s.Camels[i].Rank >= baseRank {
			carried = append(carried, i)
		}
	}
	present := s.Camels.indicesAt(to)

	var stack []int
	if mod == ModifierTrap {
		stack = append(append(stack, carried...), present...)
	} else {
		stack = append(append(stack, present...), carried...)
	}
	for rank, i := range stack {
		s.Camels[i].Position = to
		s.Camels[i].Rank = rank
	}

	s.Camels.ReformStack(to)
	s.Camels.ReformStack(from)

	names := make([]CamelName, len(carried))
	for i, idx := range carried {
		names[i] = s.Camels[idx].Name
	}
	return Move{
		Camel:    name,
		Die:      die,
		From:     from,
		To:       to,
		Modifier: mod,
		Carried:  names,
	}
}

// Nudge moves a single camel one cell forward onto the top of the next
// stack. Nothing rides along and dice and modifiers are ignored.
func Nudge(s *State, name CamelName) {
	ci := name.Index()
	if ci < 0 {
		panic(fmt.Sprintf("race: nudge unknown camel %q", name))
	}
	from := s.Camels[ci].Position
	to := Wrap(from + 1)
	s.Camels[ci].Rank = len(s.Camels.indicesAt(to))
	s.Camels[ci].Position = to
	s.Camels.ReformStack(from)
}
