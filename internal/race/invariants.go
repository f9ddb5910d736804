package race

import (
	"errors"
	"fmt"
)

// CheckInvariants verifies a state is well formed: camels on the ring,
// dense ranks per cell, legal modifier placement and dice values in range.
// A violation is a bug in the engine, not a runtime condition.
func CheckInvariants(s State) error {
	var errs []error

	var counts [BoardSize]int
	seen := make(map[CamelName]bool, CamelCount)
	for i, c := range s.Camels {
		if c.Name != CamelNames[i] {
			errs = append(errs, fmt.Errorf("slot %d holds %q, want %q", i, c.Name, CamelNames[i]))
		}
		if seen[c.Name] {
			errs = append(errs, fmt.Errorf("camel %q appears twice", c.Name))
		}
		seen[c.Name] = true
		if c.Position < 0 || c.Position >= BoardSize {
			errs = append(errs, fmt.Errorf("camel %q at position %d off the board", c.Name, c.Position))
			continue
		}
		counts[c.Position]++
	}

	for p := range BoardSize {
		if counts[p] == 0 {
			continue
		}
		ranks := make([]bool, counts[p])
		for _, c := range s.Camels {
			if c.Position != p {
				continue
			}
			if c.Rank < 0 || c.Rank >= counts[p] || ranks[c.Rank] {
				errs = append(errs, fmt.Errorf("cell %d: ranks not dense (camel %q has rank %d of %d)", p, c.Name, c.Rank, counts[p]))
				continue
			}
			ranks[c.Rank] = true
		}
	}

	for i, cell := range s.Board {
		if cell.Index != i {
			errs = append(errs, fmt.Errorf("cell %d has index %d", i, cell.Index))
		}
		if cell.Modifier == ModifierNone {
			continue
		}
		if cell.Modifier != ModifierBoost && cell.Modifier != ModifierTrap {
			errs = append(errs, fmt.Errorf("cell %d has unknown modifier %d", i, cell.Modifier))
		}
		if i == 0 {
			errs = append(errs, errors.New("cell 0 carries a modifier"))
		}
		if s.Board.ModifierAt(i+1) != ModifierNone {
			errs = append(errs, fmt.Errorf("cells %d and %d both carry modifiers", i, Wrap(i+1)))
		}
	}

	for i, v := range s.Dice {
		if v != 0 && (v < MinDie || v > MaxDie) {
			errs = append(errs, fmt.Errorf("camel %q rolled %d", CamelNames[i], v))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("race: invalid state: %w", errors.Join(errs...))
	}
	return nil
}
