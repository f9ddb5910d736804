package race

import (
	"fmt"
	"slices"
	"strings"
)

// CamelCount is the number of camels in a race.
const CamelCount = 5

// CamelName identifies a camel by its colour.
type CamelName string

const (
	White  CamelName = "white"
	Orange CamelName = "orange"
	Yellow CamelName = "yellow"
	Green  CamelName = "green"
	Blue   CamelName = "blue"
)

// CamelNames lists the camels in canonical order. Camels are always stored
// and placed in this order.
var CamelNames = [CamelCount]CamelName{White, Orange, Yellow, Green, Blue}

// Index returns the camel's slot in canonical order, or -1 if unknown.
func (n CamelName) Index() int {
	for i, name := range CamelNames {
		if name == n {
			return i
		}
	}
	return -1
}

// ParseCamelName resolves a case-insensitive camel name.
func ParseCamelName(s string) (CamelName, error) {
	name := CamelName(strings.ToLower(strings.TrimSpace(s)))
	if name.Index() < 0 {
		return "", fmt.Errorf("race: unknown camel %q", s)
	}
	return name, nil
}

// Camel is a racer on the board. Rank orders camels sharing a cell,
// higher is further up the stack.
type Camel struct {
	Name     CamelName
	Position int
	Rank     int
}

// Camels is the full set of racers in canonical order.
type Camels [CamelCount]Camel

// indicesAt returns the slots of camels at position, bottom to top.
func (c Camels) indicesAt(position int) []int {
	var idx []int
	for i := range c {
		if c[i].Position == position {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return c[a].Rank - c[b].Rank
	})
	return idx
}

// At returns the camels at position sorted bottom to top.
func (c Camels) At(position int) []Camel {
	idx := c.indicesAt(position)
	out := make([]Camel, len(idx))
	for i, ci := range idx {
		out[i] = c[ci]
	}
	return out
}

// ReformStack renumbers the camels at position to 0..k-1 keeping their
// relative order.
func (c *Camels) ReformStack(position int) {
	for rank, ci := range c.indicesAt(position) {
		c[ci].Rank = rank
	}
}
