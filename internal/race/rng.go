package race

import "math/rand"

// Source supplies the randomness the leg controller needs. *rand.Rand
// satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRandSource returns a seeded math/rand source.
func NewRandSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource replays fixed values, wrapping around when exhausted.
// Each value is reduced modulo n so any sequence stays in range.
type SequenceSource struct {
	values []int
	pos    int
}

// NewSequenceSource returns a source that yields values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// Intn returns the next value modulo n.
func (s *SequenceSource) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return ((v % n) + n) % n
}
