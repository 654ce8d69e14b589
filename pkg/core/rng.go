package core

import "math/rand/v2"

// Uniform is the only randomness capability the automaton needs.
type Uniform interface {
	// NextUniform returns a value in [0, 1).
	NextUniform() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NextUniform returns a uniformly distributed float in [0, 1).
func (r *RNG) NextUniform() float64 {
	return r.r.Float64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// IntN maps a uniform draw onto [0, n). It returns 0 when n <= 0.
func IntN(u Uniform, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(u.NextUniform() * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Sequence replays a fixed list of values, wrapping around at the end.
// An empty Sequence always yields 0.
type Sequence struct {
	values []float64
	pos    int
	draws  int
}

// NewSequence returns a Sequence over the provided values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// NextUniform returns the next value in the sequence.
func (s *Sequence) NextUniform() float64 {
	s.draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int { return s.draws }
