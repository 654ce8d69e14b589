package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		va, vb := a.NextUniform(), b.NextUniform()
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %f", i, va)
		}
	}
}

func TestSequenceWrapsAndCounts(t *testing.T) {
	s := NewSequence(0.1, 0.9)
	want := []float64{0.1, 0.9, 0.1}
	for i, w := range want {
		if got := s.NextUniform(); got != w {
			t.Fatalf("draw %d = %f, expected %f", i, got, w)
		}
	}
	if s.Draws() != 3 {
		t.Fatalf("expected 3 draws, got %d", s.Draws())
	}

	empty := NewSequence()
	if got := empty.NextUniform(); got != 0 {
		t.Fatalf("empty sequence should yield 0, got %f", got)
	}
}

func TestIntNStaysInRange(t *testing.T) {
	cases := []struct {
		u    float64
		n    int
		want int
	}{
		{0, 10, 0},
		{0.999999, 10, 9},
		{0.5, 4, 2},
		{1, 4, 3},
		{0.3, 0, 0},
	}
	for _, c := range cases {
		if got := IntN(NewSequence(c.u), c.n); got != c.want {
			t.Fatalf("IntN(%f, %d) = %d, expected %d", c.u, c.n, got, c.want)
		}
	}
}
