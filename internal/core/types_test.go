package core

import (
	"errors"
	"slices"
	"testing"
)

type stubSim struct{ steps int }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s *stubSim) Reset(int64)    {}
func (s *stubSim) Step()          { s.steps++ }
func (s *stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistryLookup(t *testing.T) {
	Register("stub-test", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("nil-factory", nil)

	if !slices.Contains(Names(), "stub-test") {
		t.Fatalf("expected stub-test in %v", Names())
	}
	if slices.Contains(Names(), "") || slices.Contains(Names(), "nil-factory") {
		t.Fatalf("invalid registrations leaked into %v", Names())
	}

	sim, err := New("stub-test", nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if sim.Name() != "stub" {
		t.Fatalf("unexpected sim %q", sim.Name())
	}

	if _, err := New("missing", nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}

	boom := errors.New("boom")
	Register("failing", func(map[string]string) (Sim, error) { return nil, boom })
	if _, err := New("failing", nil); !errors.Is(err, boom) {
		t.Fatalf("expected factory error to propagate, got %v", err)
	}
}
