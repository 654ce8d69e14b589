package term

import (
	"strings"
	"testing"

	"wildfire/internal/sims/wildfire"

	"github.com/gdamore/tcell/v2"
)

func newTestViewer(t *testing.T) (*Viewer, *wildfire.Sim, tcell.SimulationScreen) {
	t.Helper()
	sim, err := wildfire.New(16)
	if err != nil {
		t.Fatalf("wildfire.New: %v", err)
	}
	s := newTestScreen(t, 8, 5)
	return NewViewer(s, sim, 30, 0), sim, s
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestViewerStartsPausedAndSteps(t *testing.T) {
	v, sim, _ := newTestViewer(t)
	if !v.Paused() {
		t.Fatal("viewer should start paused")
	}
	v.Frame()
	if sim.Tick() != 0 {
		t.Fatalf("paused viewer stepped to tick %d", sim.Tick())
	}

	v.HandleEvent(key(tcell.KeyRune, 'n'))
	v.Frame()
	if sim.Tick() != 1 {
		t.Fatalf("expected single step, got tick %d", sim.Tick())
	}

	v.HandleEvent(key(tcell.KeyEnter, 0))
	if v.Paused() {
		t.Fatal("enter should start the run")
	}
	v.HandleEvent(key(tcell.KeyRune, ' '))
	if !v.Paused() {
		t.Fatal("space should pause")
	}

	v.HandleEvent(key(tcell.KeyRune, 'r'))
	if sim.Tick() != 0 {
		t.Fatalf("reset should rewind, got tick %d", sim.Tick())
	}
}

func TestViewerQuitKeys(t *testing.T) {
	v, _, _ := newTestViewer(t)
	if v.HandleEvent(key(tcell.KeyRune, 'x')) != true {
		t.Fatal("unbound key should not quit")
	}
	if v.HandleEvent(key(tcell.KeyRune, 'q')) {
		t.Fatal("q should quit")
	}
	if v.HandleEvent(key(tcell.KeyEscape, 0)) {
		t.Fatal("escape should quit")
	}
}

func TestViewerStatusLine(t *testing.T) {
	v, _, s := newTestViewer(t)
	v.HandleEvent(key(tcell.KeyRight, 0))
	if x, _ := v.renderer.Offset(); x != panStep {
		t.Fatalf("expected pan by %d, got %d", panStep, x)
	}
	if !strings.HasPrefix(v.status(), "tick 0 | normal-forest") {
		t.Fatalf("unexpected status %q", v.status())
	}
	v.Frame()
	_, h := s.Size()
	if ch, _, _, _ := s.GetContent(0, h-1); ch != 't' {
		t.Fatalf("expected status on bottom row, got %q", ch)
	}
}
