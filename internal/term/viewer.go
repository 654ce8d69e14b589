package term

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"wildfire/internal/core"

	"github.com/gdamore/tcell/v2"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

const (
	panStep    = 4
	frameDelay = 16 * time.Millisecond
)

// Viewer drives a simulation inside a terminal. It starts paused, like the
// GUI, until space or Enter is pressed.
type Viewer struct {
	sim      core.Sim
	screen   tcell.Screen
	renderer *Renderer
	clock    *core.FixedStep
	seed     int64

	paused   bool
	tickOnce bool
}

// NewViewer wires a simulation to an initialised screen.
func NewViewer(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Viewer {
	var palette []color.RGBA
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Viewer{
		sim:      sim,
		screen:   screen,
		renderer: NewRenderer(screen, palette),
		clock:    core.NewFixedStep(tps),
		seed:     seed,
		paused:   true,
	}
}

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// HandleEvent applies a terminal event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	size := v.sim.Size()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.renderer.Pan(0, 0, size.W, size.H)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			v.paused = false
		case tcell.KeyLeft:
			v.renderer.Pan(-panStep, 0, size.W, size.H)
		case tcell.KeyRight:
			v.renderer.Pan(panStep, 0, size.W, size.H)
		case tcell.KeyUp:
			v.renderer.Pan(0, -panStep, size.W, size.H)
		case tcell.KeyDown:
			v.renderer.Pan(0, panStep, size.W, size.H)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.tickOnce = true
			case 'r':
				v.sim.Reset(v.seed)
				v.paused = true
			}
		}
	}
	return true
}

// Frame advances the simulation if a tick is due and redraws the screen.
func (v *Viewer) Frame() {
	if v.tickOnce || (!v.paused && v.clock.ShouldStep()) {
		v.sim.Step()
		v.tickOnce = false
	}
	size := v.sim.Size()
	v.renderer.Draw(v.sim.Cells(), size.W, size.H)
	v.renderer.DrawStatus(v.status())
	v.screen.Show()
}

func (v *Viewer) status() string {
	var b strings.Builder
	if tp, ok := v.sim.(core.TickProvider); ok {
		fmt.Fprintf(&b, "tick %d", tp.Tick())
	}
	if lp, ok := v.sim.(core.LegendProvider); ok {
		for _, entry := range lp.Legend() {
			fmt.Fprintf(&b, " | %s %d", entry.Label, entry.Count)
		}
	}
	if v.paused {
		b.WriteString(" | paused: space/enter run, n step")
	} else {
		b.WriteString(" | space pause")
	}
	b.WriteString(", arrows pan, r reset, q quit")
	return b.String()
}

// Run polls events and renders frames until ctx is done or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()
	v.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Frame()
		}
	}
}
