//go:build ebiten

package app

import (
	"image/color"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

var background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette []color.RGBA

	camera   Camera
	dragging bool
	lastX    int
	lastY    int

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The game starts paused
// and waits for Enter before the first tick.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	if hudWidth < 0 {
		hudWidth = 0
	}
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim),
		camera:   NewCamera(float64(scale)),
		scale:    scale,
		hudWidth: hudWidth,
		paused:   true,
		seed:     seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.paused = true
}

func (g *Game) viewSize() (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.camera = NewCamera(float64(g.scale))
	}

	g.updateCamera()

	viewW, _ := g.viewSize()
	g.hud.Update(viewW)
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) updateCamera() {
	viewW, viewH := g.viewSize()
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && mx < viewW && my >= 0 && my < viewH

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inView {
		g.dragging = true
		g.lastX, g.lastY = mx, my
	}
	if g.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.dragging = false
		} else {
			g.camera.Pan(float64(mx-g.lastX), float64(my-g.lastY))
			g.lastX, g.lastY = mx, my
		}
	}

	if !inView {
		return
	}
	_, wheel := ebiten.Wheel()
	switch {
	case wheel > 0:
		g.camera.ZoomAt(float64(mx), float64(my), ZoomStep)
	case wheel < 0:
		g.camera.ZoomAt(float64(mx), float64(my), 1/ZoomStep)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	var geom ebiten.GeoM
	geom.Translate(-g.camera.X, -g.camera.Y)
	geom.Scale(g.camera.Zoom, g.camera.Zoom)
	g.painter.Blit(screen, g.sim.Cells(), g.palette, geom)

	g.overlay.Draw(screen)
	viewW, _ := g.viewSize()
	g.hud.Draw(screen, viewW, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	return w + g.hudWidth, h
}
