//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"wildfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windProvider interface {
	Wind() (speed, direction float64)
}

var arrowColor = color.RGBA{R: 250, G: 250, B: 255, A: 230}

// Overlay draws the wind indicator on top of the grid. W toggles it.
type Overlay struct {
	sim      core.Sim
	showWind bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, showWind: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		o.showWind = !o.showWind
	}
}

// Draw renders enabled overlays.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showWind {
		return
	}
	provider, ok := o.sim.(windProvider)
	if !ok {
		return
	}
	speed, direction := provider.Wind()
	const cx, cy = 48.0, 48.0
	length := 12 + 28*math.Max(0, math.Min(speed, 1))
	tx, ty := windArrow(cx, cy, length, direction)
	o.drawLine(screen, cx, cy, tx, ty, 3, arrowColor)

	// Arrow head.
	back := math.Atan2(cy-ty, cx-tx)
	for _, spread := range []float64{-0.5, 0.5} {
		hx := tx + 10*math.Cos(back+spread)
		hy := ty + 10*math.Sin(back+spread)
		o.drawLine(screen, tx, ty, hx, hy, 3, arrowColor)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("wind %.2f from %.0f deg", speed, direction), int(cx)-40, int(cy)+44)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
