package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the upper half of a terminal cell with the foreground
// colour and the lower half with the background, packing two grid rows into
// one terminal row.
const halfBlock = '▀'

// Renderer draws a palette-indexed grid onto a tcell screen. The last screen
// row is reserved for a status line.
type Renderer struct {
	screen  tcell.Screen
	palette []tcell.Color

	offX, offY int
}

// NewRenderer converts the RGBA palette into terminal colours.
func NewRenderer(screen tcell.Screen, palette []color.RGBA) *Renderer {
	colors := make([]tcell.Color, len(palette))
	for i, c := range palette {
		colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return &Renderer{screen: screen, palette: colors}
}

// Offset returns the grid coordinate shown at the top-left corner.
func (r *Renderer) Offset() (int, int) { return r.offX, r.offY }

func (r *Renderer) colorOf(v uint8) tcell.Color {
	if len(r.palette) == 0 {
		return tcell.ColorBlack
	}
	idx := int(v)
	if idx >= len(r.palette) {
		idx = len(r.palette) - 1
	}
	return r.palette[idx]
}

// viewport reports how many grid columns and rows fit on screen.
func (r *Renderer) viewport() (int, int) {
	sw, sh := r.screen.Size()
	rows := sh - 1
	if rows < 0 {
		rows = 0
	}
	return sw, rows * 2
}

// Pan shifts the viewport by (dx, dy) grid cells, clamped to a w×h grid.
func (r *Renderer) Pan(dx, dy, w, h int) {
	vw, vh := r.viewport()
	r.offX = clampInt(r.offX+dx, 0, max(0, w-vw))
	r.offY = clampInt(r.offY+dy, 0, max(0, h-vh))
}

// Draw paints the visible part of a w×h cell buffer.
func (r *Renderer) Draw(cells []uint8, w, h int) {
	if len(cells) != w*h {
		return
	}
	sw, sh := r.screen.Size()
	for row := 0; row < sh-1; row++ {
		top := r.offY + row*2
		bottom := top + 1
		for col := 0; col < sw; col++ {
			x := r.offX + col
			if x >= w || top >= h {
				r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			fg := r.colorOf(cells[top*w+x])
			bg := tcell.ColorBlack
			if bottom < h {
				bg = r.colorOf(cells[bottom*w+x])
			}
			r.screen.SetContent(col, row, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

// DrawStatus writes line on the reserved bottom row, truncated to fit.
func (r *Renderer) DrawStatus(line string) {
	sw, sh := r.screen.Size()
	if sh <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(line)
	for col := 0; col < sw; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		r.screen.SetContent(col, sh-1, ch, nil, style)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
