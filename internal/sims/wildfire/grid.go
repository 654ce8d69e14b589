package wildfire

import (
	"fmt"
	"math"

	"wildfire/internal/core"
	pcore "wildfire/pkg/core"
)

// DefaultSize is the edge length of the stock grid.
const DefaultSize = 256

// Grid is a square, double-buffered field of cells.
type Grid struct {
	size    int
	cur     *core.ByteGrid
	nxt     *core.ByteGrid
	scratch []core.Point
}

// NewGrid allocates a size×size grid filled with NormalForest.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidConfiguration, size)
	}
	g := &Grid{
		size:    size,
		cur:     core.NewByteGrid(size, size),
		nxt:     core.NewByteGrid(size, size),
		scratch: make([]core.Point, 0, 8),
	}
	g.cur.Fill(uint8(NormalForest))
	return g, nil
}

// Initialize builds the stock scenario: forest everywhere, a burning centre,
// one dry grass and one dense tree patch, then round(size²·waterRatio) water
// cells drawn with replacement from src.
func Initialize(size int, waterRatio float64, src pcore.Uniform) (*Grid, error) {
	if math.IsNaN(waterRatio) || waterRatio < 0 || waterRatio > 1 {
		return nil, fmt.Errorf("%w: water ratio %v outside [0,1]", ErrInvalidConfiguration, waterRatio)
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	center := size / 2
	quarter := size / 4
	threeQuarter := 3 * size / 4
	g.cur.Set(center, center, uint8(Burning))
	g.cur.Set(quarter, quarter, uint8(DryGrass))
	g.cur.Set(threeQuarter, threeQuarter, uint8(DenseTrees))

	// Collisions simply overwrite, so the realised water fraction can fall
	// short of the target. The ignition seed is not protected.
	water := int(math.Round(float64(size) * float64(size) * waterRatio))
	for i := 0; i < water; i++ {
		x := pcore.IntN(src, size)
		y := pcore.IntN(src, size)
		g.cur.Set(x, y, uint8(Water))
	}
	return g, nil
}

// Size returns the grid edge length.
func (g *Grid) Size() int { return g.size }

// Cell returns the state at (x, y).
func (g *Grid) Cell(x, y int) (Cell, error) {
	if !g.cur.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.size, g.size)
	}
	return Cell(g.cur.At(x, y)), nil
}

// SetCell overwrites the state at (x, y). It is meant for scenario setup
// between updates.
func (g *Grid) SetCell(x, y int, c Cell) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCell, uint8(c))
	}
	if !g.cur.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.size, g.size)
	}
	g.cur.Set(x, y, uint8(c))
	return nil
}

// Cells exposes the current buffer in row-major order. Callers must treat it
// as read-only; it is replaced by the next Update.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// Update advances the grid by one tick. Every cell is computed from the
// previous buffer only, then the buffers are swapped.
func (g *Grid) Update(p SimParams, src pcore.Uniform) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.nxt.Set(x, y, uint8(g.nextState(x, y, p, src)))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:    g.size,
		cur:     core.NewByteGrid(g.size, g.size),
		nxt:     core.NewByteGrid(g.size, g.size),
		scratch: make([]core.Point, 0, 8),
	}
	copy(c.cur.Cells(), g.cur.Cells())
	return c
}

// Counts tallies the current buffer by state.
func (g *Grid) Counts() Counts {
	var c Counts
	for _, v := range g.cur.Cells() {
		if Cell(v).Valid() {
			c[v]++
		}
	}
	return c
}
