package core

// Point addresses a single grid cell.
type Point struct {
	X, Y int
}

// mooreOffsets lists the eight Moore offsets in column-major order: dx outer,
// dy inner. Callers that draw randomness per neighbour rely on this order.
var mooreOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Coordinates must be in bounds.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y). Coordinates must be in bounds.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }

// Neighbors appends the in-bounds Moore neighbours of (x, y) to dst and
// returns it. Edges are not wrapped: corners yield 3 points, edges 5 and
// interior cells 8.
func (g *ByteGrid) Neighbors(x, y int, dst []Point) []Point {
	for _, off := range mooreOffsets {
		nx, ny := x+off.X, y+off.Y
		if nx < 0 || nx >= g.W || ny < 0 || ny >= g.H {
			continue
		}
		dst = append(dst, Point{X: nx, Y: ny})
	}
	return dst
}
