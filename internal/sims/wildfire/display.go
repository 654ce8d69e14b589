package wildfire

import (
	"image/color"

	"wildfire/internal/core"
)

var palette = buildPalette()

// Palette exposes the colours used for rendering, indexed by Cell.
func (s *Sim) Palette() []color.RGBA { return palette }

// Palette returns the rendering colours indexed by Cell.
func Palette() []color.RGBA { return palette }

func buildPalette() []color.RGBA {
	cells := AllCells()
	out := make([]color.RGBA, len(cells))
	for _, c := range cells {
		out[c] = CellColor(c)
	}
	return out
}

// CellColor maps a state to its display colour.
func CellColor(c Cell) color.RGBA {
	switch c {
	case NormalForest:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	case DryGrass:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	case DenseTrees:
		return color.RGBA{R: 0, G: 100, B: 0, A: 255}
	case Water:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case Burning:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case Burned:
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// Legend returns the census of the current grid with display colours.
func (s *Sim) Legend() []core.LegendEntry {
	counts := s.Counts()
	cells := AllCells()
	out := make([]core.LegendEntry, len(cells))
	for i, c := range cells {
		out[i] = core.LegendEntry{Label: c.String(), Color: palette[c], Count: counts[c]}
	}
	return out
}

// Wind reports the wind speed and the bearing it blows from, in degrees.
func (s *Sim) Wind() (speed, direction float64) {
	return s.cfg.Params.WindSpeed, s.cfg.Params.WindDirection
}
