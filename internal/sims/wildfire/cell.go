package wildfire

// Cell is the ecological/fire state of a single grid position.
type Cell uint8

const (
	NormalForest Cell = iota
	DryGrass
	DenseTrees
	Water
	Burning
	Burned

	cellCount
)

var cellNames = [cellCount]string{
	NormalForest: "normal-forest",
	DryGrass:     "dry-grass",
	DenseTrees:   "dense-trees",
	Water:        "water",
	Burning:      "burning",
	Burned:       "burned",
}

// AllCells lists every cell state in declaration order.
func AllCells() []Cell {
	return []Cell{NormalForest, DryGrass, DenseTrees, Water, Burning, Burned}
}

// Valid reports whether c is one of the six known states.
func (c Cell) Valid() bool { return c < cellCount }

func (c Cell) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return cellNames[c]
}

// Absorbing reports whether the state is never left once entered.
func (c Cell) Absorbing() bool {
	switch c {
	case Water, Burned:
		return true
	case NormalForest, DryGrass, DenseTrees, Burning:
		return false
	default:
		return false
	}
}

// Flammable reports whether fire can spread into the cell.
func (c Cell) Flammable() bool {
	switch c {
	case NormalForest, DryGrass, DenseTrees:
		return true
	case Water, Burning, Burned:
		return false
	default:
		return false
	}
}

// VegetationFactor scales the spread probability for the cell's vegetation.
func (c Cell) VegetationFactor() float64 {
	switch c {
	case NormalForest:
		return 1.0
	case DryGrass:
		return 1.5
	case DenseTrees:
		return 0.5
	case Water:
		return 0
	case Burning, Burned:
		return 1.0
	default:
		return 1.0
	}
}
