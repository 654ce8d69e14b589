package wildfire

import (
	"fmt"
	"strings"
)

// Counts holds the number of cells in each state, indexed by Cell.
type Counts [cellCount]int

// Of returns the count for a single state.
func (c Counts) Of(cell Cell) int {
	if !cell.Valid() {
		return 0
	}
	return c[cell]
}

// Total returns the number of counted cells.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Active returns the number of burning cells.
func (c Counts) Active() int { return c[Burning] }

// Flammable returns the number of cells fire can still spread into.
func (c Counts) Flammable() int {
	return c[NormalForest] + c[DryGrass] + c[DenseTrees]
}

func (c Counts) String() string {
	var b strings.Builder
	for i, cell := range AllCells() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", cell, c[cell])
	}
	return b.String()
}
