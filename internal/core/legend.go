package core

import "image/color"

// LegendEntry describes one rendered state and how many cells hold it.
type LegendEntry struct {
	Label string
	Color color.RGBA
	Count int
}

// LegendProvider exposes a per-state census for the HUD.
type LegendProvider interface {
	Legend() []LegendEntry
}

// TickProvider reports how many steps a simulation has taken since reset.
type TickProvider interface {
	Tick() int
}
