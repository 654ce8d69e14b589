package wildfire

// SimParams holds the fire-spread parameters for a run. Values are fed into
// the arithmetic as-is; only WaterRatio is validated, at construction.
type SimParams struct {
	// P is the base spread probability from one burning neighbour.
	P float64
	// PStart is the spontaneous ignition probability per tick.
	PStart float64
	// WindSpeed scales the directional bonus, nominally 0-1.
	WindSpeed float64
	// WindDirection is the wind bearing in degrees.
	WindDirection float64
	// WaterRatio is the fraction of cells turned to water at initialization.
	WaterRatio float64
}

// DefaultParams returns the stock parameter set.
func DefaultParams() SimParams {
	return SimParams{
		P:             0.8,
		PStart:        0.01,
		WindSpeed:     0.5,
		WindDirection: 30,
		WaterRatio:    0.175,
	}
}
