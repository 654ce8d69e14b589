package wildfire

import (
	"math"

	pcore "wildfire/pkg/core"
)

// windSpreadGain scales how much a fully aligned wind boosts spread.
const windSpreadGain = 0.1

// Bearing returns the angle in degrees from (x1, y1) towards (x2, y2), in the
// range [-180, 180].
func Bearing(x1, y1, x2, y2 int) float64 {
	return math.Atan2(float64(y2-y1), float64(x2-x1)) * 180 / math.Pi
}

// DirectionalInfluence maps the angular distance between the wind bearing and
// angle onto [0, 1]; 1 when they coincide, 0 when opposite.
func DirectionalInfluence(windDirection, angle float64) float64 {
	diff := math.Abs(windDirection - angle)
	diff = math.Min(diff, 360-diff)
	return 1 - diff/180
}

// SpreadProbability returns the chance that a burning neighbour ignites a
// cell. The result is not clamped; values above 1 always ignite.
func SpreadProbability(p SimParams, vegetation, influence float64) float64 {
	return p.P * vegetation * (1 + windSpreadGain*p.WindSpeed*influence)
}

// nextState applies the transition rule to (x, y) against the current buffer.
func (g *Grid) nextState(x, y int, p SimParams, src pcore.Uniform) Cell {
	current := Cell(g.cur.At(x, y))
	switch current {
	case Burning:
		return Burned
	case Burned, Water:
		return current
	case NormalForest, DryGrass, DenseTrees:
	default:
		return current
	}

	vegetation := current.VegetationFactor()
	g.scratch = g.cur.Neighbors(x, y, g.scratch[:0])
	for _, n := range g.scratch {
		if Cell(g.cur.At(n.X, n.Y)) != Burning {
			continue
		}
		angle := Bearing(x, y, n.X, n.Y)
		influence := DirectionalInfluence(p.WindDirection, angle)
		if src.NextUniform() < SpreadProbability(p, vegetation, influence) {
			return Burning
		}
	}

	if src.NextUniform() < p.PStart {
		return Burning
	}
	return current
}
