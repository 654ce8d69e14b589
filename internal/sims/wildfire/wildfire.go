package wildfire

import (
	"wildfire/internal/core"
	pcore "wildfire/pkg/core"
)

// Sim adapts a Grid and its parameters to the core.Sim contract.
type Sim struct {
	cfg  Config
	seed int64

	grid *Grid
	rng  *pcore.RNG
	tick int
}

// New returns a wildfire simulation of the given size using default parameters.
func New(size int) (*Sim, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig validates the configuration and builds the initial scenario.
func NewWithConfig(cfg Config) (*Sim, error) {
	rng := pcore.NewRNG(cfg.Seed)
	grid, err := Initialize(cfg.Size, cfg.Params.WaterRatio, rng)
	if err != nil {
		return nil, err
	}
	return &Sim{cfg: cfg, seed: cfg.Seed, grid: grid, rng: rng}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Cells exposes the current grid buffer; values are Cell states.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Grid exposes the underlying grid for queries.
func (s *Sim) Grid() *Grid { return s.grid }

// Params returns the parameters the run uses.
func (s *Sim) Params() SimParams { return s.cfg.Params }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Tick returns the number of steps taken since the last reset.
func (s *Sim) Tick() int { return s.tick }

// Seed returns the seed of the last reset.
func (s *Sim) Seed() int64 { return s.seed }

// Counts tallies the current grid.
func (s *Sim) Counts() Counts { return s.grid.Counts() }

// Reset rebuilds the initial scenario. A zero seed reuses the configured seed.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	rng := pcore.NewRNG(effective)
	grid, err := Initialize(s.cfg.Size, s.cfg.Params.WaterRatio, rng)
	if err != nil {
		// Config was validated in NewWithConfig and setters clamp.
		return
	}
	s.seed = effective
	s.rng = rng
	s.grid = grid
	s.tick = 0
}

// Step advances the fire by one tick.
func (s *Sim) Step() {
	s.grid.Update(s.cfg.Params, s.rng)
	s.tick++
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) (core.Sim, error) {
		sim, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
