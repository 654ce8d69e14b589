package app

import (
	"flag"

	"wildfire/internal/sims/wildfire"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	HUDWidth int
	Prompt   bool

	Size   int
	Seed   int64
	Params wildfire.SimParams
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	defaults := wildfire.DefaultConfig()
	return &Config{
		Sim:      "wildfire",
		Scale:    3,
		TPS:      30,
		HUDWidth: 260,
		Size:     defaults.Size,
		Seed:     defaults.Seed,
		Params:   defaults.Params,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.BoolVar(&c.Prompt, "prompt", c.Prompt, "ask for parameters on the console before starting")
	fs.IntVar(&c.Size, "size", c.Size, "grid edge length in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Params.P, "p", c.Params.P, "probability of fire spread (0-1)")
	fs.Float64Var(&c.Params.PStart, "pstart", c.Params.PStart, "probability of spontaneous ignition (0-1)")
	fs.Float64Var(&c.Params.WindSpeed, "wind-speed", c.Params.WindSpeed, "wind speed (0-1)")
	fs.Float64Var(&c.Params.WindDirection, "wind-dir", c.Params.WindDirection, "wind direction in degrees (0-360)")
	fs.Float64Var(&c.Params.WaterRatio, "water", c.Params.WaterRatio, "fraction of cells seeded as water (0-1)")
}

// SimOptions renders the simulation settings into the registry's map form.
func (c *Config) SimOptions() map[string]string {
	return wildfire.Config{Size: c.Size, Seed: c.Seed, Params: c.Params}.ToMap()
}
