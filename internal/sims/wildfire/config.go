package wildfire

import "strconv"

// Config controls the wildfire grid and its run parameters.
type Config struct {
	Size int
	Seed int64

	Params SimParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:   DefaultSize,
		Seed:   1337,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored and leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	parseFloat := func(key string, dst *float64) {
		v, ok := cfg[key]
		if !ok {
			return
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	parseFloat("p", &c.Params.P)
	parseFloat("pstart", &c.Params.PStart)
	parseFloat("w_speed", &c.Params.WindSpeed)
	parseFloat("w_direction", &c.Params.WindDirection)
	parseFloat("water_ratio", &c.Params.WaterRatio)
	return c
}

// ToMap renders the config back into FromMap's key/value form.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"size":        strconv.Itoa(c.Size),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"p":           formatFloat(c.Params.P),
		"pstart":      formatFloat(c.Params.PStart),
		"w_speed":     formatFloat(c.Params.WindSpeed),
		"w_direction": formatFloat(c.Params.WindDirection),
		"water_ratio": formatFloat(c.Params.WaterRatio),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
