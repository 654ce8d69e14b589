package wildfire

import (
	"strconv"

	"wildfire/internal/core"
)

// Parameters returns the HUD snapshot of the current configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", s.cfg.Size),
				int64Param("seed", "Seed", s.seed),
				intParam("tick", "Tick", s.tick),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("p", "Spread chance", p.P),
				floatParam("pstart", "Ignition chance", p.PStart),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				floatParam("w_speed", "Wind speed", p.WindSpeed),
				floatParam("w_direction", "Wind direction", p.WindDirection),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				floatParam("water_ratio", "Water ratio", p.WaterRatio),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "p", Label: "Spread chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "pstart", Label: "Ignition chance", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "w_speed", Label: "Wind speed", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "w_direction", Label: "Wind direction", Type: core.ParamTypeFloat, Step: 15, Min: 0, Max: 360, HasMin: true, HasMax: true},
	{Key: "water_ratio", Label: "Water ratio", Type: core.ParamTypeFloat, Step: 0.025, Min: 0, Max: 1, HasMin: true, HasMax: true},
}

// ParameterControls lists the values the HUD may adjust before the run starts.
func (s *Sim) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(parameterControls))
	copy(out, parameterControls)
	return out
}

// SetFloatParameter updates a parameter while the run has not started yet.
// Once the first tick has been taken parameters are frozen and it returns
// false. Changing water_ratio rebuilds the initial grid.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if s.tick > 0 {
		return false
	}
	var ctrl core.ParameterControl
	found := false
	for _, c := range parameterControls {
		if c.Key == key {
			ctrl = c
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}

	switch key {
	case "p":
		s.cfg.Params.P = value
	case "pstart":
		s.cfg.Params.PStart = value
	case "w_speed":
		s.cfg.Params.WindSpeed = value
	case "w_direction":
		s.cfg.Params.WindDirection = value
	case "water_ratio":
		s.cfg.Params.WaterRatio = value
		s.Reset(s.seed)
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
