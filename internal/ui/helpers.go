package ui

import (
	"image"
	"math"
	"strconv"

	"wildfire/internal/core"
)

// formatFloat picks a precision that resolves one control step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	case step >= 1:
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// stepValue applies one +/- click to value and clamps it to the control bounds.
func stepValue(ctrl core.ParameterControl, value float64, direction int) float64 {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := value + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// windArrow returns the tip of an arrow of the given length starting at
// (cx, cy) and pointing where the wind carries fire. The wind bearing names
// the side it blows from, so the arrow points the opposite way. Screen y grows
// downward like grid y.
func windArrow(cx, cy, length, direction float64) (float64, float64) {
	rad := (direction + 180) * math.Pi / 180
	return cx + length*math.Cos(rad), cy + length*math.Sin(rad)
}
