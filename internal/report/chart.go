// Package report renders run summaries: a burn chart over time and an MJPEG
// recording of the grid.
package report

import (
	"errors"
	"fmt"
	"io"

	"wildfire/internal/sims/wildfire"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	// ErrTooFewSamples is returned when a chart would have fewer than two points.
	ErrTooFewSamples = errors.New("report: need at least two samples")
	// ErrEmptyGrid is returned when the sampled grid has no cells.
	ErrEmptyGrid = errors.New("report: grid has no cells")
)

var (
	burningColor  = drawing.Color{R: 255, G: 0, B: 0, A: 255}
	burnedColor   = drawing.Color{R: 40, G: 40, B: 40, A: 255}
	unburntColor  = drawing.Color{R: 0, G: 150, B: 0, A: 255}
	defaultWidth  = 800
	defaultHeight = 400
)

// WriteBurnChart plots burning, burned and remaining flammable cells per tick
// and writes the chart to w as PNG. history[i] is the census after tick i.
// Non-positive dimensions fall back to 800×400.
func WriteBurnChart(w io.Writer, history []wildfire.Counts, width, height int) error {
	if len(history) < 2 {
		return ErrTooFewSamples
	}
	total := history[0].Total()
	if total == 0 {
		return ErrEmptyGrid
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	ticks := make([]float64, len(history))
	burning := make([]float64, len(history))
	burned := make([]float64, len(history))
	unburnt := make([]float64, len(history))
	for i, c := range history {
		ticks[i] = float64(i)
		burning[i] = float64(c.Of(wildfire.Burning))
		burned[i] = float64(c.Of(wildfire.Burned))
		unburnt[i] = float64(c.Flammable())
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(history) - 1)},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(total)},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "burning",
				XValues: ticks,
				YValues: burning,
				Style:   chart.Style{StrokeColor: burningColor, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "burned",
				XValues: ticks,
				YValues: burned,
				Style:   chart.Style{StrokeColor: burnedColor, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "unburnt vegetation",
				XValues: ticks,
				YValues: unburnt,
				Style:   chart.Style{StrokeColor: unburntColor, StrokeWidth: 3.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render burn chart: %w", err)
	}
	return nil
}
