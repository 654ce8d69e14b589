package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wildfire/internal/sims/wildfire"
)

type promptField struct {
	label    string
	min, max float64
	value    func(*wildfire.SimParams) *float64
}

var promptFields = []promptField{
	{"Probability of fire spread (0.0 - 1.0)", 0, 1, func(p *wildfire.SimParams) *float64 { return &p.P }},
	{"Probability of spontaneous ignition (0.0 - 1.0)", 0, 1, func(p *wildfire.SimParams) *float64 { return &p.PStart }},
	{"Wind speed (0.0 - 1.0)", 0, 1, func(p *wildfire.SimParams) *float64 { return &p.WindSpeed }},
	{"Wind direction in degrees (0 - 360)", 0, 360, func(p *wildfire.SimParams) *float64 { return &p.WindDirection }},
	{"Water ratio (0.0 - 1.0)", 0, 1, func(p *wildfire.SimParams) *float64 { return &p.WaterRatio }},
}

// Prompter collects run parameters from an interactive console.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from r and writes questions to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Params asks for each parameter in turn. A blank answer keeps the default,
// an invalid or out-of-range answer asks again, and end of input keeps the
// remaining defaults.
func (p *Prompter) Params(defaults wildfire.SimParams) (wildfire.SimParams, error) {
	params := defaults
	fmt.Fprintln(p.out, "Enter simulation parameters:")
	for _, field := range promptFields {
		dst := field.value(&params)
		for {
			fmt.Fprintf(p.out, "%s [%s]: ", field.label, strconv.FormatFloat(*dst, 'f', -1, 64))
			line, err := p.readLine()
			if errors.Is(err, io.EOF) && line == "" {
				fmt.Fprintln(p.out)
				return params, nil
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return params, fmt.Errorf("read parameter: %w", err)
			}
			if line == "" {
				break
			}
			v, perr := strconv.ParseFloat(line, 64)
			if perr != nil {
				fmt.Fprintf(p.out, "not a number: %q\n", line)
				continue
			}
			if v < field.min || v > field.max {
				fmt.Fprintf(p.out, "value must be between %g and %g\n", field.min, field.max)
				continue
			}
			*dst = v
			break
		}
	}
	return params, nil
}

// WaitForEnter blocks until a line (or end of input) is read.
func (p *Prompter) WaitForEnter() error {
	fmt.Fprint(p.out, "Press Enter to start the simulation...")
	_, err := p.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	return strings.TrimSpace(line), err
}
