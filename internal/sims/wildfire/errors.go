package wildfire

import "errors"

var (
	// ErrInvalidConfiguration is returned for unusable grid sizes or water ratios.
	ErrInvalidConfiguration = errors.New("wildfire: invalid configuration")
	// ErrOutOfBounds is returned for cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("wildfire: coordinates out of bounds")
	// ErrUnknownCell is returned when writing a value that is not a Cell state.
	ErrUnknownCell = errors.New("wildfire: unknown cell state")
)
