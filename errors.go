package fractal

import "errors"

// Configuration and input errors.
var (
	// ErrUnknownFractal is returned when a fractal kind name is not recognized.
	ErrUnknownFractal = errors.New("fractal: unknown fractal kind")

	// ErrInvalidIterations is returned for an iteration bound below 1
	// or one that cannot be parsed as an integer.
	ErrInvalidIterations = errors.New("fractal: iteration count must be a positive integer")

	// ErrInvalidDimensions is returned for a non-positive viewport size or
	// one whose pixel count does not fit in an int.
	ErrInvalidDimensions = errors.New("fractal: invalid viewport dimensions")

	// ErrInvalidScale is returned for a scale that is not a finite positive number.
	ErrInvalidScale = errors.New("fractal: scale must be finite and positive")
)
