package steps

import "errors"

// Sentinel errors for pattern validation and parsing.
var (
	// ErrEmptyPattern indicates a pattern with no steps where one is required.
	ErrEmptyPattern = errors.New("steps: pattern is empty")

	// ErrBadStep indicates a step outside {1, 2, 3}.
	ErrBadStep = errors.New("steps: step must be 1, 2 or 3 semitones")

	// ErrSumMismatch indicates the steps do not add up to the octave size.
	ErrSumMismatch = errors.New("steps: pattern does not sum to octave size")

	// ErrSyntax indicates textual input that could not be parsed into steps.
	ErrSyntax = errors.New("steps: cannot parse pattern")
)
