package sample

import "errors"

var (
	// ErrEmptyResult indicates there was no pattern to draw from.
	ErrEmptyResult = errors.New("sample: no pattern satisfies the request")

	// ErrInvalidProbability indicates a probability outside [0, 100].
	ErrInvalidProbability = errors.New("sample: probability must be within [0, 100]")
)
