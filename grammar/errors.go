package grammar

import "errors"

// ErrInvalidSize is returned by Generate for a negative octave size.
// The accompanying Set is empty but usable.
var ErrInvalidSize = errors.New("grammar: octave size must not be negative")
