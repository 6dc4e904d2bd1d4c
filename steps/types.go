package steps

// Step is a single interval of a scale pattern, in semitones.
type Step int

const (
	// Half is a semitone (minor second).
	Half Step = 1

	// Whole is a whole tone (major second).
	Whole Step = 2

	// Augmented is a step and a half (augmented second).
	Augmented Step = 3
)

// DefaultOctave is the number of semitones in standard twelve-tone tuning.
const DefaultOctave = 12

// Valid reports whether s is one of Half, Whole or Augmented.
func (s Step) Valid() bool {
	return s >= Half && s <= Augmented
}

// Pattern is an ordered sequence of Steps.
//
// A Pattern produced by the generator always sums to its octave size and
// contains only valid Steps. Order matters: cyclic rotations of a Pattern are
// distinct values.
type Pattern []Step

// Of builds a Pattern from plain integers.
func Of(xs ...int) Pattern {
	p := make(Pattern, len(xs))
	for i, x := range xs {
		p[i] = Step(x)
	}
	return p
}
