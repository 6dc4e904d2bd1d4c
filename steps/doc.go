// Package steps defines the value types of the scale-pattern algebra:
// a Step is one interval of 1, 2 or 3 semitones and a Pattern is an ordered
// cycle of Steps that together span one octave.
//
// 🎼 What is a Pattern?
//
//	Reading a Pattern left to right walks once around the twelve pitch
//	classes. The major scale, started on its sixth degree, is
//
//	  2-1-2-2-1-2-2   (A B C D E F G A)
//
// Patterns are NOT rotation-normalised. 2-1-2-2-1-2-2 and 1-2-2-1-2-2-2 are
// different values even though they describe modes of the same scale; the
// rotation-aware comparisons live in package adjacency.
//
// ⚙️ Usage:
//
//	p, err := steps.Parse("2-1-2-2-1-2-2")
//	if err != nil { … }
//	if err := steps.Validate(p, steps.DefaultOctave); err != nil { … }
//	fmt.Println(p.Rotate(2))      // 2-2-1-2-2-2-1
//	fmt.Println(p.Offsets(0))     // [0 2 3 5 7 8 10 12]
//
// All operations are pure; a Pattern is treated as immutable once built and
// methods that return a Pattern always return a fresh slice.
package steps
