// Package pitch maps scale patterns onto the twelve pitch classes of the
// necklace: which positions light up for a given root, and what they are
// called.
package pitch

import (
	"strings"

	"github.com/katalvlaran/necklace/steps"
)

// Note holds the sharp and flat spellings of one pitch class.
type Note struct {
	Sharp string
	Flat  string
}

// Notes lists the twelve pitch classes starting from C.
var Notes = [steps.DefaultOctave]Note{
	{"C", "C"},
	{"C#", "Db"},
	{"D", "D"},
	{"D#", "Eb"},
	{"E", "E"},
	{"F", "F"},
	{"F#", "Gb"},
	{"G", "G"},
	{"G#", "Ab"},
	{"A", "A"},
	{"A#", "Bb"},
	{"B", "B"},
}

// Mod returns a modulo b in [0, b).
func Mod(a, b int) int {
	return ((a % b) + b) % b
}

// Name returns the display name of pitch class i (taken modulo 12), using
// ♯ and ♭ and showing both spellings for black keys: "C♯ / D♭".
func Name(i int) string {
	n := Notes[Mod(i, len(Notes))]
	sharp := strings.Replace(n.Sharp, "#", "♯", 1)
	flat := strings.Replace(n.Flat, "b", "♭", 1)
	if sharp == flat {
		return sharp
	}
	return sharp + " / " + flat
}

// Offsets returns the ascending semitone offsets of p played from root,
// starting at step rootStep of the pattern: root, root+s0, …, root+octave.
func Offsets(p steps.Pattern, root, rootStep int) []int {
	return p.Rotate(rootStep).Offsets(root)
}

// Classes is Offsets reduced modulo octave: the necklace positions that
// belong to the scale, the first and last both being the root.
func Classes(p steps.Pattern, root, rootStep, octave int) []int {
	out := Offsets(p, root, rootStep)
	for i := range out {
		out[i] = Mod(out[i], octave)
	}
	return out
}

// RootOffset returns how far round the necklace step rootStep of p begins,
// i.e. the sum of the steps before it.
func RootOffset(p steps.Pattern, rootStep int) int {
	if len(p) == 0 {
		return 0
	}
	k := Mod(rootStep, len(p))
	return p[:k].Sum()
}

// Nearest tracks a position on a circle of size m so that successive
// positions move the short way round. It is the rotation target for an
// animated necklace: after 0 → 10 the tracker reports -2, not 10.
type Nearest struct {
	m    int
	prev int
	set  bool
}

// NewNearest returns a tracker for a circle of size m.
func NewNearest(m int) *Nearest {
	return &Nearest{m: m}
}

// Next returns the value congruent to pp modulo m that is closest to the
// previously returned value. The first call returns pp unchanged.
func (n *Nearest) Next(pp int) int {
	if !n.set {
		n.prev, n.set = pp, true
		return pp
	}
	q := roundDiv(n.prev-pp, n.m)*n.m + pp
	n.prev = q
	return q
}

// roundDiv returns a/b rounded to the nearest integer, halves rounding up.
// b must be positive.
func roundDiv(a, b int) int {
	// floor((2a + b) / 2b)
	num := 2*a + b
	den := 2 * b
	q := num / den
	if (num%den != 0) && ((num < 0) != (den < 0)) {
		q--
	}
	return q
}
