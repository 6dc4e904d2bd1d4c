package classify

import (
	"errors"

	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/steps"
)

// ErrEmptySet is returned when a proportion is requested over no patterns.
var ErrEmptySet = errors.New("classify: pattern set is empty")

// Predicate is a boolean property of a pattern.
type Predicate func(steps.Pattern) bool

// Not negates pred.
func Not(pred Predicate) Predicate {
	return func(p steps.Pattern) bool { return !pred(p) }
}

// And holds when every pred holds. With no arguments it is always true.
func And(preds ...Predicate) Predicate {
	return func(p steps.Pattern) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// HasAugmentedStep reports whether any step of p is three semitones.
func HasAugmentedStep(p steps.Pattern) bool {
	for _, s := range p {
		if s == steps.Augmented {
			return true
		}
	}
	return false
}

// HasAdjacentHalfSteps reports whether p[i] and p[i+1] are both half steps
// for some i in [0, len-2]. The pair (last, first) is not examined.
func HasAdjacentHalfSteps(p steps.Pattern) bool {
	for i := 0; i+1 < len(p); i++ {
		if p[i] == steps.Half && p[i+1] == steps.Half {
			return true
		}
	}
	return false
}

// HasAdjacentHalfStepsCyclic is HasAdjacentHalfSteps with the wraparound pair
// (last, first) included. A single-step pattern never qualifies.
func HasAdjacentHalfStepsCyclic(p steps.Pattern) bool {
	n := len(p)
	if n < 2 {
		return false
	}
	if HasAdjacentHalfSteps(p) {
		return true
	}
	return p[n-1] == steps.Half && p[0] == steps.Half
}

// Count returns how many patterns satisfy pred.
func Count(pred Predicate, patterns []steps.Pattern) int {
	n := 0
	for _, p := range patterns {
		if pred(p) {
			n++
		}
	}
	return n
}

// Proportion returns 100 * Count(pred, patterns) / len(patterns), a value in
// [0, 100]. ErrEmptySet is returned for an empty list.
func Proportion(pred Predicate, patterns []steps.Pattern) (float64, error) {
	if len(patterns) == 0 {
		return 0, ErrEmptySet
	}
	return 100 * float64(Count(pred, patterns)) / float64(len(patterns)), nil
}

// ProbabilityOf returns the percentage of set satisfying pred. Repeated
// derivations count once per derivation.
func ProbabilityOf(pred Predicate, set *grammar.Set) (float64, error) {
	if set == nil || set.Len() == 0 {
		return 0, ErrEmptySet
	}
	n := 0
	set.Each(func(_ int, p steps.Pattern) bool {
		if pred(p) {
			n++
		}
		return true
	})
	return 100 * float64(n) / float64(set.Len()), nil
}
