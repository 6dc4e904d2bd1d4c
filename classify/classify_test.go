package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necklace/classify"
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/steps"
)

// TestPredicates_Table exercises both predicates and the cyclic variant on
// hand-picked patterns.
func TestPredicates_Table(t *testing.T) {
	tests := []struct {
		name       string
		p          steps.Pattern
		aug        bool
		double     bool
		doubleWrap bool
	}{
		{"natural minor", steps.Of(2, 1, 2, 2, 1, 2, 2), false, false, false},
		{"ionian", steps.Of(2, 2, 1, 2, 2, 2, 1), false, false, false},
		{"harmonic minor", steps.Of(2, 1, 2, 2, 1, 3, 1), true, false, false},
		{"double harmonic", steps.Of(1, 3, 1, 2, 1, 3, 1), true, false, true},
		{"leading pair", steps.Of(1, 1, 2, 2, 2, 2, 2), false, true, true},
		{"wraparound only", steps.Of(1, 2, 2, 2, 2, 2, 1), false, false, true},
		{"single half", steps.Of(1), false, false, false},
		{"empty", steps.Pattern{}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.aug, classify.HasAugmentedStep(tt.p))
			assert.Equal(t, tt.double, classify.HasAdjacentHalfSteps(tt.p))
			assert.Equal(t, tt.doubleWrap, classify.HasAdjacentHalfStepsCyclic(tt.p))
		})
	}
}

// TestAdjacentHalfSteps_WrapAgreesOnGeneratedSets documents that the
// wraparound choice is invisible on grammar output.
func TestAdjacentHalfSteps_WrapAgreesOnGeneratedSets(t *testing.T) {
	for n := 0; n <= 14; n++ {
		set, err := grammar.Generate(n)
		require.NoError(t, err)
		for _, p := range set.Patterns() {
			assert.Equal(t,
				classify.HasAdjacentHalfSteps(p),
				classify.HasAdjacentHalfStepsCyclic(p),
				"n=%d p=%v", n, p)
		}
	}
}

// TestProbabilityOf_Standard pins the slider defaults for twelve semitones.
func TestProbabilityOf_Standard(t *testing.T) {
	set, err := grammar.Generate(12)
	require.NoError(t, err)

	aug, err := classify.ProbabilityOf(classify.HasAugmentedStep, set)
	require.NoError(t, err)
	assert.InDelta(t, 100.0*100/136, aug, 1e-9)

	dbl, err := classify.ProbabilityOf(classify.HasAdjacentHalfSteps, set)
	require.NoError(t, err)
	assert.InDelta(t, 100.0*77/136, dbl, 1e-9)
}

// TestProbabilityOf_Complement checks p + not p == 100 and the range.
func TestProbabilityOf_Complement(t *testing.T) {
	preds := map[string]classify.Predicate{
		"aug":    classify.HasAugmentedStep,
		"double": classify.HasAdjacentHalfSteps,
		"both":   classify.And(classify.HasAugmentedStep, classify.HasAdjacentHalfSteps),
	}
	for n := 2; n <= 12; n++ {
		set, err := grammar.Generate(n)
		require.NoError(t, err)
		if set.Len() == 0 {
			continue
		}
		for name, pred := range preds {
			p, err := classify.ProbabilityOf(pred, set)
			require.NoError(t, err)
			q, err := classify.ProbabilityOf(classify.Not(pred), set)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, p, 0.0, name)
			assert.LessOrEqual(t, p, 100.0, name)
			assert.InDelta(t, 100.0, p+q, 1e-9, "n=%d %s", n, name)
		}
	}
}

// TestProbabilityOf_Empty reports ErrEmptySet rather than dividing by zero.
func TestProbabilityOf_Empty(t *testing.T) {
	set, err := grammar.Generate(1)
	require.NoError(t, err)

	_, err = classify.ProbabilityOf(classify.HasAugmentedStep, set)
	assert.ErrorIs(t, err, classify.ErrEmptySet)

	_, err = classify.ProbabilityOf(classify.HasAugmentedStep, nil)
	assert.ErrorIs(t, err, classify.ErrEmptySet)

	_, err = classify.Proportion(classify.HasAugmentedStep, nil)
	assert.ErrorIs(t, err, classify.ErrEmptySet)
}

// TestProportion agrees with ProbabilityOf on a plain slice.
func TestProportion(t *testing.T) {
	ps := []steps.Pattern{steps.Of(2, 3, 1, 2, 2, 2), steps.Of(2, 2, 2, 2, 2, 2)}
	v, err := classify.Proportion(classify.HasAugmentedStep, ps)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)
	assert.Equal(t, 1, classify.Count(classify.HasAugmentedStep, ps))
}
