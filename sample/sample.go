package sample

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/necklace/classify"
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/steps"
)

// Constraint names a bias the caller asked for that a draw could not honour.
type Constraint int

const (
	// ConstraintNoAugmented: augProb was 0 but only patterns with an
	// augmented step were available.
	ConstraintNoAugmented Constraint = iota + 1

	// ConstraintNoDoubleHalf: doubleHalfProb was 0 but only patterns with
	// adjacent half steps were available.
	ConstraintNoDoubleHalf
)

// String returns a user-facing description of the unmet constraint.
func (c Constraint) String() string {
	switch c {
	case ConstraintNoAugmented:
		return "no scale without augmented seconds"
	case ConstraintNoDoubleHalf:
		return "no scale without double half steps"
	default:
		return fmt.Sprintf("constraint(%d)", int(c))
	}
}

// Result is the outcome of a successful draw.
type Result struct {
	// Pattern is the drawn pattern, owned by the caller.
	Pattern steps.Pattern

	// Infeasible lists the zero-probability constraints that had to be
	// violated to return Pattern. Empty when the draw honoured every bias.
	Infeasible []Constraint
}

// Feasible reports whether the draw honoured every requested bias.
func (r Result) Feasible() bool { return len(r.Infeasible) == 0 }

// Sampler performs biased random draws over pattern lists.
type Sampler struct {
	rng *rand.Rand
	log *slog.Logger
}

// New returns a Sampler. Without options it uses a fixed default seed and
// a discarding logger.
func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rngFromSeed(0)
	}
	if s.log == nil {
		s.log = discardLogger()
	}
	return s
}

// Draw picks one pattern from patterns. augProb and doubleHalfProb are
// percentages in [0, 100].
//
// Each stage prefers one side of a split and falls back to the other when
// the preferred side is empty. Only a fallback away from a probability of
// exactly 0 is reported in Result.Infeasible. A request of 100 is quietly
// overridden when no pattern has the property: Generate(2) drawn at
// (100, 0) returns [2] with Feasible() true.
//
// Errors:
//   - ErrInvalidProbability if either probability is out of range or NaN.
//   - ErrEmptyResult if patterns is empty.
func (s *Sampler) Draw(patterns []steps.Pattern, augProb, doubleHalfProb float64) (Result, error) {
	if err := checkProbability("augmented", augProb); err != nil {
		return Result{}, err
	}
	if err := checkProbability("double half", doubleHalfProb); err != nil {
		return Result{}, err
	}

	var res Result
	subset, forced, ok := s.choose(patterns, classify.HasAugmentedStep, augProb)
	if !ok {
		return Result{}, ErrEmptyResult
	}
	if forced {
		res.Infeasible = append(res.Infeasible, ConstraintNoAugmented)
	}

	subset, forced, ok = s.choose(subset, classify.HasAdjacentHalfSteps, doubleHalfProb)
	if !ok {
		return Result{}, ErrEmptyResult
	}
	if forced {
		res.Infeasible = append(res.Infeasible, ConstraintNoDoubleHalf)
	}

	res.Pattern = subset[s.rng.Intn(len(subset))].Clone()
	if !res.Feasible() {
		s.log.Debug("sample: constraint not satisfiable",
			"pattern", res.Pattern.String(),
			"infeasible", res.Infeasible,
			"augProb", augProb,
			"doubleHalfProb", doubleHalfProb)
	}
	return res, nil
}

// DrawSet is Draw over every entry of set.
func (s *Sampler) DrawSet(set *grammar.Set, augProb, doubleHalfProb float64) (Result, error) {
	if set == nil {
		return Result{}, ErrEmptyResult
	}
	return s.Draw(set.Patterns(), augProb, doubleHalfProb)
}

// choose performs one weighted two-way split. It returns the chosen side,
// whether that side was taken despite a zero probability, and false when
// both sides are empty.
func (s *Sampler) choose(patterns []steps.Pattern, pred classify.Predicate, prob float64) ([]steps.Pattern, bool, bool) {
	var with, without []steps.Pattern
	for _, p := range patterns {
		if pred(p) {
			with = append(with, p)
		} else {
			without = append(without, p)
		}
	}

	roll := 100 * s.rng.Float64()
	if (roll < prob || len(without) == 0) && len(with) > 0 {
		return with, prob == 0, true
	}
	if len(without) > 0 {
		return without, false, true
	}
	return nil, false, false
}

func checkProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return fmt.Errorf("%w: %s probability %v", ErrInvalidProbability, name, p)
	}
	return nil
}
