// Package sample draws a scale pattern at random, biased by how likely the
// caller wants an augmented step and a pair of adjacent half steps to be.
//
// The draw is a two-stage partition choice, not rejection sampling:
//
//  1. Split the candidates by HasAugmentedStep. Roll u in [0,100). Take the
//     augmented side when (u < augProb or the other side is empty) and the
//     augmented side is non-empty; otherwise take the other side if it is
//     non-empty; otherwise there is nothing to draw (ErrEmptyResult).
//  2. Split the chosen side by HasAdjacentHalfSteps and repeat with
//     doubleHalfProb.
//  3. Pick uniformly inside the final side.
//
// Every draw costs two rolls and one index; it always terminates.
//
// If a side whose probability was exactly 0 had to be taken because it was
// the only non-empty one, the draw still succeeds but Result.Infeasible
// names the constraint that could not be honoured, so the caller can tell
// the user ("no adjacent scale without augmented seconds").
//
// ⚙️ Usage:
//
//	s := sample.New(sample.WithSeed(42))
//	res, err := s.DrawSet(set, 30, 0)
//	switch {
//	case errors.Is(err, sample.ErrEmptyResult):
//		// nothing to choose from
//	case !res.Feasible():
//		// warn, then use res.Pattern anyway
//	}
//
// Concurrency: a Sampler wraps a *rand.Rand and is NOT goroutine-safe. Give
// each goroutine its own Sampler.
package sample
