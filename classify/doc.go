// Package classify computes the two musical properties used to bias scale
// selection, and the share of a pattern set that has each of them.
//
//   - HasAugmentedStep     — the pattern contains a step of three semitones.
//   - HasAdjacentHalfSteps — two half steps sit next to each other.
//
// HasAdjacentHalfSteps looks at neighbouring positions in sequence order only;
// it never compares the last step with the first. Scales are cyclic, so a
// strict musical reading would also check the wraparound pair; that variant is
// HasAdjacentHalfStepsCyclic. The two agree on every grammar-generated set,
// because no derivation ends on a half step, and differ only on hand-written
// patterns such as 1-2-2-2-2-2-1.
package classify
