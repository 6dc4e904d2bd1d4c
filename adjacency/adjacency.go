// SPDX-License-Identifier: MIT
// Package: necklace/adjacency
//
// adjacency.go — rotation-aware edit detection (Explain, IsAdjacent, To).
// Determinism: rotations of p outer, rotations of q inner, Swap/Split/Merge order.
// Allocation: none per comparison; rotations are read through index arithmetic.

package adjacency

import (
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/steps"
)

// rotated is a read-only view of a pattern rotated left by off.
type rotated struct {
	p   steps.Pattern
	off int
}

func (r rotated) at(i int) steps.Step {
	return r.p[(r.off+i)%len(r.p)]
}

// tailEqual reports whether a[ai:] and b[bi:] hold the same steps.
// Both views are assumed to have the same remaining length.
func tailEqual(a rotated, ai int, b rotated, bi int) bool {
	for ; ai < len(a.p); ai, bi = ai+1, bi+1 {
		if a.at(ai) != b.at(bi) {
			return false
		}
	}
	return true
}

// isSwap: equal lengths, heads (x,y) and (y,x) with x ≠ y, equal tails.
func isSwap(a, b rotated) bool {
	if len(a.p) != len(b.p) || len(a.p) < 2 {
		return false
	}
	x, y := a.at(0), a.at(1)
	if x == y || b.at(0) != y || b.at(1) != x {
		return false
	}
	return tailEqual(a, 2, b, 2)
}

// isSplit: a has one more step than b, a[0]+a[1] == b[0], a[2:] == b[1:].
func isSplit(a, b rotated) bool {
	if len(a.p) != len(b.p)+1 || len(a.p) < 2 {
		return false
	}
	if a.at(0)+a.at(1) != b.at(0) {
		return false
	}
	return tailEqual(a, 2, b, 1)
}

// Explain reports how p differs from q by one edit. The edit sits at the
// head of p.Rotate(From) and q.Rotate(To), so that
// Apply(q, Match.Edit, To, …) reproduces p.Rotate(From) for a suitable
// split point.
//
// Empty patterns are never adjacent to anything.
func Explain(p, q steps.Pattern) (Match, bool) {
	n, m := len(p), len(q)
	if n == 0 || m == 0 {
		return Match{}, false
	}
	d := n - m
	if d < -1 || d > 1 {
		return Match{}, false
	}

	for i := 0; i < n; i++ {
		a := rotated{p: p, off: i}
		for j := 0; j < m; j++ {
			b := rotated{p: q, off: j}
			switch {
			case d == 0 && isSwap(a, b):
				return Match{Edit: EditSwap, From: i, To: j}, true
			case d == 1 && isSplit(a, b):
				return Match{Edit: EditSplit, From: i, To: j}, true
			case d == -1 && isSplit(b, a):
				return Match{Edit: EditMerge, From: i, To: j}, true
			}
		}
	}
	return Match{}, false
}

// IsAdjacent reports whether p and q are one swap, split or merge apart
// under some rotation of each. The relation is symmetric.
func IsAdjacent(p, q steps.Pattern) bool {
	_, ok := Explain(p, q)
	return ok
}

// To returns the entries of set adjacent to p, in set order. p is included
// only if it is adjacent to itself; repeated derivations in set are
// returned as often as they occur.
func To(p steps.Pattern, set *grammar.Set) []steps.Pattern {
	if set == nil {
		return nil
	}
	var out []steps.Pattern
	set.Each(func(_ int, q steps.Pattern) bool {
		if IsAdjacent(p, q) {
			out = append(out, q.Clone())
		}
		return true
	})
	return out
}

// Apply performs edit e on the head of p.Rotate(rot) and returns the new
// pattern r, for which Explain(r, p) reports e. For EditSplit, by is the first
// of the two new steps and the second is the old head minus by; by is ignored
// otherwise. ok is false when the edit does not apply: identical steps for a
// swap, a head too small to split, or fewer than two steps to merge.
func Apply(p steps.Pattern, e Edit, rot int, by steps.Step) (steps.Pattern, bool) {
	r := p.Rotate(rot)
	switch e {
	case EditSwap:
		if len(r) < 2 || r[0] == r[1] {
			return nil, false
		}
		r[0], r[1] = r[1], r[0]
		return r, true
	case EditSplit:
		if len(r) == 0 || by <= 0 || by >= r[0] {
			return nil, false
		}
		out := make(steps.Pattern, 0, len(r)+1)
		out = append(out, by, r[0]-by)
		return append(out, r[1:]...), true
	case EditMerge:
		if len(r) < 2 {
			return nil, false
		}
		out := make(steps.Pattern, 0, len(r)-1)
		out = append(out, r[0]+r[1])
		return append(out, r[2:]...), true
	default:
		return nil, false
	}
}
