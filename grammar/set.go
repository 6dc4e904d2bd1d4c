package grammar

import (
	"encoding/hex"

	"lukechampine.com/blake3"

	"github.com/katalvlaran/necklace/steps"
)

// Set is the immutable collection of patterns generated for one octave size.
//
// The grammar is ambiguous: some sequences have two derivations (2-3-1-2 is
// both "2 3 · C" and "2 · B → 3 · A"). A Set keeps one entry per derivation,
// so such sequences appear more than once and weigh proportionally more in
// sampling and in ProbabilityOf. Distinct drops the repeats.
//
// A Set is safe for concurrent readers: nothing mutates it after
// construction, and every accessor that exposes patterns hands out copies.
type Set struct {
	octave   int
	patterns []steps.Pattern
	index    map[string]int
}

func newSet(octave int, patterns []steps.Pattern) *Set {
	index := make(map[string]int, len(patterns))
	for i, p := range patterns {
		if _, seen := index[p.Key()]; !seen {
			index[p.Key()] = i
		}
	}
	return &Set{octave: octave, patterns: patterns, index: index}
}

// FromPatterns builds a Set over an arbitrary list of patterns, for example a
// filtered subset. Patterns are copied.
func FromPatterns(octave int, patterns []steps.Pattern) *Set {
	owned := make([]steps.Pattern, len(patterns))
	for i, p := range patterns {
		owned[i] = p.Clone()
	}
	return newSet(octave, owned)
}

// Octave returns the octave size the set was generated for.
func (s *Set) Octave() int { return s.octave }

// Len returns the number of patterns.
func (s *Set) Len() int { return len(s.patterns) }

// At returns a copy of the i-th pattern. It panics if i is out of range,
// like a slice index.
func (s *Set) At(i int) steps.Pattern { return s.patterns[i].Clone() }

// Patterns returns copies of all patterns in generation order.
func (s *Set) Patterns() []steps.Pattern {
	out := make([]steps.Pattern, len(s.patterns))
	for i, p := range s.patterns {
		out[i] = p.Clone()
	}
	return out
}

// Distinct returns a Set holding each sequence once, at the position of its
// first derivation. If s has no repeats the receiver itself is returned.
func (s *Set) Distinct() *Set {
	if len(s.index) == len(s.patterns) {
		return s
	}
	out := make([]steps.Pattern, 0, len(s.index))
	for i, p := range s.patterns {
		if s.index[p.Key()] == i {
			out = append(out, p)
		}
	}
	return newSet(s.octave, out)
}

// Count returns how many entries of the set equal p.
func (s *Set) Count(p steps.Pattern) int {
	k := p.Key()
	n := 0
	for _, q := range s.patterns {
		if q.Key() == k {
			n++
		}
	}
	return n
}

// Index returns the position of the first entry equal to p, or -1.
func (s *Set) Index(p steps.Pattern) int {
	if i, ok := s.index[p.Key()]; ok {
		return i
	}
	return -1
}

// Contains reports whether p is a member of the set.
func (s *Set) Contains(p steps.Pattern) bool {
	_, ok := s.index[p.Key()]
	return ok
}

// Each calls fn for every pattern in order until fn returns false.
// fn must not retain or modify p.
func (s *Set) Each(fn func(i int, p steps.Pattern) bool) {
	for i, p := range s.patterns {
		if !fn(i, p) {
			return
		}
	}
}

// Filter returns copies of the patterns for which keep returns true,
// preserving order.
func (s *Set) Filter(keep func(steps.Pattern) bool) []steps.Pattern {
	var out []steps.Pattern
	for _, p := range s.patterns {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Digest returns the hex BLAKE3-256 hash of the set's patterns in order.
// Two sets share a digest iff they hold the same patterns in the same order,
// which is what sampling reproducibility depends on.
func (s *Set) Digest() string {
	h := blake3.New(32, nil)
	for _, p := range s.patterns {
		h.Write([]byte(p.Key()))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
