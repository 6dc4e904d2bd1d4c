package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/necklace/sample"
	"github.com/katalvlaran/necklace/steps"
)

// Move is one step of a random walk.
type Move struct {
	// Vertex is the index of the pattern moved to.
	Vertex int

	// Pattern is the pattern moved to.
	Pattern steps.Pattern

	// Infeasible carries any constraint the sampler could not honour for
	// this move.
	Infeasible []sample.Constraint
}

// Walk takes up to n random moves starting at start. Each move samples
// among the current vertex's neighbours (and the vertex itself when it is
// self-adjacent) with s, biased by augProb and doubleHalfProb. The walk ends
// early when a vertex has no neighbours. A nil s uses sample.New().
// A negative n is rejected with ErrOptionViolation.
func (g *Graph) Walk(start, n int, s *sample.Sampler, augProb, doubleHalfProb float64) ([]Move, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: steps %d", ErrOptionViolation, n)
	}
	if start < 0 || start >= g.Len() {
		return nil, fmt.Errorf("%w: start %d", ErrIndexOutOfRange, start)
	}

	if s == nil {
		s = sample.New()
	}

	out := make([]Move, 0, n)
	cur := start
	for len(out) < n {
		candidates := g.adj[cur]
		if g.self[cur] {
			candidates = append([]int{cur}, candidates...)
		}
		if len(candidates) == 0 {
			break
		}

		patterns := make([]steps.Pattern, len(candidates))
		for i, v := range candidates {
			patterns[i] = g.set.At(v)
		}
		res, err := s.Draw(patterns, augProb, doubleHalfProb)
		if errors.Is(err, sample.ErrEmptyResult) {
			break
		}
		if err != nil {
			return out, err
		}

		next := g.set.Index(res.Pattern)
		out = append(out, Move{Vertex: next, Pattern: res.Pattern, Infeasible: res.Infeasible})
		cur = next
	}
	return out, nil
}
