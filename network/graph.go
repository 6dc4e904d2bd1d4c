package network

import (
	"context"

	"github.com/katalvlaran/necklace/adjacency"
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/steps"
)

// Graph is the adjacency graph over the distinct patterns of a set.
// It is immutable after Build and safe for concurrent readers.
type Graph struct {
	set  *grammar.Set
	adj  [][]int
	self []bool
}

// Build computes the adjacency graph of set. Repeated derivations collapse
// to one vertex. ctx is checked once per row; on cancellation Build returns
// ctx.Err().
func Build(ctx context.Context, set *grammar.Set) (*Graph, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if ctx == nil {
		ctx = context.Background()
	}

	distinct := set.Distinct()
	ps := distinct.Patterns()
	n := len(ps)
	g := &Graph{
		set:  distinct,
		adj:  make([][]int, n),
		self: make([]bool, n),
	}

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		g.self[i] = adjacency.IsAdjacent(ps[i], ps[i])
		for j := i + 1; j < n; j++ {
			if adjacency.IsAdjacent(ps[i], ps[j]) {
				g.adj[i] = append(g.adj[i], j)
				g.adj[j] = append(g.adj[j], i)
			}
		}
	}
	return g, nil
}

// Set returns the distinct pattern set the vertices index into.
func (g *Graph) Set() *grammar.Set { return g.set }

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges, excluding self-adjacency.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nb := range g.adj {
		total += len(nb)
	}
	return total / 2
}

// Neighbors returns the vertices adjacent to v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}

// Degree returns the number of neighbours of v, or -1 if v is out of range.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= len(g.adj) {
		return -1
	}
	return len(g.adj[v])
}

// SelfAdjacent reports whether the pattern at v is one edit away from a
// rotation of itself.
func (g *Graph) SelfAdjacent(v int) bool {
	return v >= 0 && v < len(g.self) && g.self[v]
}

// Vertex returns the index of p, or ErrNotInGraph.
func (g *Graph) Vertex(p steps.Pattern) (int, error) {
	if i := g.set.Index(p); i >= 0 {
		return i, nil
	}
	return -1, ErrNotInGraph
}

// Components returns the connected components, each sorted ascending and
// ordered by their smallest vertex.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.adj))
	var comps [][]int
	for v := range g.adj {
		if seen[v] {
			continue
		}
		res, _ := g.Distances(v)
		comp := make([]int, 0, len(res.Order))
		for u := range g.adj {
			if _, ok := res.Depth[u]; ok {
				seen[u] = true
				comp = append(comp, u)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
