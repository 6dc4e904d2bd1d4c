package network

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for graph queries.
var (
	// ErrNilSet is returned when Build is called without a set.
	ErrNilSet = errors.New("network: pattern set is nil")

	// ErrIndexOutOfRange is returned for a vertex index outside the graph.
	ErrIndexOutOfRange = errors.New("network: vertex index out of range")

	// ErrNotInGraph is returned when a pattern is not a vertex of the graph.
	ErrNotInGraph = errors.New("network: pattern not in graph")

	// ErrUnreachable is returned when no path connects two vertices.
	ErrUnreachable = errors.New("network: target unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")
)

// Option configures a search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the search runs.
type Option func(*SearchOptions)

// SearchOptions holds parameters for Distances.
type SearchOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many edits.
	MaxDepth int

	err error
}

// DefaultOptions returns options with a background context and no depth limit.
func DefaultOptions() SearchOptions {
	return SearchOptions{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to d edits from the start.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *SearchOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of Distances.
type Result struct {
	// Order lists vertices in visit order, starting with the source.
	Order []int

	// Depth maps each reached vertex to its edit distance from the source.
	Depth map[int]int

	// Parent maps each reached vertex except the source to its predecessor.
	Parent map[int]int
}

// PathTo rebuilds the path from the source to v using Parent links.
// It returns ErrUnreachable if v was not reached.
func (r *Result) PathTo(v int) ([]int, error) {
	if _, ok := r.Depth[v]; !ok {
		return nil, ErrUnreachable
	}
	path := make([]int, r.Depth[v]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = v
		v = r.Parent[v]
	}
	return path, nil
}
