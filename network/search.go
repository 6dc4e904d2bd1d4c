package network

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *Graph
	opts  SearchOptions
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Distances runs breadth-first search from source.
// Returns ErrIndexOutOfRange for a bad source, ErrOptionViolation for bad
// options, or the context's error on cancellation.
func (g *Graph) Distances(source int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if source < 0 || source >= g.Len() {
		return nil, fmt.Errorf("%w: source %d", ErrIndexOutOfRange, source)
	}

	n := g.Len()
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(source, 0, -1)
	return w.res, w.loop()
}

// enqueue records v at depth d with its parent and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.g.adj[item.v] {
			if _, seen := w.res.Depth[nb]; !seen {
				w.enqueue(nb, next, item.v)
			}
		}
	}
	return nil
}

// Path returns a fewest-edit path from one vertex to another, endpoints
// included. A vertex's path to itself is the vertex alone.
func (g *Graph) Path(from, to int) ([]int, error) {
	if to < 0 || to >= g.Len() {
		return nil, fmt.Errorf("%w: target %d", ErrIndexOutOfRange, to)
	}
	res, err := g.Distances(from)
	if err != nil {
		return nil, err
	}
	return res.PathTo(to)
}
