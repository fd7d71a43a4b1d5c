package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// walker encapsulates mutable BFS state for a single call.
type walker[T comparable] struct {
	graph  *gridgraph.Graph[T]
	opts   Options[T]
	ctx    context.Context
	queue  []int
	seen   []bool
	parent []int
	res    *Result[T]
}

// BFS runs breadth-first search on g starting from the node stored under start.
//
// Nodes are marked visited when discovered, so each node enters the queue at
// most once and the predicate is only consulted for undiscovered neighbors.
// Neighbors are expanded in the graph's up, down, left, right order.
//
// A start key absent from g yields an empty Result and a nil error.
// Returns ErrGraphNil for a nil graph, ctx.Err() on cancellation, or a
// wrapped OnVisit error.
func BFS[T comparable](g *gridgraph.Graph[T], start gridgraph.Key, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	startNode, ok := g.Lookup(start)
	if !ok {
		return &Result[T]{}, nil
	}

	n := g.Len()
	w := &walker[T]{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]int, 0, n),
		seen:   make([]bool, n),
		parent: make([]int, n),
		res:    &Result[T]{},
	}
	w.discover(startNode.Index(), -1)

	return w.res, w.loop()
}

// discover marks i visited, records its parent and appends it to the queue.
func (w *walker[T]) discover(i, parent int) {
	w.seen[i] = true
	w.parent[i] = parent
	w.queue = append(w.queue, i)
	w.res.Visited = append(w.res.Visited, w.graph.At(i))
}

// loop processes the queue until it empties, the target matches, or an error occurs.
func (w *walker[T]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[head]
		cur := w.graph.At(u)
		if err := w.opts.OnVisit(cur); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.Key(), err)
		}
		if w.opts.HasTarget && cur.Value() == w.opts.Target {
			w.res.Path = w.pathTo(u)
			w.res.Found = true
			return nil
		}

		for _, v := range w.graph.NeighborIDs(u) {
			if w.seen[v] {
				continue
			}
			if !w.opts.Predicate(cur, w.graph.At(v)) {
				continue
			}
			w.discover(v, u)
		}
	}

	return nil
}

// pathTo rebuilds start → i from the parent links.
func (w *walker[T]) pathTo(i int) gridgraph.Path[T] {
	var path gridgraph.Path[T]
	for at := i; at >= 0; at = w.parent[at] {
		path = append(path, w.graph.At(at))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
