package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// dfsWalker encapsulates state during an iterative DFS.
type dfsWalker[T comparable] struct {
	graph  *gridgraph.Graph[T]
	opts   DFSOptions[T]
	stack  []int
	seen   []bool
	parent []int
	res    *DFSResult[T]
}

// DFS performs an iterative depth-first search on g from the node stored
// under start, using a LIFO stack. Nodes are marked visited when pushed, so
// each node is pushed at most once; neighbors are pushed in up, down, left,
// right order and therefore popped in reverse.
//
// If a target is set, DFS returns the path to the first popped node whose
// value equals it. Otherwise, or if the target is never found, the result
// holds every visited node (Found == false), matching bfs.BFS.
//
// A start key absent from g yields an empty result and a nil error.
func DFS[T comparable](g *gridgraph.Graph[T], start gridgraph.Key, opts ...Option[T]) (*DFSResult[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&dopts)
	}

	startNode, ok := g.Lookup(start)
	if !ok {
		return &DFSResult[T]{}, nil
	}

	n := g.Len()
	w := &dfsWalker[T]{
		graph:  g,
		opts:   dopts,
		stack:  make([]int, 0, n),
		seen:   make([]bool, n),
		parent: make([]int, n),
		res:    &DFSResult[T]{},
	}
	w.push(startNode.Index(), -1)

	return w.res, w.run()
}

func (w *dfsWalker[T]) push(i, parent int) {
	w.seen[i] = true
	w.parent[i] = parent
	w.stack = append(w.stack, i)
	w.res.Visited = append(w.res.Visited, w.graph.At(i))
}

func (w *dfsWalker[T]) run() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		cur := w.graph.At(u)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", cur.Key(), err)
			}
		}
		if w.opts.matches(cur) {
			w.res.Path = w.pathTo(u)
			w.res.Found = true
			return nil
		}

		for _, v := range w.graph.NeighborIDs(u) {
			if w.seen[v] || !w.opts.allow(cur, w.graph.At(v)) {
				continue
			}
			w.push(v, u)
		}
	}

	return nil
}

func (w *dfsWalker[T]) pathTo(i int) gridgraph.Path[T] {
	var path gridgraph.Path[T]
	for at := i; at >= 0; at = w.parent[at] {
		path = append(path, w.graph.At(at))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
