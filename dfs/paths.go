package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// pathWalker holds the recursion state of AllPaths.
type pathWalker[T comparable] struct {
	graph *gridgraph.Graph[T]
	opts  DFSOptions[T]
	onIt  []bool
	path  gridgraph.Path[T]
	out   []gridgraph.Path[T]
}

// AllPaths enumerates every simple path from the node stored under start by
// exhaustive depth-first extension in up, down, left, right order.
//
// A path is extended to a neighbor only if the predicate allows the edge and
// the neighbor is not already on the path. The path so far is recorded
// whenever no target is set or the current node's value equals the target,
// so without a target every prefix is reported. Results are not deduplicated;
// use gridgraph.PathsEqual to collapse paths covering the same cells.
//
// The number of simple paths grows exponentially with open area; callers
// should constrain the walk with a predicate.
func AllPaths[T comparable](g *gridgraph.Graph[T], start gridgraph.Key, opts ...Option[T]) ([]gridgraph.Path[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&dopts)
	}

	startNode, ok := g.Lookup(start)
	if !ok {
		return nil, nil
	}

	w := &pathWalker[T]{
		graph: g,
		opts:  dopts,
		onIt:  make([]bool, g.Len()),
	}
	if err := w.extend(startNode.Index()); err != nil {
		return w.out, err
	}

	return w.out, nil
}

func (w *pathWalker[T]) extend(i int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	cur := w.graph.At(i)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(cur); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", cur.Key(), err)
		}
	}

	w.path = append(w.path, cur)
	w.onIt[i] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.onIt[i] = false
	}()

	if !w.opts.HasTarget || cur.Value() == w.opts.Target {
		w.out = append(w.out, append(gridgraph.Path[T](nil), w.path...))
	}

	for _, v := range w.graph.NeighborIDs(i) {
		if w.onIt[v] || !w.opts.allow(cur, w.graph.At(v)) {
			continue
		}
		if err := w.extend(v); err != nil {
			return err
		}
	}

	return nil
}
