package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// Directional returns a minimum-cost path from start to end where the
// search state is (cell, facing) rather than the cell alone. The walker
// begins at start facing the given direction; every step turns to face the
// direction of the move and costs Options.TurnCost(from, to, facing),
// TurnPenalty(1, 1000) by default.
//
// Distances, predecessors and the finalized set are all keyed by the
// composite state, so a cell may be finalized once per facing but each
// (cell, facing) pair at most once. The search stops the first time any
// state at end is finalized; that state's distance is optimal across all
// facings.
//
// Returns an empty result (not an error) if start is outside the graph or
// end is unreachable. Errors are as for ShortestPath.
//
// Complexity: O(4(V + E) log V) time, O(4V + E) memory.
func Directional[T any](g *gridgraph.Graph[T], start, end gridgraph.Coord, facing Direction, canTraverse CanTraverse[T], opts ...Option[T]) (*DirectionalResult[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if canTraverse == nil {
		canTraverse = func(*gridgraph.Node[T]) bool { return true }
	}

	src, ok := g.Node(start.X, start.Y)
	if !ok {
		return &DirectionalResult[T]{}, nil
	}
	dst, ok := g.Node(end.X, end.Y)
	if !ok {
		return &DirectionalResult[T]{}, nil
	}

	n := g.Len() * 4
	r := &turnRunner[T]{
		g:       g,
		cfg:     cfg,
		can:     canTraverse,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}

	return r.run(state(src.Index(), facing), dst.Index())
}

func state(node int, d Direction) int { return node*4 + int(d&3) }

func split(s int) (node int, d Direction) { return s / 4, Direction(s % 4) }

// turnRunner holds the mutable state of one Directional execution.
type turnRunner[T any] struct {
	g       *gridgraph.Graph[T]
	cfg     Options[T]
	can     CanTraverse[T]
	dist    []int64
	prev    []int
	visited []bool
}

func (r *turnRunner[T]) run(src, dst int) (*DirectionalResult[T], error) {
	for i := range r.dist {
		r.dist[i] = unreached
		r.prev[i] = -1
	}
	pq := newQueue()
	r.dist[src] = 0
	pq.Push(queueItem{state: src, dist: 0})

	for pq.Len() > 0 {
		select {
		case <-r.cfg.Ctx.Done():
			return nil, r.cfg.Ctx.Err()
		default:
		}

		item, _ := pq.Pop()
		s := item.state
		if r.visited[s] {
			continue
		}
		if item.dist > r.cfg.MaxCost {
			break
		}
		r.visited[s] = true

		u, facing := split(s)
		if u == dst {
			res := &DirectionalResult[T]{Facing: facing}
			res.Path = r.pathTo(s)
			res.Cost = item.dist
			return res, nil
		}

		from := r.g.At(u)
		for _, v := range r.g.NeighborIDs(u) {
			to := r.g.At(v)
			heading, _ := DirectionBetween(from.Coord(), to.Coord())
			next := state(v, heading)
			if r.visited[next] || !r.can(to) {
				continue
			}
			w := r.cfg.TurnCost(from, to, facing)
			if w < 0 {
				return nil, fmt.Errorf("%w: %s→%s facing %s cost=%d", ErrNegativeCost, from.Key(), to.Key(), facing, w)
			}
			newDist, err := extend(item.dist, w, from, to)
			if err != nil {
				return nil, err
			}
			if !improves(newDist, r.dist[next], r.cfg.MaxCost) {
				continue
			}
			r.dist[next] = newDist
			r.prev[next] = s
			pq.Push(queueItem{state: next, dist: newDist})
		}
	}

	return &DirectionalResult[T]{}, nil
}

func (r *turnRunner[T]) pathTo(s int) gridgraph.Path[T] {
	var path gridgraph.Path[T]
	for at := s; at >= 0; at = r.prev[at] {
		node, _ := split(at)
		path = append(path, r.g.At(node))
	}
	reverse(path)

	return path
}
