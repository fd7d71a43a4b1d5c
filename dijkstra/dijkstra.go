package dijkstra

import (
	"cmp"
	"fmt"
	"math"

	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/minheap"
)

// queueItem is a state and its tentative distance. For ShortestPath the
// state is a node index; for Directional it is node*4 + facing.
type queueItem struct {
	state int
	dist  int64
}

// unreached marks a state with no tentative distance yet. Valid distances
// are never negative, so every int64 up to math.MaxInt64 stays usable.
const unreached int64 = -1

func newQueue() *minheap.Heap[queueItem] {
	return minheap.New(func(a, b queueItem) int { return cmp.Compare(a.dist, b.dist) })
}

// ShortestPath returns a minimum-cost path from start to end.
//
// Only nodes accepted by canTraverse are entered (nil accepts every node).
// Each step costs Options.Cost(from, to), 1 unless WithCost is given.
// Ties between equal-cost paths are broken by queue order and are not
// otherwise specified.
//
// Returns an empty Result (not an error) if start is outside the graph or
// end is unreachable. Returns ErrGraphNil, ErrOptionViolation,
// ErrNegativeCost, ErrCostOverflow, or ctx.Err() on cancellation.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func ShortestPath[T any](g *gridgraph.Graph[T], start, end gridgraph.Coord, canTraverse CanTraverse[T], opts ...Option[T]) (*Result[T], error) {
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
		return &Result[T]{}, nil
	}
	dst, ok := g.Node(end.X, end.Y)
	if !ok {
		return &Result[T]{}, nil
	}

	r := &runner[T]{
		g:       g,
		cfg:     cfg,
		can:     canTraverse,
		dist:    make([]int64, g.Len()),
		prev:    make([]int, g.Len()),
		visited: make([]bool, g.Len()),
		pq:      newQueue(),
	}

	return r.run(src.Index(), dst.Index())
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[T any] struct {
	g       *gridgraph.Graph[T]
	cfg     Options[T]
	can     CanTraverse[T]
	dist    []int64
	prev    []int
	visited []bool
	pq      *minheap.Heap[queueItem]
}

func (r *runner[T]) run(src, dst int) (*Result[T], error) {
	for i := range r.dist {
		r.dist[i] = unreached
		r.prev[i] = -1
	}
	r.dist[src] = 0
	r.pq.Push(queueItem{state: src, dist: 0})

	for r.pq.Len() > 0 {
		select {
		case <-r.cfg.Ctx.Done():
			return nil, r.cfg.Ctx.Err()
		default:
		}

		item, _ := r.pq.Pop()
		u := item.state
		// stale entry left behind by a later improvement
		if r.visited[u] {
			continue
		}
		if item.dist > r.cfg.MaxCost {
			break
		}
		r.visited[u] = true

		if u == dst {
			return &Result[T]{Path: r.pathTo(u), Cost: item.dist}, nil
		}
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	return &Result[T]{}, nil
}

// relax tries to improve every traversable, unfinalized neighbor of u.
func (r *runner[T]) relax(u int) error {
	from := r.g.At(u)
	for _, v := range r.g.NeighborIDs(u) {
		if r.visited[v] {
			continue
		}
		to := r.g.At(v)
		if !r.can(to) {
			continue
		}
		w := r.cfg.Cost(from, to)
		if w < 0 {
			return fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, from.Key(), to.Key(), w)
		}
		newDist, err := extend(r.dist[u], w, from, to)
		if err != nil {
			return err
		}
		if !improves(newDist, r.dist[v], r.cfg.MaxCost) {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.pq.Push(queueItem{state: v, dist: newDist})
	}

	return nil
}

func (r *runner[T]) pathTo(i int) gridgraph.Path[T] {
	var path gridgraph.Path[T]
	for at := i; at >= 0; at = r.prev[at] {
		path = append(path, r.g.At(at))
	}
	reverse(path)

	return path
}

// extend returns dist+w, or ErrCostOverflow if the sum exceeds math.MaxInt64.
// Both arguments are non-negative.
func extend[T any](dist, w int64, from, to *gridgraph.Node[T]) (int64, error) {
	if w > math.MaxInt64-dist {
		return 0, fmt.Errorf("%w: %s→%s dist=%d cost=%d", ErrCostOverflow, from.Key(), to.Key(), dist, w)
	}
	return dist + w, nil
}

// improves reports whether candidate is within maxCost and beats best.
func improves(candidate, best, maxCost int64) bool {
	if candidate > maxCost {
		return false
	}
	return best == unreached || candidate < best
}

func reverse[T any](p gridgraph.Path[T]) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
