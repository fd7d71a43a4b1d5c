package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// Sentinel errors returned by the search functions.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNegativeCost indicates that a cost function returned a negative value.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrCostOverflow indicates that a path cost exceeded math.MaxInt64.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows int64")

	// ErrBadDirection indicates an unknown direction name.
	ErrBadDirection = errors.New("dijkstra: unknown direction")
)

// Defaults used by DefaultOptions for the directional search.
const (
	DefaultMoveCost    int64 = 1
	DefaultTurnPenalty int64 = 1000
)

// CanTraverse reports whether a node may be entered.
// It is consulted once per examined edge, for the node being entered only;
// the start node is always accepted.
type CanTraverse[T any] func(n *gridgraph.Node[T]) bool

// CostFunc returns the non-negative cost of stepping from → to.
type CostFunc[T any] func(from, to *gridgraph.Node[T]) int64

// TurnCostFunc returns the non-negative cost of stepping from → to while
// currently facing the given direction.
type TurnCostFunc[T any] func(from, to *gridgraph.Node[T], facing Direction) int64

// Options configures ShortestPath and Directional.
type Options[T any] struct {
	Ctx      context.Context
	Cost     CostFunc[T]
	TurnCost TurnCostFunc[T]
	MaxCost  int64

	err error
}

// Option represents a functional option.
type Option[T any] func(*Options[T])

// DefaultOptions returns Options with:
//   - Context.Background()
//   - Cost: 1 per step
//   - TurnCost: TurnPenalty(DefaultMoveCost, DefaultTurnPenalty)
//   - MaxCost: math.MaxInt64 (no cap)
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Ctx:      context.Background(),
		Cost:     func(_, _ *gridgraph.Node[T]) int64 { return 1 },
		TurnCost: TurnPenalty[T](DefaultMoveCost, DefaultTurnPenalty),
		MaxCost:  math.MaxInt64,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCost sets the per-edge cost used by ShortestPath.
func WithCost[T any](fn CostFunc[T]) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithTurnCost sets the per-edge cost used by Directional.
func WithTurnCost[T any](fn TurnCostFunc[T]) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.TurnCost = fn
		}
	}
}

// WithMaxCost stops exploring states whose distance would exceed max.
// A negative max is recorded and surfaced as ErrOptionViolation.
func WithMaxCost[T any](max int64) Option[T] {
	return func(o *Options[T]) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// Result is a shortest path and its total cost.
// An empty Path means the end was unreachable; a single-node Path means
// start and end coincide.
type Result[T any] struct {
	Path gridgraph.Path[T]
	Cost int64
}

// Reachable reports whether a path was found.
func (r *Result[T]) Reachable() bool { return len(r.Path) > 0 }

// DirectionalResult extends Result with the facing on arrival.
type DirectionalResult[T any] struct {
	Result[T]
	Facing Direction
}

// Direction is a compass heading on the grid. North is towards y-1.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionDeltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the (dx, dy) of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d&3]
	return v[0], v[1]
}

// Turns returns the minimal number of quarter turns from d to to (0, 1 or 2).
func (d Direction) Turns(to Direction) int {
	cw := (int(to) - int(d) + 4) % 4
	if cw > 2 {
		return 4 - cw
	}

	return cw
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts N/E/S/W, the full compass names, or the screen
// aliases up/right/down/left (up is North), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up":
		return North, nil
	case "e", "east", "right":
		return East, nil
	case "s", "south", "down":
		return South, nil
	case "w", "west", "left":
		return West, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// DirectionBetween returns the heading of a single orthogonal step from → to.
// The boolean is false if the two coordinates are not 4-adjacent.
func DirectionBetween(from, to gridgraph.Coord) (Direction, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	for d, v := range directionDeltas {
		if v[0] == dx && v[1] == dy {
			return Direction(d), true
		}
	}

	return 0, false
}

// TurnPenalty returns a TurnCostFunc charging move per step plus turn per
// quarter rotation needed to face the direction of the step.
func TurnPenalty[T any](move, turn int64) TurnCostFunc[T] {
	return func(from, to *gridgraph.Node[T], facing Direction) int64 {
		next, _ := DirectionBetween(from.Coord(), to.Coord())
		return move + int64(facing.Turns(next))*turn
	}
}
