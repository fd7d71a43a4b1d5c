// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Target, when HasTarget is set, stops the search at the first node whose
	// value equals it.
	Target    T
	HasTarget bool

	// Predicate can skip edges by returning false.
	// Called once for each edge curr→neighbor whose neighbor is still undiscovered.
	Predicate gridgraph.Predicate[T]

	// OnVisit is called when a node is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n *gridgraph.Node[T]) error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no target (explore everything reachable)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:       context.Background(),
		Predicate: func(_, _ *gridgraph.Node[T]) bool { return true },
		OnVisit:   func(*gridgraph.Node[T]) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the search at the first dequeued node whose value equals v.
func WithTarget[T comparable](v T) Option[T] {
	return func(o *Options[T]) {
		o.Target = v
		o.HasTarget = true
	}
}

// WithPredicate skips the edge curr→neighbor when fn returns false.
func WithPredicate[T comparable](fn gridgraph.Predicate[T]) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Predicate = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from this callback stops the BFS.
func WithOnVisit[T comparable](fn func(n *gridgraph.Node[T]) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Path: start → first node matching the target, set only when Found.
//   - Visited: every discovered node, in discovery order.
//   - Found: whether a target was set and matched.
type Result[T any] struct {
	Path    gridgraph.Path[T]
	Visited gridgraph.Path[T]
	Found   bool
}

// Nodes returns Path when the target was found, otherwise Visited.
func (r *Result[T]) Nodes() gridgraph.Path[T] {
	if r.Found {
		return r.Path
	}

	return r.Visited
}
