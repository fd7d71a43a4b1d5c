// Package dfs defines types and options for depth-first search and
// exhaustive simple-path enumeration over a gridgraph.Graph.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ErrGraphNil is returned when a nil graph is passed to DFS or AllPaths.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS and AllPaths.
type Option[T comparable] func(*DFSOptions[T])

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions[T comparable] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Target, when HasTarget is set, is the value that ends DFS and that
	// AllPaths records paths for.
	Target    T
	HasTarget bool

	// Predicate, if non-nil, is called for each candidate edge current→neighbor.
	// Return true to follow it.
	Predicate gridgraph.Predicate[T]

	// OnVisit, if non-nil, is invoked when a node is popped (DFS) or entered (AllPaths).
	// Returning an error aborts traversal with that error.
	OnVisit func(n *gridgraph.Node[T]) error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No target
//   - No neighbor filtering
//   - No visit hook
func DefaultOptions[T comparable]() DFSOptions[T] {
	return DFSOptions[T]{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *DFSOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget returns an Option that sets the value to search for.
func WithTarget[T comparable](v T) Option[T] {
	return func(o *DFSOptions[T]) {
		o.Target = v
		o.HasTarget = true
	}
}

// WithPredicate returns an Option that filters edges.
func WithPredicate[T comparable](fn gridgraph.Predicate[T]) Option[T] {
	return func(o *DFSOptions[T]) {
		o.Predicate = fn
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
func WithOnVisit[T comparable](fn func(n *gridgraph.Node[T]) error) Option[T] {
	return func(o *DFSOptions[T]) {
		o.OnVisit = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[T any] struct {
	// Path runs from the start to the first popped node matching the target.
	// It is set only when Found is true and is not necessarily shortest.
	Path gridgraph.Path[T]

	// Visited lists every discovered node in discovery order.
	Visited gridgraph.Path[T]

	// Found reports whether a target was set and matched.
	Found bool
}

// Nodes returns Path when the target was found, otherwise Visited.
func (r *DFSResult[T]) Nodes() gridgraph.Path[T] {
	if r.Found {
		return r.Path
	}

	return r.Visited
}

func (o *DFSOptions[T]) allow(cur, nbr *gridgraph.Node[T]) bool {
	return o.Predicate == nil || o.Predicate(cur, nbr)
}

func (o *DFSOptions[T]) matches(n *gridgraph.Node[T]) bool {
	return o.HasTarget && n.Value() == o.Target
}
