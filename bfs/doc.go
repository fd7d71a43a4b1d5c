// Package bfs provides breadth-first search over a gridgraph.Graph,
// returning either the first path to a target value or every reachable node.
//
// What
//
//   - Explore nodes in non-decreasing edge distance from a start key.
//   - Returns a Result containing:
//   - Path: start → first node whose value equals the target (when Found)
//   - Visited: all discovered nodes in discovery order
//   - Found: whether the target matched
//   - Filters individual edges via WithPredicate(curr, neighbor).
//   - Optional OnVisit hook on dequeue; returning an error aborts.
//
// Determinism
//
//	Neighbors are expanded in the graph's fixed up, down, left, right order
//	and each node is enqueued at most once (visited on discovery), so the
//	visit sequence and the returned path are fully reproducible. Without a
//	predicate the returned path is a shortest path by edge count.
//
// Complexity (V = W×H nodes, E ≤ 4V edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited flags and parent links.
//
// Usage
//
//	res, err := bfs.BFS(g, gridgraph.CoordinateToKey(0, 0),
//	    bfs.WithTarget(9),
//	    bfs.WithPredicate(func(cur, nbr *gridgraph.Node[int]) bool {
//	        return nbr.Value() == cur.Value()+1
//	    }),
//	)
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
//   - ctx.Err() when the context passed via WithContext is done.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// A start key that is not in the graph is not an error: BFS returns an empty Result.
package bfs
