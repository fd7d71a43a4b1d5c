// Package dfs implements depth-first traversal and exhaustive simple-path
// enumeration on gridgraph.Graph.
//
// Key features:
//   - DFS(g, start, opts...): iterative stack-based search, stopping at the
//     first node whose value equals the target (WithTarget).
//   - AllPaths(g, start, opts...): every simple path from start, recording
//     those that end on the target (or every prefix when no target is set).
//   - Predicate: WithPredicate(curr, neighbor) filters edges.
//   - Hooks: OnVisit with error abort; cancellation via context.Context.
//
// Contract shared with package bfs:
//
//	A missing start key yields an empty result, never an error. When no target
//	is set, or it is never reached, DFS returns every visited node with
//	Found == false, exactly as bfs.BFS does. The path DFS returns on a match
//	is the first found, not necessarily the shortest.
//
// Complexity:
//
//   - DFS:      Time O(V + E), Memory O(V).
//   - AllPaths: Time and output proportional to the number of simple paths,
//     exponential in the worst case; Memory O(V) for the recursion.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
