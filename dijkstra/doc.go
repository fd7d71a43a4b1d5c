// Package dijkstra implements single-source shortest paths on gridgraph.Graph.
//
// ShortestPath runs classic Dijkstra between two coordinates. Nodes must pass
// a CanTraverse check to be entered and each step is priced by a CostFunc
// (1 per step by default). Directional runs the same algorithm over
// (cell, facing) states so that a TurnCostFunc can charge for rotating, e.g.
// 1 per step plus 1000 per quarter turn.
//
// Complexity:
//
//   - Time:  O((V + E) log V)   (×4 states per cell for Directional)
//   - Each state is finalized at most once.
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E)
//   - Flat distance, predecessor and finalized slices indexed by state.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - The queue is minheap.Heap ordered by tentative distance.
//   - We use a "lazy" decrease-key strategy: improved states are pushed again
//     and stale entries are skipped when popped, using a finalized set at the
//     same granularity as the distance table.
//   - The search returns as soon as the end is finalized; an exhausted queue
//     yields an empty path, which callers distinguish from start == end
//     (a one-node path) by length.
//   - Cost functions are called once per edge whose target passes
//     CanTraverse and is not yet finalized; a negative cost aborts with
//     ErrNegativeCost, and a path cost past math.MaxInt64 aborts with
//     ErrCostOverflow.
package dijkstra
