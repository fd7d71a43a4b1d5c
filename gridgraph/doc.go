// Package gridgraph treats a rectangular 2D grid of values as an immutable,
// 4-connected graph.
//
// What:
//
//   - Graph[T] wraps a [][]T grid; every cell becomes a Node[T] holding the
//     cell value, its Coord and its canonical Key ("x,y").
//   - Each node is linked to the in-bounds cells up, down, left and right of
//     it, always in that order. There is no diagonal adjacency.
//   - Nodes sit in a flat row-major arena and adjacency is stored as integer
//     indices, so traversal code can keep per-call state in plain slices.
//   - Path[T] and PathsEqual support callers that compare walks by the set
//     of cells they cover.
//   - Regions and Perimeter partition the grid into connected areas.
//
// Key codec:
//
//	CoordinateToKey(x, y) and KeyToCoordinate(key) are mutually inverse for
//	every integer pair; KeyToCoordinate wraps ErrMalformedKey on bad input.
//
// Complexity:
//
//   - New:      O(W×H), Memory: O(W×H).
//   - Node/Lookup/At/NeighborIDs: O(1).
//   - Regions:  O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMalformedKey: a key does not decode into exactly two integers.
//
// A Graph is read-only after New returns and may be queried by any number of
// sequential traversals; the package makes no promises for concurrent callers.
package gridgraph
