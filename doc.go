// Package gridwalk is an in-memory toolkit for searching rectangular grids
// treated as 4-connected graphs.
//
// Every cell of a [][]T becomes a node keyed "x,y"; edges join orthogonal
// neighbours in the fixed order up, down, left, right. On top of that model
// the subpackages provide:
//
//	minheap/    generic binary min-heap driven by a comparator
//	gridgraph/  Graph, Node, key codec, connected regions and perimeters
//	bfs/        breadth-first traversal and shortest hop paths
//	dfs/        depth-first traversal and exhaustive simple-path enumeration
//	dijkstra/   cheapest paths, including a variant that charges for turns
//
// Quick ASCII example:
//
//	S . .
//	# # .
//	E . .
//
//	with '#' impassable, ShortestPath from S to E walks six steps around the
//	wall; Directional starting east pays two extra quarter turns on the way.
//
// The gridwalk command in cmd/gridwalk runs these searches over text files.
//
//	go install github.com/katalvlaran/gridwalk/cmd/gridwalk@latest
package gridwalk
