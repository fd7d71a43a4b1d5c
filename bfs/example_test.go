package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ExampleBFS finds the nearest exit ('E') through open cells ('.') of a maze.
func ExampleBFS() {
	g, _ := gridgraph.New([][]rune{
		[]rune("S.#."),
		[]rune(".##."),
		[]rune("...E"),
	})
	open := func(_, nbr *gridgraph.Node[rune]) bool { return nbr.Value() != '#' }

	res, _ := bfs.BFS(g, gridgraph.CoordinateToKey(0, 0),
		bfs.WithTarget('E'),
		bfs.WithPredicate(open),
	)
	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path.Keys())

	// Output:
	// found: true
	// path: [0,0 0,1 0,2 1,2 2,2 3,2]
}
