package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ExampleShortestPath routes across a small walled map.
func ExampleShortestPath() {
	g, _ := gridgraph.New([][]rune{
		[]rune("..#."),
		[]rune(".##."),
		[]rune("...."),
	})
	passable := func(n *gridgraph.Node[rune]) bool { return n.Value() != '#' }

	res, _ := dijkstra.ShortestPath(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 3, Y: 0}, passable)
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path.Keys())

	// Output:
	// cost: 7
	// path: [0,0 0,1 0,2 1,2 2,2 3,2 3,1 3,0]
}

// ExampleDirectional charges 1000 per quarter turn on top of 1 per step.
func ExampleDirectional() {
	g, _ := gridgraph.New([][]rune{
		[]rune("...."),
		[]rune(".##."),
		[]rune("...."),
	})
	passable := func(n *gridgraph.Node[rune]) bool { return n.Value() != '#' }

	res, _ := dijkstra.Directional(g, gridgraph.Coord{X: 0, Y: 2}, gridgraph.Coord{X: 3, Y: 0}, dijkstra.East, passable)
	fmt.Println("cost:", res.Cost, "facing:", res.Facing)
	fmt.Println("path:", res.Path.Keys())

	// Output:
	// cost: 1005 facing: N
	// path: [0,2 1,2 2,2 3,2 3,1 3,0]
}
