package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ExampleNew builds a graph from a height map and walks the neighbors of the
// centre cell in the fixed up, down, left, right order.
func ExampleNew() {
	g, _ := gridgraph.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	center, _ := g.Node(1, 1)
	fmt.Println("nodes:", g.Len())
	for _, n := range g.Neighbors(center) {
		fmt.Printf("%s=%d\n", n.Key(), n.Value())
	}

	// Output:
	// nodes: 9
	// 1,0=2
	// 1,2=8
	// 0,1=4
	// 2,1=6
}

// ExampleGraph_Regions groups equal letters into connected plots.
func ExampleGraph_Regions() {
	g, _ := gridgraph.New([][]rune{
		[]rune("AAB"),
		[]rune("ABB"),
	})

	same := func(a, b *gridgraph.Node[rune]) bool { return a.Value() == b.Value() }
	for _, r := range g.Regions(same) {
		fmt.Printf("%c area=%d perimeter=%d keys=%v\n", r[0].Value(), len(r), g.Perimeter(r), r.Keys())
	}

	// Output:
	// A area=3 perimeter=8 keys=[0,0 0,1 1,0]
	// B area=3 perimeter=8 keys=[2,0 2,1 1,1]
}

// ExampleKeyToCoordinate shows the key codec round trip.
func ExampleKeyToCoordinate() {
	k := gridgraph.CoordinateToKey(12, 7)
	x, y, err := gridgraph.KeyToCoordinate(k)
	fmt.Println(k, x, y, err)

	_, _, err = gridgraph.KeyToCoordinate("12;7")
	fmt.Println(err)

	// Output:
	// 12,7 12 7 <nil>
	// gridgraph: malformed coordinate key: "12;7"
}
