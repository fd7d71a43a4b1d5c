package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

func randomGrid(n int) [][]int {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5) // values 0..4
		}
		grid[y] = row
	}

	return grid
}

// BenchmarkNew measures graph construction on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkNew(b *testing.B) {
	grid := randomGrid(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.New(grid); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRegions measures Regions on a random 500×500 grid with values in [0,4].
// Complexity: O(W×H×4)
func BenchmarkRegions(b *testing.B) {
	g, err := gridgraph.New(randomGrid(500))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	same := func(a, c *gridgraph.Node[int]) bool { return a.Value() == c.Value() }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions(same)
	}
}
