package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameValue[T comparable](a, b *Node[T]) bool { return a.Value() == b.Value() }

func runeGrid(rows ...string) [][]rune {
	out := make([][]rune, len(rows))
	for i, r := range rows {
		out[i] = []rune(r)
	}

	return out
}

// TestRegions_Plots checks regions, areas and perimeters on a small plot map.
//
//	AAAA
//	BBCD
//	BBCC
//	EEEC
//
// Expected: A area 4 perimeter 10, B 4/8, C 4/10, D 1/4, E 3/8.
func TestRegions_Plots(t *testing.T) {
	g, err := New(runeGrid("AAAA", "BBCD", "BBCC", "EEEC"))
	require.NoError(t, err)

	regions := g.Regions(sameValue[rune])
	require.Len(t, regions, 5)

	type stat struct {
		plant     rune
		area, per int
	}
	var got []stat
	for _, r := range regions {
		got = append(got, stat{r[0].Value(), len(r), g.Perimeter(r)})
	}
	assert.Equal(t, []stat{
		{'A', 4, 10},
		{'B', 4, 8},
		{'C', 4, 10},
		{'D', 1, 4},
		{'E', 3, 8},
	}, got)
}

// TestRegions_SameLetterSplit ensures equal values that do not touch form separate regions.
func TestRegions_SameLetterSplit(t *testing.T) {
	g, err := New(runeGrid("XOX", "OOO", "XOX"))
	require.NoError(t, err)

	regions := g.Regions(sameValue[rune])
	require.Len(t, regions, 5)

	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 1, 1, 1, 5}, sizes)
}

// TestRegions_CoverGrid checks every node lands in exactly one region.
func TestRegions_CoverGrid(t *testing.T) {
	g, err := New([][]int{{1, 1, 2}, {3, 1, 2}, {3, 3, 3}})
	require.NoError(t, err)

	count := make(map[Key]int)
	for _, r := range g.Regions(sameValue[int]) {
		for _, n := range r {
			count[n.Key()]++
		}
	}
	assert.Len(t, count, g.Len())
	for k, c := range count {
		assert.Equal(t, 1, c, "node %s", k)
	}
}
