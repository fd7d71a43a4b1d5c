package gridgraph

// Regions partitions the grid into maximal connected regions, where two
// adjacent cells belong together when same(a, b) holds.
// Each region lists its nodes in breadth-first discovery order, starting from
// its first cell in row-major order; regions are returned in that same order.
//
// same should be symmetric (e.g. equal values); an asymmetric predicate makes
// the result depend on scan order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Graph[T]) Regions(same Predicate[T]) []Path[T] {
	seen := make([]bool, len(g.nodes))
	var regions []Path[T]

	for i0 := range g.nodes {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region Path[T]

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, &g.nodes[u])
			for _, v := range g.adj[u] {
				if seen[v] || !same(&g.nodes[u], &g.nodes[v]) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Perimeter counts the cell edges of region that border either the outside of
// the grid or a cell not in region.
func (g *Graph[T]) Perimeter(region Path[T]) int {
	in := make(map[int]struct{}, len(region))
	for _, n := range region {
		in[n.index] = struct{}{}
	}
	perimeter := 0
	for _, n := range region {
		perimeter += len(neighborOffsets) - len(g.adj[n.index])
		for _, v := range g.adj[n.index] {
			if _, ok := in[v]; !ok {
				perimeter++
			}
		}
	}

	return perimeter
}
