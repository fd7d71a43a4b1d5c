package gridgraph

// New builds a Graph from a non-empty rectangular grid indexed grid[y][x].
// Values are copied into the graph; later changes to grid are not observed.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New[T any](grid [][]T) (*Graph[T], error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Graph[T]{
		width:  w,
		height: h,
		nodes:  make([]Node[T], w*h),
		adj:    make([][]int, w*h),
		byKey:  make(map[Key]int, w*h),
	}

	// create nodes
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := g.index(x, y)
			key := CoordinateToKey(x, y)
			g.nodes[i] = Node[T]{key: key, coord: Coord{X: x, Y: y}, index: i, value: grid[y][x]}
			g.byKey[key] = i
		}
	}

	// establish edges
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := g.index(x, y)
			nbrs := make([]int, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if g.InBounds(nx, ny) {
					nbrs = append(nbrs, g.index(nx, ny))
				}
			}
			g.adj[i] = nbrs
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Graph[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph[T]) Height() int { return g.height }

// Len returns the number of nodes (Width×Height).
func (g *Graph[T]) Len() int { return len(g.nodes) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Graph[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Node returns the node at (x,y), or false if the coordinate is outside the grid.
func (g *Graph[T]) Node(x, y int) (*Node[T], bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}

	return &g.nodes[g.index(x, y)], true
}

// Lookup returns the node stored under key, or false if no such node exists.
func (g *Graph[T]) Lookup(key Key) (*Node[T], bool) {
	i, ok := g.byKey[key]
	if !ok {
		return nil, false
	}

	return &g.nodes[i], true
}

// At returns the node with row-major index i. It panics if i is out of range.
func (g *Graph[T]) At(i int) *Node[T] { return &g.nodes[i] }

// NeighborIDs returns the indices of the neighbors of node i in
// up, down, left, right order. The returned slice is shared and must not be modified.
func (g *Graph[T]) NeighborIDs(i int) []int { return g.adj[i] }

// Neighbors returns the neighbor nodes of n in up, down, left, right order.
func (g *Graph[T]) Neighbors(n *Node[T]) []*Node[T] {
	ids := g.adj[n.index]
	out := make([]*Node[T], len(ids))
	for k, j := range ids {
		out[k] = &g.nodes[j]
	}

	return out
}

// Nodes returns every node in row-major order.
func (g *Graph[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], len(g.nodes))
	for i := range g.nodes {
		out[i] = &g.nodes[i]
	}

	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Graph[T]) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Graph[T]) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}
