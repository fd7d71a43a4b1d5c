package gridgraph

// Coord is an integer grid position. X grows to the right, Y grows downwards.
type Coord struct {
	X, Y int
}

// Key returns the canonical key of c.
func (c Coord) Key() Key { return CoordinateToKey(c.X, c.Y) }

// Add returns c translated by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Key is the canonical "x,y" encoding of a Coord. Distinct coordinates
// always produce distinct keys.
type Key string

// Node is one grid cell. Nodes are owned by their Graph and never change
// after construction; neighbors are reached through the Graph by index.
type Node[T any] struct {
	key   Key
	coord Coord
	index int
	value T
}

// Key returns the node's coordinate key.
func (n *Node[T]) Key() Key { return n.key }

// Coord returns the node's grid position.
func (n *Node[T]) Coord() Coord { return n.coord }

// Index returns the node's row-major position inside its Graph.
func (n *Node[T]) Index() int { return n.index }

// Value returns the payload stored at the cell.
func (n *Node[T]) Value() T { return n.value }

// Predicate decides whether the edge current→neighbor may be followed.
// It must not have side effects; traversals call it at most once per edge
// they examine.
type Predicate[T any] func(current, neighbor *Node[T]) bool

// Graph is an immutable 4-connected view of a rectangular grid.
//
// Nodes live in a flat arena in row-major order; adjacency is stored as
// integer indices into that arena, so the cyclic neighbor relation never
// turns into pointer cycles between nodes.
type Graph[T any] struct {
	width, height int
	nodes         []Node[T]
	adj           [][]int
	byKey         map[Key]int
}

// neighborOffsets is the fixed visiting order: up, down, left, right.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
