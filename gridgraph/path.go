package gridgraph

// Path is an ordered walk through a Graph.
type Path[T any] []*Node[T]

// Keys returns the node keys of p in order.
func (p Path[T]) Keys() []Key {
	keys := make([]Key, len(p))
	for i, n := range p {
		keys[i] = n.key
	}

	return keys
}

// Contains reports whether a node with the same key appears in p.
func (p Path[T]) Contains(n *Node[T]) bool {
	for _, m := range p {
		if m.key == n.key {
			return true
		}
	}

	return false
}

// PathsEqual reports whether a and b cover the same set of node keys,
// ignoring order and repetition.
func PathsEqual[T any](a, b Path[T]) bool {
	setA := make(map[Key]struct{}, len(a))
	for _, n := range a {
		setA[n.key] = struct{}{}
	}
	setB := make(map[Key]struct{}, len(b))
	for _, n := range b {
		setB[n.key] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for k := range setA {
		if _, ok := setB[k]; !ok {
			return false
		}
	}

	return true
}
