package minheap

import "errors"

// ErrNilComparator is the panic value used by New when cmp is nil.
var ErrNilComparator = errors.New("minheap: comparator must not be nil")

// Heap is a binary min-heap of T.
type Heap[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// New returns an empty heap ordered by cmp.
// It panics with ErrNilComparator if cmp is nil.
func New[T any](cmp func(a, b T) int) *Heap[T] {
	if cmp == nil {
		panic(ErrNilComparator)
	}

	return &Heap[T]{cmp: cmp}
}

// Len returns the number of items currently stored.
func (h *Heap[T]) Len() int { return len(h.items) }

// Push inserts item and restores heap order.
func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum item.
// The boolean is false (and the zero T returned) when the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	top := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = zero // release reference held by the backing array
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.items[0] = last
		h.siftDown(0)
	}

	return top, true
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Reset drops all items but keeps the allocated capacity.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

// siftUp moves items[i] towards the root while it is strictly smaller than its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) >= 0 {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown moves items[i] towards the leaves, swapping with the strictly smaller child.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1
		if left < n && h.cmp(h.items[left], h.items[smallest]) < 0 {
			smallest = left
		}
		if right < n && h.cmp(h.items[right], h.items[smallest]) < 0 {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
