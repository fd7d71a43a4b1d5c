// Package minheap provides a generic binary min-heap ordered by a
// caller-supplied comparator.
//
// What:
//
//   - Heap[T] stores arbitrary payloads in a flat slice laid out as an
//     implicit binary tree (children of i live at 2i+1 and 2i+2).
//   - Ordering comes from cmp(a, b) with the usual three-way contract:
//     negative when a sorts before b, zero when equal, positive otherwise.
//   - Ties are broken by whatever the sift loops leave in place; callers must
//     not rely on the relative order of equal items.
//
// Complexity:
//
//   - Push, Pop: O(log N).
//   - Peek, Len: O(1).
//
// The heap is not safe for concurrent use.
package minheap
