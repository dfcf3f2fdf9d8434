// Package frontier provides the min-priority queue shared by the grid search
// engines.
//
// Queue orders items by an arbitrary ordered key: the total distance for
// Dijkstra, the f = g + h estimate for A*. It has no decrease-key
// operation. Engines follow the "lazy-decrease-key" pattern:
// when a cheaper key for an item is found, a new entry is inserted and the
// outdated one stays in the heap until it is extracted and discarded by the
// engine's closed/finalized check.
//
// Ties between equal keys are broken by the internal heap layout and are not
// part of the contract.
//
// Complexity:
//
//   - Insert:     O(log N)
//   - ExtractMin: O(log N)
//   - Peek, Len:  O(1)
package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// entry pairs an item with its ordering key.
type entry[T any, K constraints.Ordered] struct {
	item T
	key  K
}

// entries is a min-heap of entry ordered by key ascending.
type entries[T any, K constraints.Ordered] []entry[T, K]

// Len returns the number of entries in the heap.
func (h entries[T, K]) Len() int { return len(h) }

// Less defines the comparison: smaller key → higher priority.
func (h entries[T, K]) Less(i, j int) bool { return h[i].key < h[j].key }

// Swap swaps two elements in the heap.
func (h entries[T, K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry[T, K].
func (h *entries[T, K]) Push(x any) { *h = append(*h, x.(entry[T, K])) }

// Pop removes and returns the last element of the backing slice.
// Called by heap.Pop after it moved the minimum there.
func (h *entries[T, K]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T, K]
	old[n-1] = zero
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of items of type T keyed by K.
// The zero value is ready to use. A Queue is not safe for concurrent use;
// each search run owns its own.
type Queue[T any, K constraints.Ordered] struct {
	h      entries[T, K]
	pushes int
}

// New returns an empty Queue with room for capacity entries.
func New[T any, K constraints.Ordered](capacity int) *Queue[T, K] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T, K]{h: make(entries[T, K], 0, capacity)}
}

// Insert adds item with the given key. The same item may be inserted any
// number of times with different keys.
func (q *Queue[T, K]) Insert(item T, key K) {
	heap.Push(&q.h, entry[T, K]{item: item, key: key})
	q.pushes++
}

// ExtractMin removes and returns the item with the smallest key.
// ok is false when the queue is empty.
func (q *Queue[T, K]) ExtractMin() (item T, key K, ok bool) {
	if len(q.h) == 0 {
		return item, key, false
	}
	e := heap.Pop(&q.h).(entry[T, K])

	return e.item, e.key, true
}

// Peek returns the item with the smallest key without removing it.
// ok is false when the queue is empty.
func (q *Queue[T, K]) Peek() (item T, key K, ok bool) {
	if len(q.h) == 0 {
		return item, key, false
	}
	return q.h[0].item, q.h[0].key, true
}

// Len returns the number of entries, stale duplicates included.
func (q *Queue[T, K]) Len() int { return len(q.h) }

// Empty reports whether the queue holds no entries.
func (q *Queue[T, K]) Empty() bool { return len(q.h) == 0 }

// Pushes returns the total number of Insert calls since creation.
func (q *Queue[T, K]) Pushes() int { return q.pushes }
