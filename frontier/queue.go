// Package frontier implements the min-cost priority queue that drives the
// grid search.
//
// The queue yields, on each Pop, the entry with the numerically smallest Cost.
// It never deduplicates by coordinate: when a cheaper route to a cell is found
// the search pushes a new entry and leaves the old one in place. Superseded
// ("stale") entries are recognised and dropped by the caller at pop time.
// This lazy decrease-key strategy keeps the structure a plain binary heap.
//
// Complexity:
//
//   - Push / Pop: O(log n).
//   - Space: O(number of pushes not yet popped).
//   - Ties: broken arbitrarily (no FIFO guarantee).
package frontier

import (
	"container/heap"

	"github.com/katalvlaran/colorfield/pixelgrid"
)

// Entry is a candidate "cell At may be reachable at Cost". Never mutated after Push.
type Entry struct {
	At   pixelgrid.Point
	Cost float32
}

// Queue is a min-heap of Entry ordered by Cost.
// The zero value is ready to use. Not safe for concurrent use.
type Queue struct {
	items  entryHeap
	pushes int
	peak   int
}

// New returns a Queue with room for capacity entries before growing.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{items: make(entryHeap, 0, capacity)}
}

// Len returns the number of entries currently held (stale ones included).
func (q *Queue) Len() int { return len(q.items) }

// Pushes returns the cumulative number of Push calls.
func (q *Queue) Pushes() int { return q.pushes }

// Peak returns the largest Len observed.
func (q *Queue) Peak() int { return q.peak }

// Push inserts e. O(log n).
func (q *Queue) Push(e Entry) {
	heap.Push(&q.items, e)
	q.pushes++
	if n := len(q.items); n > q.peak {
		q.peak = n
	}
}

// Pop removes and returns the lowest-cost entry. ok is false when the queue is empty.
// O(log n).
func (q *Queue) Pop() (e Entry, ok bool) {
	if len(q.items) == 0 {
		return Entry{}, false
	}
	return heap.Pop(&q.items).(Entry), true
}

// Peek returns the lowest-cost entry without removing it.
func (q *Queue) Peek() (e Entry, ok bool) {
	if len(q.items) == 0 {
		return Entry{}, false
	}
	return q.items[0], true
}

// entryHeap implements heap.Interface: smaller Cost → higher priority.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].Cost < h[j].Cost }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an Entry.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
