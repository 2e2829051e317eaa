// Package frontier implements the cost-ordered priority structure that
// drives the maze search: a binary min-heap of search states keyed by
// accumulated cost.
//
// Ties on cost are broken by insertion order (first pushed, first popped),
// so a search over a fixed grid always pops states in the same sequence.
// The frontier uses the "lazy decrease-key" convention: callers push a
// fresh entry whenever a state improves and discard stale entries on pop.
//
// Complexity:
//
//   - Push:     O(log N)
//   - Pop:      O(log N)
//   - PeekCost: O(1)
package frontier

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/mazepath/statespace"
)

// Entry is one frontier item: a state, its tentative cost, and an optional
// payload carried along the path that produced it.
type Entry[P any] struct {
	State   statespace.State
	Cost    int64
	Payload P

	seq uint64 // insertion order, for deterministic tie-breaking
}

// Frontier is a min-priority queue of entries ordered by Cost.
// The zero value is not usable; construct with New.
// A Frontier is not safe for concurrent use; each search owns its own.
type Frontier[P any] struct {
	h   *heap.Heap[Entry[P]]
	seq uint64
}

// New returns an empty frontier.
func New[P any]() *Frontier[P] {
	return &Frontier[P]{
		h: heap.New[Entry[P]](func(a, b Entry[P]) bool {
			if a.Cost != b.Cost {
				return a.Cost < b.Cost
			}

			return a.seq < b.seq
		}),
	}
}

// Push inserts a state at the given cost.
func (f *Frontier[P]) Push(s statespace.State, cost int64, payload P) {
	f.h.Push(Entry[P]{State: s, Cost: cost, Payload: payload, seq: f.seq})
	f.seq++
}

// Pop removes and returns the lowest-cost entry. ok is false when the
// frontier is empty.
func (f *Frontier[P]) Pop() (e Entry[P], ok bool) {
	return f.h.Pop()
}

// PeekCost returns the smallest cost currently queued without removing it.
func (f *Frontier[P]) PeekCost() (int64, bool) {
	e, ok := f.h.Peek()
	if !ok {
		return 0, false
	}

	return e.Cost, true
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier[P]) Len() int { return f.h.Size() }
