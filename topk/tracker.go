// Package topk implements the fixed-capacity tracker: a bounded min-heap
// that retains the k highest-scored keys of a stream in O(k) space.
package topk

import "github.com/katalvlaran/lvlheap/heap"

// Tracker maintains, across a stream of (key, score) registrations, the
// k entries with the highest scores seen so far, in O(k) space regardless
// of stream length.
//
// Internally the heap is ordered so the weakest retained candidate sits
// at the root: when a (k+1)-th candidate arrives, evicting the weakest is
// a single O(log k) root operation. Each key must be registered exactly
// once; for cumulative registration use Counter.
//
// Tracker is not safe for concurrent use.
type Tracker[K any] struct {
	k int                  // capacity bound
	h *heap.Heap[entry[K]] // min-by-score heap of retained candidates
}

// NewTracker returns a Tracker retaining the k highest-scored keys.
// Returns ErrBadK if k <= 0.
//
// Complexity: O(k) allocation.
func NewTracker[K any](k int) (*Tracker[K], error) {
	if k <= 0 {
		return nil, ErrBadK
	}

	// Weakest-at-root ordering: smaller score means higher heap priority.
	h, err := heap.New(
		func(a, b entry[K]) bool { return a.score < b.score },
		heap.WithCapacity(k),
	)
	if err != nil {
		return nil, err
	}

	return &Tracker[K]{k: k, h: h}, nil
}

// Register records that key carries the given score. If the tracker is
// already full and score outranks the current weakest candidate, the
// weakest is evicted; otherwise the registration is discarded.
//
// Complexity: O(log k).
func (t *Tracker[K]) Register(key K, score int64) {
	// Below capacity: plain insert.
	if t.h.Len() < t.k {
		t.h.Push(entry[K]{score: score, key: key})

		return
	}

	// At capacity: fused push+evict keeps the heap at exactly k entries
	// without growing the backing slice.
	t.h.PushPop(entry[K]{score: score, key: key})
}

// TopK returns the currently retained keys, at most k of them. With
// fewer than k registrations so far, every registered key is returned.
//
// The output order is unspecified (ascending by score of extraction as
// implemented); callers must not rely on it. The read is non-destructive:
// it drains a clone of the internal heap, so repeated calls with no
// intervening Register return the same multiset of keys.
//
// Complexity: O(k log k).
func (t *Tracker[K]) TopK() []K {
	entries := t.h.Clone().Drain()

	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}

	return keys
}

// Len returns the number of currently retained candidates (≤ k).
//
// Complexity: O(1).
func (t *Tracker[K]) Len() int { return t.h.Len() }
