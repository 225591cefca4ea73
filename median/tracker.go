// Package median implements the two-heap streaming median: O(log n)
// insertion, O(1) median query over an append-only stream of numbers.
package median

import "github.com/katalvlaran/lvlheap/heap"

// Tracker maintains the running median of an append-only number stream
// by partitioning the inserted values between two heaps:
//
//	– lower: a max-heap holding the smaller half (its root is the
//	  largest of the small values);
//	– upper: a min-heap holding the larger half (its root is the
//	  smallest of the large values).
//
// Two invariants hold after every Insert: every value in lower is ≤
// every value in upper, and |lower| equals |upper| or exceeds it by one.
// The median is therefore always derivable from the two roots in O(1).
//
// Tracker is not safe for concurrent use.
type Tracker[T Number] struct {
	lower *heap.Heap[T] // max-heap over the smaller half
	upper *heap.Heap[T] // min-heap over the larger half
}

// NewTracker returns an empty median tracker.
//
// Complexity: O(1).
func NewTracker[T Number]() *Tracker[T] {
	return &Tracker[T]{
		lower: heap.NewMax[T](),
		upper: heap.NewMin[T](),
	}
}

// Insert adds x to the stream.
//
// The rebalance runs in three fixed moves:
//  1. Push x into lower.
//  2. Move lower's root into upper. Routing every insertion through
//     lower's root is what guarantees max(lower) ≤ min(upper) — the
//     element that crosses over is the largest of the small half.
//  3. If upper has grown past lower, move upper's root back, restoring
//     |lower| ∈ {|upper|, |upper|+1}.
//
// Complexity: O(log n).
func (t *Tracker[T]) Insert(x T) {
	t.lower.Push(x)

	v, _ := t.lower.Pop()
	t.upper.Push(v)

	if t.lower.Len() < t.upper.Len() {
		v, _ = t.upper.Pop()
		t.lower.Push(v)
	}
}

// Median returns the running median. With an odd count it is lower's
// root — an actual data point. With an even count it is the mean of the
// two roots under T's native division: integer instantiations truncate,
// which is the documented behavior, not an accident.
//
// Returns ErrNoSamples before the first Insert.
//
// Complexity: O(1).
func (t *Tracker[T]) Median() (T, error) {
	if t.lower.Len() == 0 {
		var zero T

		return zero, ErrNoSamples
	}

	// Odd count: the size invariant puts the middle element at lower's root.
	low, _ := t.lower.Peek()
	if t.lower.Len() > t.upper.Len() {
		return low, nil
	}

	// Even count: average the two middle elements.
	high, _ := t.upper.Peek()

	return (low + high) / 2, nil
}

// Len returns the number of values inserted so far.
//
// Complexity: O(1).
func (t *Tracker[T]) Len() int { return t.lower.Len() + t.upper.Len() }
