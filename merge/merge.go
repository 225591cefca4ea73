// Package merge implements the k-way merge of pre-sorted sequences
// driven by a heap of current heads, one entry per unexhausted source.
package merge

import "github.com/katalvlaran/lvlheap/heap"

// head tracks the frontier of one input sequence: the value currently
// competing in the heap, which sequence it came from, and the index of
// that sequence's next element.
type head[T any] struct {
	value T   // the competing element
	seq   int // index of the source sequence
	next  int // index of the source's next element
}

// TopK merges m individually pre-sorted sequences and returns their k
// globally highest-priority elements, highest first, without
// materializing the full merge.
//
// Each sequence must already be sorted by descending priority under
// higher (its first element outranks its last). This is a documented
// precondition: verifying it would cost O(n) and defeat the streaming
// bound, so it is not checked.
//
// The heap holds at most one head per unexhausted sequence, so its size
// never exceeds m: initialize with every non-empty sequence's first
// element, then repeatedly pop the best head, emit it, and push the next
// element from the same sequence, stopping after k emissions or when
// every sequence is exhausted. With k ≥ n (total elements) the result is
// the full merge.
//
// Returns ErrNilCompare if higher is nil and ErrBadK if k < 0; k == 0
// yields an empty result. Ties break arbitrarily.
//
// Complexity: O((m + k) log m) time, O(m) auxiliary space.
func TopK[T any](seqs [][]T, higher heap.Compare[T], k int) ([]T, error) {
	// 1) Validate inputs.
	if higher == nil {
		return nil, ErrNilCompare
	}
	if k < 0 {
		return nil, ErrBadK
	}

	// 2) Seed the heap with each non-empty sequence's head. Heads
	//    compete by their values under the caller's ordering.
	h, err := heap.New(
		func(a, b head[T]) bool { return higher(a.value, b.value) },
		heap.WithCapacity(len(seqs)),
	)
	if err != nil {
		return nil, err
	}
	for i, s := range seqs {
		if len(s) > 0 {
			h.Push(head[T]{value: s[0], seq: i, next: 1})
		}
	}

	// 3) Pop-emit-advance until k emissions or exhaustion. The
	//    preallocation is clamped to the total element count: k may
	//    legitimately dwarf it (the degenerate full-merge case), and the
	//    output can never exceed what the inputs hold.
	capacity := 0
	for _, s := range seqs {
		capacity += len(s)
	}
	if k < capacity {
		capacity = k
	}
	out := make([]T, 0, capacity)
	for len(out) < k {
		e, popErr := h.Pop()
		if popErr != nil {
			break // every sequence exhausted before k emissions
		}
		out = append(out, e.value)

		// Advance the emitting sequence's frontier, keeping the
		// one-head-per-sequence invariant.
		if s := seqs[e.seq]; e.next < len(s) {
			h.Push(head[T]{value: s[e.next], seq: e.seq, next: e.next + 1})
		}
	}

	return out, nil
}

// All fully merges m pre-sorted sequences into one sequence sorted by
// descending priority: the degenerate k ≥ n case of TopK as its own
// entry point.
//
// Returns ErrNilCompare if higher is nil.
//
// Complexity: O(n log m) time, n = total elements.
func All[T any](seqs [][]T, higher heap.Compare[T]) ([]T, error) {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}

	return TopK(seqs, higher, total)
}
