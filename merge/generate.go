// generate.go implements best-first generation: the k-way merge where
// each stream is produced lazily by a successor function instead of
// being materialized up front.
package merge

import "github.com/katalvlaran/lvlheap/heap"

// Generate emits the first k elements, best first, of the union of the
// streams grown from seeds: each seed s begins the stream s, succ(s),
// succ(succ(s)), and so on. Only stream heads live in the heap, so at
// most len(seeds) elements are materialized beyond the k emitted ones.
//
// Each stream must be non-increasing in priority: succ(x) must never
// outrank x under higher. This is the lazy counterpart of TopK's
// pre-sorted-input precondition, documented and unchecked for the same
// reason. Streams are unbounded by construction; with a non-empty seed
// set the result always holds exactly k elements.
//
// The classic instance is generating the k smallest prime powers: seed
// with each prime p as the pair (p, p) and let succ multiply the power
// by its base. Watch for overflow in the successor — it belongs to the
// caller, as does any modular reduction of the emitted values.
//
// Returns ErrNilCompare if higher is nil, ErrNilSuccessor if succ is
// nil, and ErrBadK if k < 0; k == 0 yields an empty result.
//
// Complexity: O(m + k log m) time, O(m) auxiliary space, m = len(seeds).
func Generate[T any](seeds []T, succ func(T) T, higher heap.Compare[T], k int) ([]T, error) {
	// 1) Validate inputs.
	if higher == nil {
		return nil, ErrNilCompare
	}
	if succ == nil {
		return nil, ErrNilSuccessor
	}
	if k < 0 {
		return nil, ErrBadK
	}

	// 2) Seed the heap with every stream's first element.
	h, err := heap.New(higher, heap.WithCapacity(len(seeds)))
	if err != nil {
		return nil, err
	}
	for _, s := range seeds {
		h.Push(s)
	}

	// 3) Pop-emit-regenerate: the emitted element's successor takes its
	//    stream's place in the heap. No preallocation by k — the caller
	//    may legitimately pass an enormous k against an empty seed set.
	var out []T
	for len(out) < k {
		e, popErr := h.Pop()
		if popErr != nil {
			break // no seeds were supplied
		}
		out = append(out, e)
		h.Push(succ(e))
	}

	return out, nil
}
