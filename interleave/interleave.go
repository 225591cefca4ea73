// Package interleave implements the greedy max-heap scheduler that
// reorders a keyed stream so no two adjacent outputs share a key.
package interleave

import "github.com/katalvlaran/lvlheap/heap"

// run tracks one key's pending values: the grouped payloads and the
// index of the next value to emit. Remaining count drives heap priority.
type run[K comparable, V any] struct {
	key    K
	values []V
	idx    int // next value to emit; len(values)-idx values remain
}

// Arrange reorders items so that no two adjacent values in the output
// share a key, returning the values in their new order.
//
// The strategy is greedy: always emit from the key with the most values
// remaining, because that key needs the most separation opportunities.
// When the richest key is the one just emitted, the runner-up takes the
// slot and the blocked key returns to the heap. If no runner-up exists
// the blocked key's values can no longer be separated and the
// arrangement is infeasible.
//
// Within one key, values keep their arrival order. Across keys with
// equal remaining counts the choice is arbitrary, matching the relaxed
// contract. An empty input yields an empty output.
//
// Returns ErrInfeasible when some key holds more than half of all
// positions, which makes adjacency unavoidable.
//
// Complexity: O(n log u) time, n = items, u = distinct keys; O(n) space.
func Arrange[K comparable, V any](items []Item[K, V]) ([]V, error) {
	// 1) Group values by key, preserving arrival order within each key
	//    and first-arrival order across keys for deterministic seeding.
	groups := make(map[K][]V, len(items))
	order := make([]K, 0, len(items))
	for _, it := range items {
		if _, ok := groups[it.Key]; !ok {
			order = append(order, it.Key)
		}
		groups[it.Key] = append(groups[it.Key], it.Value)
	}

	// 2) Build the max-heap of runs, richest key at the root.
	h, err := heap.New(
		func(a, b run[K, V]) bool { return len(a.values)-a.idx > len(b.values)-b.idx },
		heap.WithCapacity(len(order)),
	)
	if err != nil {
		return nil, err
	}
	for _, key := range order {
		h.Push(run[K, V]{key: key, values: groups[key]})
	}

	// 3) Greedy emission with the last-key guard.
	out := make([]V, 0, len(items))
	var last K
	haveLast := false
	for h.Len() > 0 {
		r, _ := h.Pop()

		// Blocked: the richest run repeats the previous key, so the
		// runner-up must fill this slot.
		if haveLast && r.key == last {
			second, popErr := h.Pop()
			if popErr != nil {
				return nil, ErrInfeasible // only the blocked key remains
			}
			out = append(out, second.values[second.idx])
			second.idx++
			last = second.key
			if second.idx < len(second.values) {
				h.Push(second)
			}
			h.Push(r) // the blocked run stays pending

			continue
		}

		out = append(out, r.values[r.idx])
		r.idx++
		last, haveLast = r.key, true
		if r.idx < len(r.values) {
			h.Push(r)
		}
	}

	return out, nil
}
