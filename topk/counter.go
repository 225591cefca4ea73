// counter.go implements the updatable top-k tracker: cumulative score
// registration backed by an authoritative totals map, with stale heap
// entries discarded lazily at read time.
package topk

import "github.com/katalvlaran/lvlheap/heap"

// Counter tracks the k keys with the highest running totals across a
// stream of (key, amount) registrations, where repeated registrations
// for a key accumulate rather than compete.
//
// A binary heap cannot remove an arbitrary entry in O(log n), so Counter
// never tries: the totals map is the single source of truth, and the
// heap is an over-approximation that may hold stale shadows of any key.
// An entry is fresh iff its stored score equals the map's current total.
// Stale entries are skipped when encountered during TopK and dropped
// permanently then — lazy deletion as lightweight tombstoning, traded
// deliberately against the much larger lift of an index-tracking heap.
//
// Amortized cost: every stale entry is skipped at most once across all
// TopK calls, so registration stays O(log n) amortized.
//
// Counter is not safe for concurrent use.
type Counter[K comparable] struct {
	k      int                  // number of keys TopK reports
	h      *heap.Heap[entry[K]] // max-by-total heap, stale shadows allowed
	totals map[K]int64          // authoritative running totals
}

// NewCounter returns a Counter reporting the k highest-totaled keys.
// Returns ErrBadK if k <= 0.
//
// Complexity: O(1).
func NewCounter[K comparable](k int) (*Counter[K], error) {
	if k <= 0 {
		return nil, ErrBadK
	}

	// Strongest-at-root ordering: larger total means higher priority.
	h, err := heap.New(func(a, b entry[K]) bool { return a.score > b.score })
	if err != nil {
		return nil, err
	}

	return &Counter[K]{k: k, h: h, totals: make(map[K]int64)}, nil
}

// Register adds amount to key's running total and pushes a fresh
// (total, key) entry. Any older entry for key becomes stale in place;
// nothing is removed here.
//
// Complexity: O(log n) amortized, n = registrations so far.
func (c *Counter[K]) Register(key K, amount int64) {
	// 1) Update the authoritative total first: the entry pushed below
	//    must be fresh at push time.
	c.totals[key] += amount

	// 2) Shadow the new total into the heap.
	c.h.Push(entry[K]{score: c.totals[key], key: key})
}

// TopK returns up to k distinct keys with the highest running totals,
// in unspecified order. It never reports a superseded total: entries
// whose stored score no longer matches the totals map are skipped and
// dropped. Each key appears at most once even when several of its heap
// entries match the current total — zero amounts, or negative amounts
// returning a total to an earlier value, leave multiple fresh shadows
// of one key.
//
// The keys that are returned are re-pushed with their current totals, so
// subsequent calls see them again; repeated calls with no intervening
// Register return the same multiset of keys.
//
// Complexity: O(k log n) plus one-time O(log n) per stale entry retired.
func (c *Counter[K]) TopK() []K {
	keys := make([]K, 0, c.k)
	seen := make(map[K]struct{}, c.k)

	// 1) Pop until k fresh keys are collected or the heap empties.
	//    Stale entries are discarded permanently — their key either has
	//    a fresher entry deeper in the heap or is among those re-pushed
	//    below, so no key ever loses its last fresh shadow.
	for len(keys) < c.k {
		e, err := c.h.Pop()
		if err != nil {
			break // heap exhausted
		}
		if c.totals[e.key] != e.score {
			continue // stale shadow, superseded by a later Register
		}
		if _, dup := seen[e.key]; dup {
			continue // fresh duplicate of an already-collected key
		}
		seen[e.key] = struct{}{}
		keys = append(keys, e.key)
	}

	// 2) Re-push every reported key so the heap keeps at least one fresh
	//    entry for each of them.
	for _, key := range keys {
		c.h.Push(entry[K]{score: c.totals[key], key: key})
	}

	return keys
}

// Total returns key's current running total and whether the key has ever
// been registered.
//
// Complexity: O(1).
func (c *Counter[K]) Total(key K) (int64, bool) {
	total, ok := c.totals[key]

	return total, ok
}
