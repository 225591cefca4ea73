// Package topk provides two heap-backed top-k trackers over streams of
// scored keys: a fixed-capacity tracker for one-shot registrations and
// an updatable counter for cumulative ones.
//
// Overview:
//
//   - Tracker retains the k highest-scored keys of a stream in O(k)
//     space. The internal heap is ordered weakest-at-root, so admitting
//     a better candidate evicts the weakest in one O(log k) operation.
//     Each key is registered exactly once.
//   - Counter answers the same query when registrations for an existing
//     key add to its running total. True in-heap updates would require
//     arbitrary-position removal, which a binary heap cannot do in
//     O(log n); Counter instead keeps an authoritative map of totals and
//     treats heap entries as advisory shadows, skipping stale ones
//     lazily at read time.
//
// When to use:
//
//   - Tracker: leaderboards over independent events — "k most-played of
//     these songs", "k largest files in this scan".
//   - Counter: leaderboards over accumulating events — play counts,
//     byte counters, per-key tallies that grow across the stream.
//
// Key features:
//
//   - Idempotent reads: TopK drains a snapshot (Tracker) or re-pushes
//     what it returns (Counter); calling it twice without intervening
//     registrations yields the same multiset of keys.
//   - Unspecified output order and arbitrary tie-breaking, matching the
//     relaxed contract; only score ordering is guaranteed.
//   - Counter.Total exposes the authoritative running total per key.
//   - Counter reports distinct keys: even when zero or negative amounts
//     leave several heap entries matching a key's current total, one
//     read returns that key at most once.
//
// Performance and complexity:
//
//   - Tracker.Register: O(log k);  Tracker.TopK: O(k log k).
//   - Counter.Register: O(log n) amortized; Counter.TopK: O(k log n)
//     plus a one-time O(log n) for each stale entry it retires — every
//     stale entry is examined at most once across all calls.
//   - Space: O(k) for Tracker; O(n) heap + O(u) map for Counter, where
//     u is the number of distinct keys.
//
// Error handling (sentinel errors):
//
//   - ErrBadK: NewTracker or NewCounter received k <= 0.
//
// Thread safety:
//
//   - Neither tracker locks internally; serialize shared instances
//     externally.
//
// See also:
//
//   - heap.Heap: the underlying engine (PushPop powers the bounded
//     insert; Clone powers the idempotent read).
//   - median.Tracker: streaming median over the same engine.
package topk
