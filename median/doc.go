// Package median provides an O(log n)-insert, O(1)-query running median
// over an append-only stream of numbers, built on two heaps.
//
// Overview:
//
//   - Tracker splits the stream between a max-heap of the smaller half
//     and a min-heap of the larger half, keeping the halves within one
//     element of each other. The median then reads off the roots: the
//     lower root when the count is odd, the mean of both roots when even.
//   - Popularity wraps Tracker with a per-key count table to answer
//     "is this key strictly above the running median?" — the query shape
//     the structure most often serves.
//
// When to use:
//
//   - Running percentile-50 over streams where re-sorting per query
//     (O(n log n)) or order-statistic trees would be overkill.
//   - Threshold queries against the median (Popularity).
//
// Key features:
//
//   - Insert is three heap moves, always; no degenerate cases.
//   - Median never scans: both candidates are heap roots.
//   - Integer instantiations truncate the even-count mean under native
//     integer division — documented behavior; use a float instantiation
//     for exact fractional medians.
//
// Performance and complexity:
//
//   - Insert: O(log n);  Median, Len: O(1)
//   - Space: O(n) across the two heaps.
//
// Error handling (sentinel errors):
//
//   - ErrNoSamples: Median called before any Insert.
//
// Thread safety:
//
//   - No internal locking; serialize shared instances externally.
//
// See also:
//
//   - heap.Heap: the underlying engine (NewMax/NewMin instantiations).
package median
