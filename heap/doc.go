// Package heap provides a precise, allocation-conscious generic binary
// heap (priority queue) parameterized over an injected ordering strategy.
//
// Overview:
//
//   - A Heap[T] stores a complete binary tree in one dense slice: the
//     children of index i sit at 2i+1 and 2i+2, the parent at (i-1)/2.
//   - The heap invariant — every node outranks or ties both children —
//     is maintained under Push (sift-up) and Pop (sift-down).
//   - FromSlice builds heap order in O(n) with Floyd's bottom-up pass,
//     not by n repeated pushes (which would cost O(n log n)).
//   - One engine serves every ordering: NewMin and NewMax cover ordered
//     element types, and New accepts any Compare strategy, such as
//     ordering pairs by their first component.
//
// When to use:
//
//   - Wherever the next-most-important item must be available in O(1)
//     and insertions/removals in O(log n): schedulers, simulations,
//     best-first searches, bounded leaderboards.
//   - As the engine beneath the sibling packages: topk (bounded and
//     lazily-updated leaderboards), median (two-heap streaming median),
//     and merge (k-way merge of pre-sorted sequences).
//
// Key features:
//
//   - Compare injection: a single strict-weak-order predicate picks the
//     ordering; no duplicated min/max implementations.
//   - Checkable empty signal: Peek/Pop/Replace return ErrEmptyHeap on an
//     empty heap instead of panicking; emptiness is a normal condition
//     the caller tests for.
//   - PushPop and Replace fuse two operations into a single sift for
//     bounded-size use cases.
//   - Clone gives an O(n) snapshot for idempotent destructive reads.
//
// Performance and complexity:
//
//   - Push, Pop, PushPop, Replace: O(log n)
//   - Peek, Len: O(1)
//   - FromSlice: O(n); Clone: O(n); Drain: O(n log n)
//   - Space: O(n) in one contiguous slice; no per-element boxing.
//
// Error handling (sentinel errors):
//
//   - ErrNilCompare:  New or FromSlice received a nil comparator.
//   - ErrEmptyHeap:   Peek, Pop, or Replace on a heap of size zero.
//   - ErrBadCapacity: WithCapacity received a negative hint (via panic).
//
// Preconditions:
//
//   - Compare must be a strict weak ordering. This is a documented
//     contract, not a runtime-checked property; a comparator that is
//     reflexive or intransitive leaves the heap's behavior unspecified.
//
// Thread safety:
//
//   - A Heap performs no internal locking. Concurrent mutation of one
//     instance requires external synchronization (e.g. a mutex); every
//     operation is a bounded, in-memory computation with no suspension
//     points, so a plain mutex suffices.
//
// See also:
//
//   - topk.Tracker / topk.Counter: bounded and updatable leaderboards.
//   - median.Tracker: O(1) streaming median over two heaps.
//   - merge.TopK / merge.All: heap-of-heads k-way merge.
package heap
