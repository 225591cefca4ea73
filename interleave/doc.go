// Package interleave provides a greedy heap-driven scheduler that
// reorders a stream of keyed values so no two adjacent outputs share a
// key — the "no same artist back-to-back" playlist problem in its
// general form.
//
// Overview:
//
//   - Values are grouped by key; a max-heap orders the groups by how
//     many values each still has pending.
//   - Each slot goes to the key with the most values remaining, unless
//     that key just played — then the runner-up fills the slot and the
//     blocked key waits one turn.
//   - Emitting the richest key first is what makes the greedy choice
//     safe: the key with the most values needs the most gaps, so it
//     must never yield a slot it could legally take.
//
// When to use:
//
//   - Playlist and task-spacing problems: spread items of one category
//     so the same category never runs twice in a row (artists in a
//     queue, tenants in a work loop, ad categories in a feed).
//
// Key features:
//
//   - Feasibility is detected, not assumed: when one key owns more than
//     half of all positions, adjacency is unavoidable and Arrange
//     reports ErrInfeasible instead of emitting a broken prefix.
//   - Values keep their arrival order within a key; tie-breaking across
//     equally rich keys is arbitrary by contract.
//
// Performance and complexity:
//
//   - Arrange: O(n log u) time, n = items, u = distinct keys.
//   - Space: O(n) for the grouped values plus O(u) heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrInfeasible: no arrangement avoids adjacent equal keys.
//
// Thread safety:
//
//   - Arrange is a pure function over its input slice; concurrent calls
//     on distinct inputs are safe without locking.
//
// See also:
//
//   - heap.Heap: the engine ranking runs by remaining count.
//   - topk: the other heap clients over keyed streams.
package interleave
