// Package merge provides a heap-driven k-way merge: given m sequences
// each pre-sorted by descending priority, it emits the globally top k
// elements (or the full merged sequence) without materializing all
// inputs at once.
//
// Overview:
//
//   - A heap holds one "head" per unexhausted sequence — the sequence's
//     next unemitted element. Popping the best head emits it; the
//     emitting sequence then advances its next element into the heap.
//   - The heap size is therefore bounded by m, independent of the total
//     element count, which is what separates this from concatenating and
//     re-sorting.
//
// When to use:
//
//   - Combining per-shard or per-category rankings (each already sorted)
//     into one global ranking, fully or top-k truncated.
//   - Any merge step over externally sorted runs.
//
// Key features:
//
//   - TopK stops after k emissions; All drains every sequence.
//   - Generate merges streams that are produced lazily by a successor
//     function instead of materialized up front — only the stream heads
//     ever exist in memory (e.g. enumerating prime powers in order).
//   - Compare injection: "descending priority" means whatever the
//     caller's comparator says, so ascending merges are just the
//     inverted comparator.
//   - Inputs are never mutated; the output is a fresh slice.
//
// Preconditions:
//
//   - Every input sequence must already be sorted by descending priority
//     under the supplied comparator. This is documented, not checked:
//     an O(n) verification pass would defeat the O((m + k) log m) bound.
//   - For Generate, succ(x) must never outrank x — the lazy counterpart
//     of the same precondition.
//
// Performance and complexity:
//
//   - TopK:     O((m + k) log m) time, O(m) auxiliary space.
//   - All:      O(n log m) time, n = total elements.
//   - Generate: O(m + k log m) time, O(m) auxiliary space.
//
// Error handling (sentinel errors):
//
//   - ErrNilCompare: nil comparator.
//   - ErrBadK: negative k (zero is valid and yields an empty result).
//   - ErrNilSuccessor: Generate received a nil successor function.
//
// Thread safety:
//
//   - Pure functions over caller-owned slices; safe to call concurrently
//     on distinct inputs. Callers mutating an input slice during a merge
//     must synchronize externally.
//
// See also:
//
//   - heap.Heap: the underlying engine holding the competing heads.
package merge
