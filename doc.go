// Package lvlheap is your in-memory toolbox for priority ordering — a
// generic binary heap engine and the classic structures built on it.
//
// 🚀 What is lvlheap?
//
//	A small, focused, pure-Go library that brings together:
//		• Core engine: generic Heap[T] with injected ordering, Floyd O(n) build
//		• Bounded leaderboards: keep the k best of a stream in O(k) space
//		• Updatable leaderboards: cumulative totals with lazy stale-entry deletion
//		• Streaming median: two-heap partition, O(1) query
//		• K-way merge: combine pre-sorted sequences through a heap of heads
//		• Interleaving: arrange keyed items so no two neighbors share a key
//
// ✨ Why choose lvlheap?
//
//   - One engine, every ordering – min, max, or any strict-weak-order comparator
//   - Checkable emptiness – ErrEmptyHeap instead of panics on empty pops
//   - Pure Go – no cgo, no hidden deps, generics throughout
//   - Predictable costs – complexity documented on every operation
//
// Everything is organized under five subpackages:
//
//	heap/       — the generic binary heap engine (Push/Pop/Peek, FromSlice, Clone)
//	topk/       — fixed-capacity Tracker and lazily-updated Counter leaderboards
//	median/     — two-heap streaming median and the Popularity wrapper
//	merge/      — heap-of-heads k-way merge and lazy best-first generation
//	interleave/ — adjacency-avoiding arrangement of keyed items
//
// Quick ASCII example:
//
//	        1
//	       / \
//	      2   4
//	     / \
//	    6   8
//
//	a min-heap of {4, 8, 2, 6, 1} stored densely as [1 2 4 6 8].
//
// Dive into each package's doc.go for contracts, complexity tables, and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlheap
package lvlheap
