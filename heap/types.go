// Package heap defines core types and configuration options for the
// generic binary heap engine.
//
// A Heap is a complete binary tree stored by index in a dense slice:
// the children of index i live at 2i+1 and 2i+2, its parent at (i-1)/2.
// The ordering of the tree is injected as a Compare strategy, so one
// engine serves min-heaps, max-heaps, and arbitrary custom priorities.
//
// Errors (sentinel):
//
//	– ErrNilCompare  if a nil Compare function is supplied to a constructor.
//	– ErrEmptyHeap   if Peek, Pop, or Replace is called on an empty heap.
//	– ErrBadCapacity if WithCapacity receives a negative value (via panic).
//
// Example usage:
//
//	h := heap.NewMin[int]()
//	h.Push(4)
//	h.Push(1)
//	v, err := h.Pop() // v == 1
package heap

import "errors"

// Sentinel errors returned by the heap engine.
var (
	// ErrNilCompare indicates that a nil Compare function was passed to
	// New or FromSlice. A heap cannot order elements without a comparator.
	ErrNilCompare = errors.New("heap: compare function is nil")

	// ErrEmptyHeap indicates that Peek, Pop, or Replace was called on a
	// heap of size zero. This is the caller-checkable "empty" signal:
	// callers are expected to test for it, not to treat it as fatal.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrBadCapacity indicates that WithCapacity was given a negative
	// value, which is not meaningful for a storage pre-allocation hint.
	ErrBadCapacity = errors.New("heap: capacity must be non-negative")
)

// Compare reports whether a has strictly higher priority than b.
//
// Compare must implement a strict weak ordering (irreflexive, transitive,
// with transitive incomparability). Violating this contract is a
// precondition violation: the heap's behavior becomes unspecified, and no
// runtime check attempts to detect it.
//
// For a min-heap over ordered values, Compare is "a < b"; for a max-heap,
// "a > b". Any total-order extension works for compound elements, e.g.
// comparing the first field of a pair.
type Compare[T any] func(a, b T) bool

// Options configures heap construction.
//
// Capacity – initial backing-slice capacity (pre-allocation hint only;
// the heap grows past it transparently). Must be ≥ 0. Default is 0.
type Options struct {
	Capacity int // initial capacity of the backing slice
}

// Option represents a functional option for configuring a Heap.
type Option func(*Options)

// WithCapacity pre-allocates the backing slice for n elements, avoiding
// incremental growth when the eventual size is known up front.
// Must pass a non-negative value; negative values cause ErrBadCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
// Use this as a starting point for functional-options overrides.
//
// Defaults:
//   - Capacity: 0 (no pre-allocation).
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
