// Package heap implements the generic binary heap engine: sift-up,
// sift-down, Floyd's bottom-up construction, and the public Push/Pop/Peek
// surface. See types.go for the Compare contract and sentinel errors.
package heap

import "cmp"

// Heap is a binary priority queue over elements of type T, ordered by an
// injected Compare strategy. The element with the highest priority (as
// defined by the comparator) is always at the root.
//
// The zero value is not usable; build a Heap with New, NewMin, NewMax, or
// FromSlice. A Heap exclusively owns its backing storage: values are
// copied in on Push and copied out on Pop/Peek, never aliased.
//
// Heap is not safe for concurrent use; callers that share an instance
// across goroutines must serialize access externally.
type Heap[T any] struct {
	higher Compare[T] // strict-weak-order "has higher priority" predicate
	items  []T        // dense complete-tree storage, root at index 0
}

// New returns an empty heap ordered by the given comparator.
//
// Returns ErrNilCompare if higher is nil.
//
// Complexity: O(1) (O(Capacity) allocation if WithCapacity is supplied).
func New[T any](higher Compare[T], opts ...Option) (*Heap[T], error) {
	// 1) Validate the comparator before touching options.
	if higher == nil {
		return nil, ErrNilCompare
	}

	// 2) Resolve functional options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Allocate backing storage per the capacity hint.
	return &Heap[T]{
		higher: higher,
		items:  make([]T, 0, cfg.Capacity),
	}, nil
}

// NewMin returns an empty min-heap over an ordered type: the smallest
// element has the highest priority and surfaces at the root.
//
// Complexity: O(1).
func NewMin[T cmp.Ordered](opts ...Option) *Heap[T] {
	h, _ := New(func(a, b T) bool { return a < b }, opts...)

	return h
}

// NewMax returns an empty max-heap over an ordered type: the largest
// element has the highest priority and surfaces at the root.
//
// Complexity: O(1).
func NewMax[T cmp.Ordered](opts ...Option) *Heap[T] {
	h, _ := New(func(a, b T) bool { return a > b }, opts...)

	return h
}

// FromSlice builds a heap holding a copy of items, repaired into heap
// order with Floyd's bottom-up construction: sift-down every non-leaf
// node from index n/2-1 back to the root.
//
// The total work is O(n), not O(n log n): each node's sift-down cost is
// bounded by its distance to the nearest leaf, and the sum of those
// distances over a complete tree is linear.
//
// An empty or nil items slice yields a valid empty heap.
// Returns ErrNilCompare if higher is nil.
//
// Complexity: O(n) time, O(n) space for the copy.
func FromSlice[T any](items []T, higher Compare[T], opts ...Option) (*Heap[T], error) {
	// 1) Validate the comparator.
	if higher == nil {
		return nil, ErrNilCompare
	}

	// 2) Resolve options; the capacity hint never shrinks below len(items).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	capacity := cfg.Capacity
	if capacity < len(items) {
		capacity = len(items)
	}

	// 3) Copy the input so the heap owns its storage outright.
	h := &Heap[T]{
		higher: higher,
		items:  make([]T, len(items), capacity),
	}
	copy(h.items, items)

	// 4) Floyd build: repair bottom-up from the last non-leaf node.
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}

	return h, nil
}

// Len returns the number of elements currently in the heap.
//
// Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.items) }

// Peek returns the highest-priority element without removing it.
// Returns ErrEmptyHeap if the heap holds no elements.
//
// Complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// Push inserts x into the heap.
//
// x is appended at the first free leaf position and sifted upward:
// while x has strictly higher priority than its parent, they swap. The
// sift stops at the root or at the first parent that is not outranked,
// so equal-priority elements never swap (ties keep insertion layering).
//
// Complexity: O(log n).
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the highest-priority element.
// Returns ErrEmptyHeap if the heap holds no elements.
//
// The last element moves into the vacated root and sifts downward: at
// each level it swaps with the higher-priority of its children while
// that child outranks it.
//
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	n := len(h.items)
	if n == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	// 1) Save the root and move the last leaf into its place.
	root := h.items[0]
	h.items[0] = h.items[n-1]

	// 2) Clear the vacated slot so the backing array drops its reference,
	//    then shrink the logical size.
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]

	// 3) Restore the heap property from the root down.
	h.down(0, n-1)

	return root, nil
}

// PushPop pushes x and then pops the highest-priority element, in a
// single sift. Equivalent to Push(x) followed by Pop(), but performs at
// most one sift-down and never grows the backing slice when the popped
// element is x itself.
//
// On an empty heap, x passes straight through.
//
// Complexity: O(log n).
func (h *Heap[T]) PushPop(x T) T {
	// If the current root outranks x, x would not survive a push+pop:
	// swap x with the root and repair downward. Otherwise x itself is
	// the highest-priority element and is returned untouched.
	if len(h.items) > 0 && h.higher(h.items[0], x) {
		x, h.items[0] = h.items[0], x
		h.down(0, len(h.items))
	}

	return x
}

// Replace pops the highest-priority element and pushes x, in a single
// sift. Equivalent to Pop() followed by Push(x), but with one sift-down
// instead of a sift-down plus a sift-up.
// Returns ErrEmptyHeap if the heap holds no elements.
//
// Complexity: O(log n).
func (h *Heap[T]) Replace(x T) (T, error) {
	if len(h.items) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	out := h.items[0]
	h.items[0] = x
	h.down(0, len(h.items))

	return out, nil
}

// Clone returns a new heap holding a copy of the receiver's elements and
// sharing its comparator. Mutating the clone never affects the original,
// which makes destructive reads (Drain) of a snapshot cheap.
//
// Complexity: O(n).
func (h *Heap[T]) Clone() *Heap[T] {
	items := make([]T, len(h.items))
	copy(items, h.items)

	return &Heap[T]{higher: h.higher, items: items}
}

// Drain removes every element, returning them in priority order
// (highest first). The heap is empty afterwards; Drain on an empty heap
// returns an empty slice.
//
// Draining a FromSlice-built heap is a heap sort of the original input.
//
// Complexity: O(n log n).
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, len(h.items))
	for len(h.items) > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}

	return out
}

// up sifts the element at index i toward the root while it strictly
// outranks its parent at (i-1)/2.
func (h *Heap[T]) up(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if !h.higher(h.items[i], h.items[parent]) {
			break // parent has equal-or-higher priority; order restored
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// down sifts the element at index i away from the root within the first
// n elements: at each step it selects the higher-priority child and
// swaps while that child outranks the current node.
func (h *Heap[T]) down(i, n int) {
	var child int
	for {
		child = 2*i + 1
		if child >= n {
			break // i is a leaf
		}
		// Prefer the right child when it outranks the left.
		if r := child + 1; r < n && h.higher(h.items[r], h.items[child]) {
			child = r
		}
		if !h.higher(h.items[child], h.items[i]) {
			break // node outranks both children
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}
