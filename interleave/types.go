// Package interleave defines the input type and sentinel errors for the
// greedy adjacency-avoiding scheduler.
//
// Errors (sentinel):
//
//	– ErrInfeasible if no arrangement can avoid adjacent equal keys.
package interleave

import "errors"

// ErrInfeasible indicates that the items cannot be arranged without two
// equal keys touching: some key owns more than half of the positions
// (strictly more than ceil(n/2) of n items), so any ordering puts two of
// its values side by side.
var ErrInfeasible = errors.New("interleave: no arrangement avoids adjacent equal keys")

// Item pairs a value with the key it must be spread apart from. Values
// sharing a key are kept non-adjacent in the output; the values
// themselves are opaque payload.
type Item[K comparable, V any] struct {
	Key   K // grouping key (e.g. artist)
	Value V // scheduled payload (e.g. song title)
}
