// Package topk defines shared types and sentinel errors for the bounded
// and updatable top-k trackers.
//
// Both trackers answer the same question — "which k keys carry the
// highest scores seen so far?" — under different stream contracts:
//
//	– Tracker: every key is registered exactly once (independent events).
//	– Counter: repeated registrations accumulate into a running total.
//
// Errors (sentinel):
//
//	– ErrBadK if a constructor receives k <= 0.
package topk

import "errors"

// ErrBadK indicates that NewTracker or NewCounter was called with a
// non-positive k. A leaderboard of zero or negative size is meaningless,
// so the constructors fail fast instead of leaving behavior undefined.
var ErrBadK = errors.New("topk: k must be positive")

// entry pairs a score with the key it belongs to. Heap ordering always
// compares scores only; key order is never consulted, which is what
// leaves tie-breaking unspecified.
type entry[K any] struct {
	score int64 // priority at push time (may go stale in Counter)
	key   K     // the tracked key
}
