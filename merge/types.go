// Package merge defines sentinel errors for the heap-driven k-way merge.
//
// Errors (sentinel):
//
//	– ErrNilCompare   if a nil comparator is supplied.
//	– ErrBadK         if a negative emission count is requested.
//	– ErrNilSuccessor if Generate is given a nil successor function.
package merge

import "errors"

// Sentinel errors returned by the merge entry points.
var (
	// ErrNilCompare indicates that TopK or All received a nil comparator;
	// pre-sorted inputs cannot be merged without their ordering.
	ErrNilCompare = errors.New("merge: compare function is nil")

	// ErrBadK indicates that TopK or Generate was asked for a negative
	// number of elements. Zero is valid (an empty result); negative is not.
	ErrBadK = errors.New("merge: k must be non-negative")

	// ErrNilSuccessor indicates that Generate received a nil successor
	// function; lazy streams cannot grow without one.
	ErrNilSuccessor = errors.New("merge: successor function is nil")
)
