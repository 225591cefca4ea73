// Package median defines the numeric constraint and sentinel errors for
// the two-heap streaming median tracker.
//
// Errors (sentinel):
//
//	– ErrNoSamples if Median is queried before any Insert.
package median

import "errors"

// ErrNoSamples indicates that Median was called on a tracker holding no
// values. There is no element to report, so the query fails with a
// checkable sentinel rather than leaving the result undefined.
var ErrNoSamples = errors.New("median: no samples inserted")

// Number constrains the tracker to element types with native division,
// which the even-count median needs. Integer types divide truncating;
// callers needing exact fractional medians should instantiate the
// tracker over a floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
