// popularity.go layers a keyed "strictly above the median" query on top
// of the tracker: the shape the median tracker is most often used in.
package median

// Popularity records one play count per key and answers whether a key's
// count sits strictly above the running median of all recorded counts.
//
// Register must be called at most once per key (a documented
// precondition, not runtime-checked); re-registering a key would insert
// its count into the median stream twice. Unknown keys are never popular.
//
// Popularity is not safe for concurrent use.
type Popularity[K comparable] struct {
	counts  map[K]int64
	tracker *Tracker[int64]
}

// NewPopularity returns an empty popularity table.
//
// Complexity: O(1).
func NewPopularity[K comparable]() *Popularity[K] {
	return &Popularity[K]{
		counts:  make(map[K]int64),
		tracker: NewTracker[int64](),
	}
}

// Register records that key was played count times and feeds the count
// into the median stream.
//
// Complexity: O(log n).
func (p *Popularity[K]) Register(key K, count int64) {
	p.counts[key] = count
	p.tracker.Insert(count)
}

// Popular reports whether key's recorded count is strictly higher than
// the median of all recorded counts. A key that was never registered is
// not popular.
//
// Note the boundary: with a single registration the key's own count is
// the median, so it is not strictly above it and Popular returns false.
//
// Complexity: O(1).
func (p *Popularity[K]) Popular(key K) bool {
	count, ok := p.counts[key]
	if !ok {
		return false
	}

	med, err := p.tracker.Median()
	if err != nil {
		return false // unreachable once counts is non-empty; kept for symmetry
	}

	return count > med
}

// Len returns the number of registered keys.
//
// Complexity: O(1).
func (p *Popularity[K]) Len() int { return len(p.counts) }
