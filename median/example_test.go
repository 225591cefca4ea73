package median_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/median"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewTracker
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Stream six play counts and read the running median after the odd
//	and the even phase. With six values the two middle ones average;
//	int64 division truncates by design.
//
// Complexity: O(log n) per Insert, O(1) per Median.
func ExampleNewTracker() {
	tr := median.NewTracker[int64]()

	for _, v := range []int64{193, 140, 132} {
		tr.Insert(v)
	}
	m, _ := tr.Median()
	fmt.Println("after 3:", m)

	for _, v := range []int64{291, 274, 223} {
		tr.Insert(v)
	}
	m, _ = tr.Median()
	fmt.Println("after 6:", m)
	// Output:
	// after 3: 140
	// after 6: 208
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewPopularity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A song is popular when its play count sits strictly above the
//	median of all registered counts — so the first registered song can
//	never be popular on its own.
func ExampleNewPopularity() {
	p := median.NewPopularity[string]()

	p.Register("Boolean Rhapsody", 193)
	fmt.Println(p.Popular("Boolean Rhapsody"))

	p.Register("Coding In The Deep", 140)
	p.Register("All the Single Brackets", 132)
	fmt.Println(p.Popular("Boolean Rhapsody"))
	// Output:
	// false
	// true
}
