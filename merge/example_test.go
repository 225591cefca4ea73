package merge_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/merge"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTopK
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three per-genre song rankings, each already sorted from most to
//	least played, merged into the global top five. The heap never holds
//	more than one head per genre.
//
// Complexity: O((m + k) log m) with m = 3 genres, k = 5.
func ExampleTopK() {
	type song struct {
		title string
		plays int64
	}
	genres := [][]song{
		{{"Coding In The Deep", 123}, {"Someone Like GNU", 99}, {"Hello World", 98}},
		{{"Ring Of Firewalls", 217}},
		{{"Boolean Rhapsody", 184}, {"Merge Together", 119}, {"Hey Queue", 102}},
	}

	top, err := merge.TopK(genres, func(a, b song) bool { return a.plays > b.plays }, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range top {
		fmt.Println(s.title)
	}
	// Output:
	// Ring Of Firewalls
	// Boolean Rhapsody
	// Coding In The Deep
	// Merge Together
	// Hey Queue
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Emit the first seven numbers that are a positive power of 2 or 3,
//	without materializing either power stream: each emitted power is
//	replaced in the heap by its base's next power.
//
// Complexity: O(m + k log m) with m = 2 streams, k = 7.
func ExampleGenerate() {
	type power struct{ value, base int64 }

	out, err := merge.Generate(
		[]power{{2, 2}, {3, 3}},
		func(p power) power { return power{p.value * p.base, p.base} },
		func(a, b power) bool { return a.value < b.value },
		7,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range out {
		fmt.Print(p.value, " ")
	}
	fmt.Println()
	// Output:
	// 2 3 4 8 9 16 27
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAll
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fully merge ascending integer runs by inverting the comparator:
//	"higher priority" is simply "smaller value".
func ExampleAll() {
	runs := [][]int{{1, 5, 9}, {2, 3}, {4}}

	out, err := merge.All(runs, func(a, b int) bool { return a < b })
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [1 2 3 4 5 9]
}
