package interleave_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlheap/interleave"
)

// buildItems returns n items spread over u keys with a fixed seed,
// skewed so some keys are far richer than others.
func buildItems(n, u int) []interleave.Item[string, int] {
	r := rand.New(rand.NewSource(9))
	items := make([]interleave.Item[string, int], n)
	for i := range items {
		// Squaring the draw skews mass toward low key indices.
		k := r.Intn(u) * r.Intn(u) / u
		items[i] = interleave.Item[string, int]{Key: fmt.Sprintf("k%d", k), Value: i}
	}

	return items
}

// benchmarkArrange schedules n items over u keys per iteration.
func benchmarkArrange(b *testing.B, n, u int) {
	items := buildItems(n, u)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := interleave.Arrange(items); err != nil {
			b.Fatalf("Arrange failed: %v", err)
		}
	}
}

// BenchmarkArrange_10k_100keys measures a long stream over 100 keys.
func BenchmarkArrange_10k_100keys(b *testing.B) { benchmarkArrange(b, 10_000, 100) }

// BenchmarkArrange_10k_10keys measures heavy per-key contention.
func BenchmarkArrange_10k_10keys(b *testing.B) { benchmarkArrange(b, 10_000, 10) }
