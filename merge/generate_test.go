// generate_test.go exercises best-first generation: validation, the
// prime-power reference cases, and the lazy-stream bound.
package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheap/merge"
)

// power tracks one element of a prime's power stream: the current value
// and the base that grows it.
type power struct {
	value int64
	base  int64
}

// nextPower advances a stream to its base's next power.
func nextPower(p power) power { return power{value: p.value * p.base, base: p.base} }

// byValueAsc gives smaller powers higher priority.
func byValueAsc(a, b power) bool { return a.value < b.value }

// primePowers runs Generate over the given primes and sums the first k
// emitted powers.
func primePowers(t *testing.T, primes []int64, k int) ([]power, int64) {
	t.Helper()

	seeds := make([]power, len(primes))
	for i, p := range primes {
		seeds[i] = power{value: p, base: p}
	}

	got, err := merge.Generate(seeds, nextPower, byValueAsc, k)
	require.NoError(t, err)

	var sum int64
	for _, p := range got {
		sum += p.value
	}

	return got, sum
}

// TestGenerate_Validation verifies the sentinel errors and the k == 0
// and empty-seed cases.
func TestGenerate_Validation(t *testing.T) {
	seeds := []power{{2, 2}}

	_, err := merge.Generate(seeds, nextPower, nil, 3)
	assert.ErrorIs(t, err, merge.ErrNilCompare)

	_, err = merge.Generate(seeds, nil, byValueAsc, 3)
	assert.ErrorIs(t, err, merge.ErrNilSuccessor)

	_, err = merge.Generate(seeds, nextPower, byValueAsc, -1)
	assert.ErrorIs(t, err, merge.ErrBadK)

	got, err := merge.Generate(seeds, nextPower, byValueAsc, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	// No seeds: nothing to generate, however large k is.
	got, err = merge.Generate(nil, nextPower, byValueAsc, 1_000_000)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestGenerate_PrimePowers checks the reference sums: the first k
// numbers that are a positive power of one of the given primes.
func TestGenerate_PrimePowers(t *testing.T) {
	// primes = [2], k = 1: just 2.
	_, sum := primePowers(t, []int64{2}, 1)
	assert.Equal(t, int64(2), sum)

	// primes = [5], k = 3: 5 + 25 + 125 = 155.
	_, sum = primePowers(t, []int64{5}, 3)
	assert.Equal(t, int64(155), sum)

	// primes = [2, 3], k = 7: 2+3+4+8+9+16+27 = 69.
	got, sum := primePowers(t, []int64{2, 3}, 7)
	assert.Equal(t, int64(69), sum)

	values := make([]int64, len(got))
	for i, p := range got {
		values[i] = p.value
	}
	assert.Equal(t, []int64{2, 3, 4, 8, 9, 16, 27}, values)
}

// TestGenerate_EmitsExactlyK verifies that with a non-empty seed set the
// unbounded streams always fill k exactly, in best-first order.
func TestGenerate_EmitsExactlyK(t *testing.T) {
	got, sum := primePowers(t, []int64{2, 3, 5}, 12)
	assert.Len(t, got, 12)

	// First twelve prime powers of {2, 3, 5}:
	// 2 3 4 5 8 9 16 25 27 32 64 81.
	assert.Equal(t, int64(2+3+4+5+8+9+16+25+27+32+64+81), sum)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].value, got[i].value)
	}
}
