package shuffle

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPermutation(t *testing.T, n int, got []int) {
	t.Helper()
	require.Len(t, got, n)
	sorted := append([]int(nil), got...)
	sort.Ints(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v, "value %d missing or duplicated", i)
	}
}

func TestPermutationIsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 3, 13, 52, 100} {
		for i := 0; i < 20; i++ {
			assertPermutation(t, n, Permutation(n, nil))
		}
	}
}

func TestPermutationEmpty(t *testing.T) {
	assert.Empty(t, Permutation(0, nil))
	assert.Empty(t, Permutation(-3, nil))
}

func TestSeededIsReproducible(t *testing.T) {
	a := Permutation(52, Seeded(42))
	b := Permutation(52, Seeded(42))
	c := Permutation(52, Seeded(43))

	assertPermutation(t, 52, a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestPermutationCoversAllOrders(t *testing.T) {
	// Every one of the 6 orderings of 3 elements should show up with a fixed seed
	rng := Seeded(7)
	seen := map[[3]int]int{}
	for i := 0; i < 6000; i++ {
		p := Permutation(3, rng)
		seen[[3]int{p[0], p[1], p[2]}]++
	}
	require.Len(t, seen, 6)
	for order, count := range seen {
		assert.InDelta(t, 1000, count, 200, "order %v", order)
	}
}
