// Package shuffle produces uniformly random permutations.
package shuffle

import "math/rand/v2"

// Permutation returns 0..n-1 in a uniformly random order using an in-place
// Fisher–Yates pass from the last index down to 1. A nil rng uses the global
// source.
func Permutation(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}

	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	for i := n - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Seeded returns a deterministic source for reproducible deals
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
