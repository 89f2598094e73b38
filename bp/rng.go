// SPDX-License-Identifier: MIT
// Package bp: deterministic randomness for the random serial schedule.
//
// The RNG is owned by one Decoder and re-created from the configured seed at
// the start of every Decode, so identical inputs give identical outputs no
// matter how many decodes ran before. math/rand.Rand is not goroutine-safe;
// it is only touched by the serial sweep, which runs on the caller goroutine.

package bp

import "math/rand"

// defaultRNGSeed replaces seed 0 so the zero value is still reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a fresh *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffleInPlace permutes a with Fisher–Yates driven by rng.
//
// Complexity: O(len(a)).
func shuffleInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// identityOrder returns [0, 1, …, n-1].
func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}
