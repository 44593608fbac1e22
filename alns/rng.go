package alns

import (
	"math"
	"math/rand"
)

// NewRNG returns a deterministic *rand.Rand for seed. All destroy, repair,
// selector, and acceptance draws in one Run must come from a single such
// generator, threaded through by the caller — never re-seeded mid-run.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// biasedIndex returns floor(U^p * n) for U ~ Uniform[0,1), clamped to
// [0, n-1]. With p==1 this is uniform; as p grows it biases toward index 0
// (more deterministic / greedy). Used by worst-customer removal,
// worst-station removal, greedy repair's per-customer option pick, and
// regret repair's customer pick (spec §9 "Biased selection").
func biasedIndex(rng *rand.Rand, p float64, n int) int {
	if n <= 1 {
		return 0
	}
	u := rng.Float64()
	idx := int(math.Pow(u, p) * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// shuffleIntsInPlace performs a Fisher–Yates shuffle of a using rng.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// kFromFraction returns a count uniformly drawn from [1, max(1, floor(xi*n))].
func kFromFraction(rng *rand.Rand, xi float64, n int) int {
	bound := int(xi * float64(n))
	if bound < 1 {
		bound = 1
	}
	return 1 + rng.Intn(bound)
}
