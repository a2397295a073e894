// Package sampling - RNG utilities shared by every strategy.
//
// Goals:
//   - Determinism: same seed ⇒ identical design tables across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each strategy call owns the
//     *rand.Rand resolved from its options; do not share one across goroutines.
package sampling

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or no RNG option at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// permRange returns a Fisher–Yates permutation of 0..n-1 drawn from rng.
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
