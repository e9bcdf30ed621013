// Package tsp - RNG utilities shared by the stochastic solvers.
//
// All randomness of a solve flows through exactly one *rand.Rand:
// Options.RNG when provided, otherwise a stream seeded from Options.Seed.
// Nothing in this package draws from the global math/rand source or the clock.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// rngFor picks the single random source of a solve.
func rngFor(opts Options) *rand.Rand {
	if opts.RNG != nil {
		return opts.RNG
	}
	return rngFromSeed(opts.Seed)
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomTour returns a uniformly random permutation of 0..n-1 drawn from rng.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng *rand.Rand) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)
	return p, nil
}

// distinctPair draws two distinct positions in [0..n-1] uniformly.
// Requires n ≥ 2. Consumes exactly two draws from rng.
func distinctPair(n int, rng *rand.Rand) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
