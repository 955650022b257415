// Package mces - RNG utilities for the stochastic solver.
//
// Goals:
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency: math/rand.Rand is not goroutine-safe; each solve call owns its
// own stream. DeriveSeed exists for callers (e.g. the benchmark driver) that
// need independent substreams from one master seed.
package mces

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, so default runs are reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 => defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer (strong avalanche, so nearby
// stream ids yield uncorrelated substreams).
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleStringsInPlace performs an in-place Fisher-Yates shuffle using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleStringsInPlace(a []string, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
