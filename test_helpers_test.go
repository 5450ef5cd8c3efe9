package primecount

import (
	"math/rand/v2"
	"testing"
)

// newTestRNG returns a deterministic PRNG seeded from the test's name, so a
// single failing seed can be reproduced by re-running just that test.
func newTestRNG(t testing.TB) *rand.Rand {
	var seed uint64
	for _, c := range t.Name() {
		seed = seed*31 + uint64(c)
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// naivePrimesUpTo returns every prime <= n via trial division, used as a
// slow, obviously-correct oracle for cross-checking PrimeCount in tests.
func naivePrimesUpTo(n int64) []int64 {
	var out []int64
	for i := int64(2); i <= n; i++ {
		isPrime := true
		for d := int64(2); d*d <= i; d++ {
			if i%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			out = append(out, i)
		}
	}
	return out
}
