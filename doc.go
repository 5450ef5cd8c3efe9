// Package primecount computes pi(x), the prime-counting function, via the
// Lagarias-Miller-Odlyzko combinatorial algorithm.
//
// # Basic Usage
//
// Counting primes up to x:
//
//	n := primecount.PrimeCount(1e12, runtime.NumCPU())
//	fmt.Printf("pi(10^12) = %d\n", n)
//
// Answering many pi(x) queries for x below some bound cheaply:
//
//	t, err := primecount.NewPiTable(1e8, runtime.NumCPU())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := t.Pi(29996)
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: driver.go (PrimeCount), pitable.go (NewPiTable, Pi), riemannr.go (RiemannR, RiemannRInverse)
//   - Configuration: options.go (Option, With* functions)
//   - Segmented sieve: internal/sieve (BitSieve, Counters)
//   - Compressed pi(x) cache: internal/wheel (PiTable, the residue-wheel lookup)
//   - Special-leaves engine: internal/s2 (the parallel S2 computation)
//   - Scalar collaborators: internal/phi (PhiTiny, S1), internal/p2 (P2)
//   - Precomputed arrays: internal/arith (mu, least-prime-factor, small pi, raw primes)
//   - Debug-mode checks: internal/checksum (xxh3/murmur3 digests)
//   - Result cache (WithMemoization): internal/memo (xxhash-keyed LRU of PrimeCount results)
package primecount
