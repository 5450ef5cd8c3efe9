// Package phi implements PhiTiny, an O(1) lookup for phi(x, a) restricted to
// a small number of the smallest primes, and the scalar S1 term of the LMO
// decomposition that is built directly on top of it.
package phi

// MaxA is the largest a for which Phi answers phi(x, a) in O(1): a table
// is precomputed for the first MaxA primes {2, 3, ..., primes[MaxA]}.
// Kept small (the first 3 primes, period 30) so the tables stay tiny.
// Phi does not compute phi(x, a) for a > MaxA: it clamps a to MaxA.
const MaxA = 3

// primorial[a] is the product of the first a primes: 1, 2, 6, 30, ...
var primorial = [MaxA + 1]int64{1, 2, 6, 30}

// totient[a] is phi(primorial[a], a), the count of integers in
// [1, primorial[a]] coprime to all of the first a primes.
var totient [MaxA + 1]int64

// table[a] holds phi(x, a) for x in [0, primorial[a]); phi(x, a) for larger
// x is recovered via phi(x,a) = (x/primorial[a])*totient[a] + table[a][x%primorial[a]].
var table [MaxA + 1][]int32

var firstPrimes = [MaxA]int64{2, 3, 5}

func init() {
	for a := 0; a <= MaxA; a++ {
		p := primorial[a]
		t := make([]int32, p)
		var count int32
		for x := int64(1); x < p; x++ {
			if isCoprimeToFirst(x, a) {
				count++
			}
			t[x] = count
		}
		table[a] = t
		totient[a] = int64(count)
		if isCoprimeToFirst(p, a) {
			totient[a]++
		}
	}
}

func isCoprimeToFirst(x int64, a int) bool {
	for i := 0; i < a; i++ {
		if x%firstPrimes[i] == 0 {
			return false
		}
	}
	return true
}

// Phi returns phi(x, a) = |{1 <= n <= x : n not divisible by any of the
// first a primes}|, in O(1) for a <= MaxA. For a > MaxA it returns
// phi(x, MaxA), not phi(x, a); S1 and the LMO driver only call it with
// a <= MaxA.
func Phi(x int64, a int) int64 {
	if x <= 0 {
		return 0
	}
	if a > MaxA {
		a = MaxA
	}
	p := primorial[a]
	return (x/p)*totient[a] + int64(table[a][x%p])
}

// S1 computes the scalar "ordinary leaves" term of the LMO decomposition:
// the sum over squarefree n in [1, y] with n == 1 or least prime factor
// greater than primes[c] (the leaves S2's segmented sieve does not reach,
// since phi(x/n, c) is answered directly by Phi), weighted by mu(n).
func S1(x, y int64, c int, primes []int32, lpf, mu []int32) int64 {
	if c > MaxA {
		c = MaxA
	}
	var cPrime int64
	if c >= 1 && c < len(primes) {
		cPrime = int64(primes[c])
	}

	var sum int64
	for n := int64(1); n <= y; n++ {
		if mu[n] == 0 {
			continue
		}
		if n != 1 && int64(lpf[n]) <= cPrime {
			continue
		}
		sum += int64(mu[n]) * Phi(x/n, c)
	}
	return sum
}
