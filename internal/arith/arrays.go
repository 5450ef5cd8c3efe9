package arith

// Primes returns primes[0..pi_y] where primes[0] = 0 (a sentinel so that
// indexing primes[b] for b>=1 gives the b-th prime) and primes[1..pi_y] are
// the primes <= y in ascending order. Built from PrimeIterator, the same
// collaborator PiTable's parallel construction uses.
func Primes(y int64) []int32 {
	primes := []int32{0}
	it := NewPrimeIterator(2, y+1)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		primes = append(primes, int32(p))
	}
	return primes
}

// Moebius returns mu[0..y] with mu[n] in {-1, 0, 1}: mu[0] is unused (set to
// 0), mu[1] = 1, mu[n] = (-1)^k if n is a product of k distinct primes,
// mu[n] = 0 if n has a squared prime factor. Computed with a linear sieve
// that derives mu and lpf together in O(y).
func Moebius(y int64) []int32 {
	mu, _ := moebiusAndLPF(y)
	return mu
}

// LeastPrimeFactor returns lpf[0..y]: lpf[n] is the least prime dividing n,
// for n >= 2. lpf[0] and lpf[1] are set so that `prime < lpf[m]` is always
// false for m in {0, 1} (matching spec §3's "lpf[1] defined as 1 or
// +inf-equivalent").
func LeastPrimeFactor(y int64) []int32 {
	_, lpf := moebiusAndLPF(y)
	return lpf
}

// moebiusAndLPF computes mu[0..y] and lpf[0..y] together with a single
// linear (Euler) sieve pass: each composite is marked exactly once, by its
// least prime factor.
func moebiusAndLPF(y int64) ([]int32, []int32) {
	n := y + 1
	mu := make([]int32, n)
	lpf := make([]int32, n)
	var primes []int64

	if n > 1 {
		mu[1] = 1
		lpf[1] = 1
	}

	for i := int64(2); i < n; i++ {
		if lpf[i] == 0 {
			lpf[i] = int32(i)
			mu[i] = -1
			primes = append(primes, i)
		}
		for _, p := range primes {
			if p > int64(lpf[i]) || i*p >= n {
				break
			}
			lpf[i*p] = int32(p)
			if p == int64(lpf[i]) {
				mu[i*p] = 0
			} else {
				mu[i*p] = -mu[i]
			}
		}
	}

	return mu, lpf
}

// PiSmall returns pi[0..y], the number of primes <= n for each n in [0, y],
// as a plain array for O(1) direct indexing in S2's hot loop (unlike the
// compressed PiTable lookup used for the library's public, potentially much
// larger, π(x) queries).
func PiSmall(y int64) []int32 {
	pi := make([]int32, y+1)
	if y < 0 {
		return pi
	}
	it := NewPrimeIterator(2, y+1)
	var count int32
	next, ok := it.Next()
	for n := int64(0); n <= y; n++ {
		for ok && next == n {
			count++
			next, ok = it.Next()
		}
		pi[n] = count
	}
	return pi
}
