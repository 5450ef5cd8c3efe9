package arith

// RecomputeTrialDivision rebuilds primes[0..pi_y], mu[0..y] and lpf[0..y] by
// direct trial division rather than the linear sieve Primes/Moebius/
// LeastPrimeFactor share (moebiusAndLPF). It exists solely so
// WithDebugValidation can diff a digest of these against the linear sieve's
// output from a second, independently-coded construction; it is too slow
// for anything but that one-off check.
func RecomputeTrialDivision(y int64) (primes, mu, lpf []int32) {
	mu = make([]int32, y+1)
	lpf = make([]int32, y+1)
	primes = []int32{0}

	if y >= 1 {
		mu[1] = 1
		lpf[1] = 1
	}

	for n := int64(2); n <= y; n++ {
		least := leastFactorTrialDivision(n)
		lpf[n] = int32(least)

		m := n
		var factors int64
		squarefree := true
		for m > 1 {
			p := leastFactorTrialDivision(m)
			m /= p
			factors++
			if m%p == 0 {
				squarefree = false
				break
			}
		}
		switch {
		case !squarefree:
			mu[n] = 0
		case factors%2 == 0:
			mu[n] = 1
		default:
			mu[n] = -1
		}

		if least == n {
			primes = append(primes, int32(n))
		}
	}

	return primes, mu, lpf
}

// leastFactorTrialDivision returns the least prime factor of n (n >= 2) by
// trial division up to sqrt(n).
func leastFactorTrialDivision(n int64) int64 {
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return d
		}
	}
	return n
}
