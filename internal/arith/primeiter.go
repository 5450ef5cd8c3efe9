// Package arith precomputes the scalar arrays the LMO driver and its S1/S2
// collaborators consume: Mobius mu, least-prime-factor, the prime list up to
// y, and the small pi lookup. It also exposes the raw prime-generating
// iterator spec.md names as an external collaborator.
package arith

import "math"

// PrimeIterator produces successive primes in [low, high) in ascending
// order. It is a segmented sieve of Eratosthenes: a base sieve of primes up
// to sqrt(high) is built once, then used to sieve successive windows of
// [low, high), buffering one window of primes at a time so memory stays
// bounded regardless of how wide [low, high) is.
type PrimeIterator struct {
	high       int64
	basePrimes []int64
	windowLow  int64
	windowSize int64
	buf        []int64
	bufIdx     int
	exhausted  bool
}

const defaultIteratorWindow = 1 << 16

// NewPrimeIterator creates an iterator over primes in [low, high).
func NewPrimeIterator(low, high int64) *PrimeIterator {
	if low < 0 {
		low = 0
	}
	it := &PrimeIterator{
		high:       high,
		windowLow:  low,
		windowSize: defaultIteratorWindow,
	}
	if high > low {
		sqrtHigh := int64(math.Sqrt(float64(high))) + 1
		it.basePrimes = sieveSmallPrimes(sqrtHigh)
	}
	return it
}

// Next returns the next prime in the range, and false once exhausted.
func (it *PrimeIterator) Next() (int64, bool) {
	for {
		if it.bufIdx < len(it.buf) {
			p := it.buf[it.bufIdx]
			it.bufIdx++
			return p, true
		}
		if it.exhausted || it.windowLow >= it.high {
			return 0, false
		}
		it.fillWindow()
	}
}

func (it *PrimeIterator) fillWindow() {
	lo := it.windowLow
	hi := lo + it.windowSize
	if hi > it.high {
		hi = it.high
	}
	if lo >= hi {
		it.exhausted = true
		it.buf = nil
		it.bufIdx = 0
		return
	}

	size := hi - lo
	composite := make([]bool, size)
	for _, p := range it.basePrimes {
		if p*p >= hi {
			break
		}
		start := lo - lo%p
		if start < lo {
			start += p
		}
		if start < p*p {
			start = p * p
		}
		for k := start; k < hi; k += p {
			if k >= lo {
				composite[k-lo] = true
			}
		}
	}

	it.buf = it.buf[:0]
	for i := int64(0); i < size; i++ {
		n := lo + i
		if n < 2 || composite[i] {
			continue
		}
		it.buf = append(it.buf, n)
	}
	it.bufIdx = 0
	it.windowLow = hi
}

// sieveSmallPrimes returns all primes < limit using a plain sieve of
// Eratosthenes. Used only to seed the segmented iterator's base primes, so
// limit is always small (sqrt of the iterator's high bound).
func sieveSmallPrimes(limit int64) []int64 {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit)
	var primes []int64
	for i := int64(2); i < limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	return primes
}
