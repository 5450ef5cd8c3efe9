package sieve

import "testing"

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// TestResetMarksOddCandidates verifies testable property 2: after reset(low)
// the sieve has exactly one 1-bit per odd integer in [max(low,3), low+size),
// plus one bit for 2 iff low <= 2.
func TestResetMarksOddCandidates(t *testing.T) {
	const size = 256
	for _, low := range []int64{0, 1, 2, 3, 4, 5, 30, 97, 1000} {
		s := New(size)
		s.Reset(low)

		for i := int64(0); i < size; i++ {
			n := low + i
			want := n > 2 && n%2 != 0
			if n == 2 && low <= 2 {
				want = true
			}
			if n == 0 || n == 1 {
				want = false
			}
			if got := s.Test(i); got != want {
				t.Fatalf("low=%d i=%d (n=%d): Test=%v, want %v", low, i, n, got, want)
			}
		}
	}
}

// TestCountMatchesCrossedOffSieve: segment_size=64, low=30, crossing off the
// odd multiples of 3, 5 and 7 (every odd prime <= sqrt(93); 7 is needed
// because 49, 77 and 91 lie in the segment) should leave a count over
// [0,63] equal to the number of primes in [30, 93].
func TestCountMatchesCrossedOffSieve(t *testing.T) {
	const low = 30
	const size = 64
	s := New(size)
	s.Reset(low)

	for _, p := range []int64{3, 5, 7} {
		start := low - low%p
		if start < low {
			start += p
		}
		if start%2 == 0 {
			start += p
		}
		for k := start; k < low+size; k += 2 * p {
			s.Unset(k - low)
		}
	}

	want := int64(0)
	for n := int64(low); n < low+size; n++ {
		if isPrime(n) {
			want++
		}
	}

	if got := s.Count(0, size-1); got != want {
		t.Fatalf("Count(0,63) = %d, want %d (primes in [%d,%d))", got, want, low, low+size)
	}
}

func TestCountEmptyRangeWhenStartAfterStop(t *testing.T) {
	s := New(64)
	s.Reset(0)
	if got := s.Count(10, 5); got != 0 {
		t.Errorf("Count(10,5) = %d, want 0", got)
	}
}
