package s2

import (
	"context"
	"testing"

	"github.com/klmo/primecount/internal/arith"
	"github.com/klmo/primecount/internal/phi"
)

// bruteForcePhi computes phi(x, a) = |{1<=n<=x : n coprime to primes[1..a]}|
// by direct trial division, independent of PhiTiny's own table-based Phi.
func bruteForcePhi(x int64, a int, primes []int32) int64 {
	if x <= 0 {
		return 0
	}
	var count int64
	for n := int64(1); n <= x; n++ {
		ok := true
		for i := 1; i <= a; i++ {
			if n%int64(primes[i]) == 0 {
				ok = false
				break
			}
		}
		if ok {
			count++
		}
	}
	return count
}

// setup builds the precomputed arrays a driver would hand to S1/S2 for a
// given x, choosing y the way the LMO driver does (scaled down here so the
// test runs quickly while still exercising multiple segments/rounds).
func setup(t *testing.T, x, y int64) (primes, lpf, mu, piSmall []int32, piY int64, c int) {
	t.Helper()
	primes = arith.Primes(y)
	lpf = arith.LeastPrimeFactor(y)
	mu = arith.Moebius(y)
	piSmall = arith.PiSmall(y)
	piY = int64(len(primes) - 1)
	c = phi.MaxA
	if int64(c) > piY {
		c = int(piY)
	}
	return
}

func TestS1PlusS2MatchesBruteForcePhi(t *testing.T) {
	cases := []struct{ x, y int64 }{
		{1000, 10},
		{5000, 17},
		{20000, 28},
	}
	for _, tc := range cases {
		primes, lpf, mu, piSmall, piY, c := setup(t, tc.x, tc.y)

		s1 := phi.S1(tc.x, tc.y, c, primes, lpf, mu)
		eng := New(tc.x, tc.y, piY, c, primes, lpf, mu, piSmall, 2)
		s2, err := eng.Compute(context.Background())
		if err != nil {
			t.Fatalf("x=%d y=%d: Compute: %v", tc.x, tc.y, err)
		}

		got := s1 + s2
		want := bruteForcePhi(tc.x, int(piY), primes)
		if got != want {
			t.Errorf("x=%d y=%d: S1+S2 = %d, want phi(x,a) = %d", tc.x, tc.y, got, want)
		}
	}
}

func TestComputeIndependentOfThreadCount(t *testing.T) {
	const x, y = 20000, 28
	primes, lpf, mu, piSmall, piY, c := setup(t, x, y)

	var want int64 = -1
	for _, threads := range []int{1, 2, 4, 8} {
		eng := New(x, y, piY, c, primes, lpf, mu, piSmall, threads)
		got, err := eng.Compute(context.Background())
		if err != nil {
			t.Fatalf("threads=%d: Compute: %v", threads, err)
		}
		if want == -1 {
			want = got
		} else if got != want {
			t.Errorf("threads=%d: Compute = %d, want %d (from threads=1)", threads, got, want)
		}
	}
}

// TestComputeWithSegmentsPerThreadGrowth forces the round loop's load
// balancer past segments_per_thread == 1 (by starting segment_size already
// at or above sqrt_limit, so every round takes the "segments_per_thread *=
// 2" branch instead of growing segment_size) at a larger x than the other
// tests in this file use. This is the regime that exercises the
// goto-next_segment ("continue segLoop") early exits on later rounds, where
// a worker's sub-range spans multiple segments per round.
func TestComputeWithSegmentsPerThreadGrowth(t *testing.T) {
	const x, y = 2000000, 150
	primes, lpf, mu, piSmall, piY, c := setup(t, x, y)

	s1 := phi.S1(x, y, c, primes, lpf, mu)
	eng := New(x, y, piY, c, primes, lpf, mu, piSmall, 4, WithMinSegmentSize(256))
	s2, err := eng.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	got := s1 + s2
	want := bruteForcePhi(x, int(piY), primes)
	if got != want {
		t.Errorf("S1+S2 = %d, want phi(x,a) = %d", got, want)
	}
}

func TestComputeIndependentOfMinSegmentSize(t *testing.T) {
	const x, y = 20000, 28
	primes, lpf, mu, piSmall, piY, c := setup(t, x, y)

	var want int64 = -1
	for _, minSeg := range []int64{16, 64, 256, 1024} {
		eng := New(x, y, piY, c, primes, lpf, mu, piSmall, 3, WithMinSegmentSize(minSeg))
		got, err := eng.Compute(context.Background())
		if err != nil {
			t.Fatalf("minSeg=%d: Compute: %v", minSeg, err)
		}
		if want == -1 {
			want = got
		} else if got != want {
			t.Errorf("minSeg=%d: Compute = %d, want %d", minSeg, got, want)
		}
	}
}
