package p2

import (
	"context"
	"testing"
)

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

// naiveP2 counts pairs (p, q) with p <= q, p*q <= x, p, q both > y, by brute
// force over the prime list up to x.
func naiveP2(x, y int64) int64 {
	primes := naivePrimesUpTo(x)
	var count int64
	for i, p := range primes {
		if p <= y {
			continue
		}
		if p*p > x {
			break
		}
		for j := i; j < len(primes); j++ {
			q := primes[j]
			if q <= y {
				continue
			}
			if p*q > x {
				break
			}
			count++
		}
	}
	return count
}

func piOf(n int64) int64 {
	return int64(len(naivePrimesUpTo(n)))
}

func TestP2MatchesBruteForce(t *testing.T) {
	cases := []struct{ x, y int64 }{
		{100, 3}, {500, 5}, {1000, 7}, {2000, 10}, {10000, 20},
	}
	for _, c := range cases {
		piY := piOf(c.y)
		got, err := P2(context.Background(), c.x, c.y, piY, 3)
		if err != nil {
			t.Fatalf("P2(%d,%d): %v", c.x, c.y, err)
		}
		want := naiveP2(c.x, c.y)
		if got != want {
			t.Errorf("P2(%d,%d) = %d, want %d", c.x, c.y, got, want)
		}
	}
}

func TestP2ZeroForSmallX(t *testing.T) {
	got, err := P2(context.Background(), 3, 1, 0, 2)
	if err != nil {
		t.Fatalf("P2: %v", err)
	}
	if got != 0 {
		t.Errorf("P2(3,1) = %d, want 0", got)
	}
}

func TestP2IndependentOfThreadCount(t *testing.T) {
	const x, y = 5000, 8
	piY := piOf(y)
	var want int64 = -1
	for _, threads := range []int{1, 2, 4, 8} {
		got, err := P2(context.Background(), x, y, piY, threads)
		if err != nil {
			t.Fatalf("P2 threads=%d: %v", threads, err)
		}
		if want == -1 {
			want = got
		} else if got != want {
			t.Errorf("P2 with threads=%d = %d, want %d (from threads=1)", threads, got, want)
		}
	}
}
