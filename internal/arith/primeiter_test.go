package arith

import "testing"

func naivePrimesIn(low, high int64) []int64 {
	var out []int64
	for n := low; n < high; n++ {
		if n < 2 {
			continue
		}
		isPrime := true
		for d := int64(2); d*d <= n; d++ {
			if n%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			out = append(out, n)
		}
	}
	return out
}

func collect(it *PrimeIterator) []int64 {
	var out []int64
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

func TestPrimeIteratorMatchesNaiveSieve(t *testing.T) {
	cases := []struct{ low, high int64 }{
		{0, 2}, {0, 100}, {2, 100}, {50, 200}, {1, 1}, {100, 100},
		{1, 1 << 17}, // spans multiple default windows
	}
	for _, c := range cases {
		got := collect(NewPrimeIterator(c.low, c.high))
		want := naivePrimesIn(c.low, c.high)
		if len(got) != len(want) {
			t.Fatalf("[%d,%d): got %d primes, want %d", c.low, c.high, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("[%d,%d): primes[%d] = %d, want %d", c.low, c.high, i, got[i], want[i])
			}
		}
	}
}

func TestPrimeIteratorEmptyWhenLowGEHigh(t *testing.T) {
	it := NewPrimeIterator(10, 5)
	if _, ok := it.Next(); ok {
		t.Fatal("expected no primes when low >= high")
	}
}
