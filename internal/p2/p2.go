// Package p2 implements P2, the scalar collaborator that accounts for the
// contribution of prime pairs (p, q) with p <= q, p*q <= x and p, q > y to
// the LMO identity pi(x) = phi(x,a) + a - 1 - P2(x,a).
package p2

import (
	"context"

	"golang.org/x/sync/errgroup"

	intbits "github.com/klmo/primecount/internal/bits"

	"github.com/klmo/primecount/internal/arith"
)

// P2 returns the count of pairs (p, q), p <= q, p*q <= x, y < p, via the
// closed form P2(x,y) = sum over primes p in (y, sqrt(x)] of
// (pi(x/p) - pi(p) + 1), where pi(p) is p's own rank among the primes.
// The sum is partitioned across up to `threads` goroutines; pi(p) is
// recovered cheaply from piY (the count of primes <= y, supplied by the
// caller) plus each prime's ordinal position in the (y, sqrt(x)] range.
func P2(ctx context.Context, x, y int64, piY int64, threads int) (int64, error) {
	if x < 4 {
		return 0, nil
	}
	sqrtX := intbits.Isqrt(x)
	if y >= sqrtX {
		return 0, nil
	}
	if threads < 1 {
		threads = 1
	}

	ordinals := ordinalsOf(y+1, sqrtX+1)
	if len(ordinals) == 0 {
		return 0, nil
	}

	chunks := splitEvenly(len(ordinals), threads)
	partials := make([]int64, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for idx, c := range chunks {
		idx, c := idx, c
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			var sum int64
			for i := c[0]; i < c[1]; i++ {
				p := ordinals[i]
				piP := piY + int64(i) + 1
				piXP := countPrimesUpTo(x / p)
				sum += piXP - piP + 1
			}
			partials[idx] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, s := range partials {
		total += s
	}
	return total, nil
}

// ordinalsOf returns the primes in [low, high) in ascending order.
func ordinalsOf(low, high int64) []int64 {
	var out []int64
	it := arith.NewPrimeIterator(low, high)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// countPrimesUpTo returns the number of primes <= n via direct sieving.
// P2's scalar contract does not assume a shared PiTable is available (x/p
// can range up to x/y, well beyond any table built for the LMO driver's
// own y-scale lookups), so it counts from scratch each call.
func countPrimesUpTo(n int64) int64 {
	if n < 2 {
		return 0
	}
	it := arith.NewPrimeIterator(2, n+1)
	var count int64
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	return count
}

// splitEvenly partitions [0, n) into at most `parts` contiguous ranges.
func splitEvenly(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	out := make([][2]int, 0, parts)
	base := n / parts
	rem := n % parts
	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < rem {
			size++
		}
		end := start + size
		if end > start {
			out = append(out, [2]int{start, end})
		}
		start = end
	}
	return out
}

