// Package s2 implements the parallel segmented special-leaves engine, the
// dominant term of the LMO decomposition phi(x,a) = S1 + S2. It walks
// [1, x/y] in growing segments, maintaining a BitSieve and Counters index
// per worker, and accumulates the contribution of "special leaves" that S1's
// direct PhiTiny lookup cannot answer.
package s2

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	intbits "github.com/klmo/primecount/internal/bits"
	"github.com/klmo/primecount/internal/sieve"
)

// balanceWindow bounds how long a round may run and still let the
// load-balancing heuristic grow the work per round (segment_size doubles up
// to sqrt_limit, then segments_per_thread doubles). A round that takes
// longer leaves both unchanged.
const balanceWindow = 10 * time.Second

// Engine holds the arrays and parameters S2 needs; it is built once per
// PrimeCount call and is safe to reuse across repeated Compute calls as
// long as x, y and the supplied arrays stay consistent with each other.
type Engine struct {
	x, y    int64
	piY     int64
	c       int
	primes  []int32 // primes[0] = 0 sentinel, primes[1..piY] ascending
	lpf     []int32 // lpf[0..y]
	mu      []int32 // mu[0..y]
	piSmall []int32 // pi[0..y]
	threads int

	minSegmentSize int64
	balanceWindow  time.Duration
}

// Option configures non-default Engine behavior, mainly for tests that need
// to pin down the load-balancing constants S2's correctness must not
// actually depend on (testable properties 6 and 7).
type Option func(*Engine)

// WithMinSegmentSize overrides the smallest segment_size the engine will
// start a round with.
func WithMinSegmentSize(n int64) Option {
	return func(e *Engine) { e.minSegmentSize = n }
}

// WithBalanceWindow overrides how long a round may run and still let the
// engine grow segment_size or segments_per_thread for the next round.
func WithBalanceWindow(d time.Duration) Option {
	return func(e *Engine) { e.balanceWindow = d }
}

// New builds an Engine for computing S2(x, y, ...). c is the tiny-phi
// threshold (min(MAX_A, piY)); primes/lpf/mu/piSmall are the arrays the LMO
// driver precomputed up to y.
func New(x, y, piY int64, c int, primes, lpf, mu, piSmall []int32, threads int, opts ...Option) *Engine {
	if threads < 1 {
		threads = 1
	}
	e := &Engine{
		x: x, y: y, piY: piY, c: c,
		primes: primes, lpf: lpf, mu: mu, piSmall: piSmall,
		threads:        threads,
		minSegmentSize: 64,
		balanceWindow:  balanceWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute returns the S2 contribution to phi(x, a), a = piY, so that
// S1 + S2 = phi(x, piY).
func (e *Engine) Compute(ctx context.Context) (int64, error) {
	total, _, err := e.ComputeWithState(ctx)
	return total, err
}

// ComputeWithState is Compute plus the final phiTotal accumulator (indexed
// by prime index b, spec.md §3's "per-thread accumulators" stitched across
// every round). WithDebugValidation uses it to digest and compare S2's
// internal state across thread counts (testable properties 6 and 7),
// rather than just the scalar total two different executions could agree
// on by coincidence.
func (e *Engine) ComputeWithState(ctx context.Context) (int64, []int64, error) {
	if e.y <= 0 {
		return 0, nil, nil
	}

	low := int64(1)
	limit := e.x/e.y + 1
	if limit <= low {
		return 0, nil, nil
	}
	sqrtLimit := intbits.Isqrt(limit)

	logX := math.Log(float64(e.x))
	if logX < 1 {
		logX = 1
	}
	segmentSize := intbits.NextPow2(int64(float64(sqrtLimit) / (logX * float64(e.threads))))
	if segmentSize < e.minSegmentSize {
		segmentSize = e.minSegmentSize
	}
	segmentsPerThread := int64(1)

	phiTotal := make([]int64, e.piY+1)
	var s2Total int64

	for low < limit {
		segments := intbits.CeilDiv(limit-low, segmentSize)
		threads := clampI64(int64(e.threads), 1, segments)
		maxSPT := intbits.CeilDiv(segments, threads)
		spt := clampI64(segmentsPerThread, 1, maxSPT)

		started := time.Now()

		results := make([]roundResult, threads)
		g, gctx := errgroup.WithContext(ctx)
		for t := int64(0); t < threads; t++ {
			t := t
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				lowW := low + t*spt*segmentSize
				limitW := low + (t+1)*spt*segmentSize
				if limitW > limit {
					limitW = limit
				}
				r, err := e.runWorker(lowW, limitW, segmentSize)
				if err != nil {
					return err
				}
				results[t] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, nil, err
		}

		low += spt * threads * segmentSize

		elapsed := time.Since(started)
		if low > sqrtLimit && elapsed < e.balanceWindow {
			if segmentSize < sqrtLimit {
				segmentSize *= 2
			} else {
				segmentsPerThread *= 2
			}
		}

		// Stitch phase: sequential, in worker-index order. This is the only
		// ordering the final result depends on.
		for t := int64(0); t < threads; t++ {
			r := results[t]
			s2Total += r.total
			for b := 1; b < len(r.phi) && b < len(phiTotal); b++ {
				s2Total += phiTotal[b] * r.muSum[b]
				phiTotal[b] += r.phi[b]
			}
		}
	}

	return s2Total, phiTotal, nil
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func clampI64(v, lo, hi int64) int64 {
	return maxI64(lo, minI64(v, hi))
}

// roundResult is what a single worker contributes during one round: its
// partial S2 sum (independent of other workers, reduced by plain addition)
// and the local phi/mu_sum arrays the stitch phase needs.
type roundResult struct {
	total int64
	phi   []int64
	muSum []int64
}

// runWorker computes one worker's contribution over its static sub-range
// [lowW, limitW), segment by segment. The returned total is independent of
// every other worker's total (plain additive reduction); phi and muSum are
// this worker's local state, consumed only by the sequential stitch phase.
func (e *Engine) runWorker(lowW, limitW, segmentSize int64) (roundResult, error) {
	if lowW >= limitW {
		return roundResult{}, nil
	}

	sqrtXLowW := intbits.Isqrt(e.x / lowW)
	sizeArg := minI64(sqrtXLowW, e.y)
	size := int64(e.piSmall[sizeArg]) + 1

	if int64(e.c) >= size-1 {
		return roundResult{}, nil
	}

	s := sieve.New(segmentSize)
	cnt := sieve.NewCounters(segmentSize)

	next := make([]int64, size)
	for b := int64(1); b < size; b++ {
		prime := int64(e.primes[b])
		m := lowW - lowW%prime
		if m < lowW {
			m += prime
		}
		if m%2 == 0 {
			m += prime
		}
		next[b] = m
	}

	phi := make([]int64, size)
	muSum := make([]int64, size)
	var total int64

	piSqrtY := int64(e.piSmall[intbits.Isqrt(e.y)])
	upperB4 := minI64(piSqrtY, size)
	upperB5 := minI64(e.piY, size)

segLoop:
	for lowS := lowW; lowS < limitW; lowS += segmentSize {
		highS := lowS + segmentSize
		if highS > limitW {
			highS = limitW
		}

		s.Reset(lowS)

		for b := int64(2); b <= int64(e.c) && b < size; b++ {
			prime := int64(e.primes[b])
			for next[b] < highS {
				s.Unset(next[b] - lowS)
				next[b] += 2 * prime
			}
		}

		cnt.Finit(s)

		for b := int64(e.c) + 1; b < upperB4; b++ {
			prime := int64(e.primes[b])
			minM := maxI64(e.x/(prime*highS), e.y/prime)
			maxM := minI64(e.x/(prime*lowS), e.y)
			if prime >= maxM {
				continue segLoop
			}
			for m := maxM; m > minM; m-- {
				if e.mu[m] != 0 && prime < int64(e.lpf[m]) {
					n := prime * m
					count := cnt.Query(e.x/n - lowS)
					phiXN := phi[b] + count
					total -= int64(e.mu[m]) * phiXN
					muSum[b] -= int64(e.mu[m])
				}
			}
			phi[b] += cnt.Query(highS - 1 - lowS)
			for next[b] < highS {
				k := next[b] - lowS
				if s.Test(k) {
					s.Unset(k)
					cnt.Update(k)
				}
				next[b] += 2 * prime
			}
		}

		for b := maxI64(piSqrtY, int64(e.c)+1); b < upperB5; b++ {
			prime := int64(e.primes[b])
			l := int64(e.piSmall[minI64(e.x/(prime*lowS), e.y)])
			minM := maxI64(e.x/(prime*highS), e.y/prime)
			minM = clampI64(minM, prime, e.y)
			minL := int64(e.piSmall[minM])
			if prime >= int64(e.primes[l]) {
				continue segLoop
			}
			for ; l > minL; l-- {
				n := prime * int64(e.primes[l])
				count := cnt.Query(e.x/n - lowS)
				phiXN := phi[b] + count
				total += phiXN
				muSum[b]++
			}
			phi[b] += cnt.Query(highS - 1 - lowS)
			for next[b] < highS {
				k := next[b] - lowS
				if s.Test(k) {
					s.Unset(k)
					cnt.Update(k)
				}
				next[b] += 2 * prime
			}
		}
	}

	return roundResult{total: total, phi: phi, muSum: muSum}, nil
}
