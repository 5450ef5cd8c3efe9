package primecount

import "time"

// Option is a functional option for configuring PrimeCount and NewPiTable,
// in the shape of the MPHF builder's own BuildOption.
type Option func(*config)

type config struct {
	debugValidation bool
	memoize         bool
	minSegmentSize  int64
	balanceWindow   time.Duration
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithDebugValidation enables the design-note-9 cross-checks: an xxh3
// digest verification of the freshly-built mu/lpf/primes arrays, and (where
// applicable) a murmur3 digest comparison of S2's stitched phi accumulator
// across two thread counts. Adds measurable overhead; intended for tests and one-off
// verification runs, not hot-path use.
func WithDebugValidation() Option {
	return func(c *config) { c.debugValidation = true }
}

// WithMemoization enables an xxhash-keyed LRU cache of PrimeCount results
// keyed by (x, threads). Disabled by default: most callers compute pi(x)
// once per x and the cache would only add bookkeeping overhead.
func WithMemoization(enabled bool) Option {
	return func(c *config) { c.memoize = enabled }
}

// WithMinSegmentSize overrides the S2 engine's starting segment size.
// Correctness must not depend on this value; it exists for tests exercising
// testable property 7 (segment-growth independence) and for callers tuning
// cache behavior on unusual hardware.
func WithMinSegmentSize(n int64) Option {
	return func(c *config) { c.minSegmentSize = n }
}

// WithLoadBalanceWindow overrides how long an S2 round may run and still let
// the engine grow segment_size or segments_per_thread for the next round.
func WithLoadBalanceWindow(d time.Duration) Option {
	return func(c *config) { c.balanceWindow = d }
}
