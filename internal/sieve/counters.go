package sieve

import intbits "github.com/klmo/primecount/internal/bits"

// Counters is a Fenwick-blocked running-count index paired with a BitSieve
// segment. Blocks are sized floor(sqrt(segmentSize)); Finit costs
// O(segmentSize), Query and Update cost O(sqrt(segmentSize)) and O(1)
// respectively. This is the "tree of sums" of spec §4.2: a standard
// logarithmic Fenwick tree would also satisfy the Finit/Query/Update
// contract, but the sqrt-blocked layout is what the segment-sieving loop in
// this package was grounded on and keeps Update to a single decrement.
type Counters struct {
	blockSize   int64
	segmentSize int64
	blockCounts []int64
	sieve       *BitSieve
}

// NewCounters allocates a Counters for sieves up to segmentSize bits.
func NewCounters(segmentSize int64) *Counters {
	bs := blockSizeFor(segmentSize)
	return &Counters{
		blockSize:   bs,
		segmentSize: segmentSize,
		blockCounts: make([]int64, intbits.CeilDiv(segmentSize, bs)),
	}
}

func blockSizeFor(segmentSize int64) int64 {
	bs := intbits.Isqrt(segmentSize)
	if bs < 1 {
		bs = 1
	}
	return bs
}

// Finit rebuilds the block counters from the current sieve state. Must be
// called once per segment, after BitSieve.Reset and the tiny-prime cross-off
// pass, before any Query/Update calls for that segment.
func (c *Counters) Finit(s *BitSieve) {
	c.sieve = s
	for i := range c.blockCounts {
		start := int64(i) * c.blockSize
		stop := start + c.blockSize - 1
		if stop >= s.Size() {
			stop = s.Size() - 1
		}
		c.blockCounts[i] = s.Count(start, stop)
	}
}

// Query returns the number of set bits in the sieve's [0, k] range: the sum
// of all complete blocks before the block containing k, plus the popcount of
// the current block's bits in [blockStart, k].
func (c *Counters) Query(k int64) int64 {
	block := k / c.blockSize
	var sum int64
	for i := int64(0); i < block; i++ {
		sum += c.blockCounts[i]
	}
	blockStart := block * c.blockSize
	sum += c.sieve.Count(blockStart, k)
	return sum
}

// Update decrements the block counter containing k. Must be called exactly
// when the caller also calls BitSieve.Unset(k), so the block counters stay
// in lockstep with the sieve state.
func (c *Counters) Update(k int64) {
	c.blockCounts[k/c.blockSize]--
}
