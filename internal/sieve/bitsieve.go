// Package sieve implements the segmented bit-sieve and its Fenwick-blocked
// running-count index, the two data structures the S2 special-leaves engine
// drives per segment.
package sieve

import (
	"math/bits"

	intbits "github.com/klmo/primecount/internal/bits"
)

// BitSieve is a packed bit array of `size` logical bits stored in
// ceil(size/64) 64-bit words. Bit i is 1 iff position i in the segment is
// still "alive" (a candidate prime). Bits beyond size are don't-care.
//
// A BitSieve is allocated once per worker at the worker's maximum segment
// size and reused, via Reset, across segments of equal or smaller size.
type BitSieve struct {
	words []uint64
	size  int64
}

// New allocates a BitSieve able to hold `size` logical bits.
func New(size int64) *BitSieve {
	return &BitSieve{
		words: make([]uint64, intbits.CeilDiv(size, 64)),
		size:  size,
	}
}

// Size returns the number of logical bits this sieve was allocated for.
func (s *BitSieve) Size() int64 {
	return s.size
}

// Reset fills the sieve with the "all odd positions are candidate primes"
// pattern for a segment starting at `low`: bit i is 1 iff (low+i) is odd and
// > 1. If low <= 2, the bits for 0 and 1 are cleared and the bit for 2 is
// set (2 is the only even prime, and it is never represented as an odd
// candidate otherwise).
func (s *BitSieve) Reset(low int64) {
	pattern := uint64(0xAAAAAAAAAAAAAAAA)
	if low&1 != 0 {
		pattern = 0x5555555555555555
	}
	for i := range s.words {
		s.words[i] = pattern
	}

	if low <= 2 {
		bit := uint64(1) << uint(2-low)
		s.words[0] &^= bit - 1
		s.words[0] |= bit
	}
}

// Test reads bit k. Precondition: k < size.
func (s *BitSieve) Test(k int64) bool {
	return s.words[k>>6]&(uint64(1)<<uint(k&63)) != 0
}

// Unset clears bit k. Precondition: k < size.
func (s *BitSieve) Unset(k int64) {
	s.words[k>>6] &^= uint64(1) << uint(k&63)
}

// Count returns the popcount of bits in the inclusive range [start, stop].
// Returns 0 when start > stop. Precondition: stop < size.
func (s *BitSieve) Count(start, stop int64) int64 {
	if start > stop {
		return 0
	}
	return int64(intbits.PopcountRange(s.words, uint64(start), uint64(stop)))
}

// Popcount returns the total number of set bits in the sieve's logical
// range [0, size).
func (s *BitSieve) Popcount() int64 {
	var n int
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	if tail := uint(s.size & 63); tail != 0 {
		n -= bits.OnesCount64(s.words[len(s.words)-1] &^ (uint64(1)<<tail - 1))
	}
	return int64(n)
}
