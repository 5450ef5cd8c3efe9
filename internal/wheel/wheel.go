// Package wheel implements PiTable, a compressed lookup table of prime
// counts over the residue wheel mod 30. Each bit of the table corresponds
// to an integer not divisible by 2, 3 or 5; the 8 bits of each byte
// correspond to the offsets {1, 7, 11, 13, 17, 19, 23, 29}, so one 64-bit
// word (8 bytes) covers an interval of 30*8 = 240 integers.
package wheel

import (
	"context"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/klmo/primecount/internal/arith"
	pcerrors "github.com/klmo/primecount/errors"
)

// wheelResidues are the 8 residues mod 30 coprime to 30, in ascending
// order; they index the 8 bits of each byte of a pi_t.bits field.
var wheelResidues = [8]int64{1, 7, 11, 13, 17, 19, 23, 29}

// setBit maps a residue r in [0, 240) to the single-bit mask for the prime
// at that residue within its piEntry, or 0 if r is not coprime to 30 (that
// bit is never touched).
var setBit [cacheIntervalSize]uint64

// bitIndexLE[r] is the index (0..63) of the highest wheel bit at or before
// residue r in [0, 240); -1 if no wheel position exists at or before r.
var bitIndexLE [cacheIntervalSize]int

func init() {
	bit := -1
	for r := int64(0); r < cacheIntervalSize; r++ {
		block := r / 30
		offset := r % 30
		for i, res := range wheelResidues {
			if res == offset {
				bit = int(block)*8 + i
				setBit[r] = uint64(1) << uint(bit)
				break
			}
		}
		bitIndexLE[r] = bit
	}
}

// piSmallValues holds PrimePi(x) for x in [0, 5): {0, 0, 1, 2, 2}.
var piSmallValues = [5]int64{0, 0, 1, 2, 2}

// PiTable is a compressed PrimePi(x) lookup table for x <= maxX, seeded
// from a static 128-entry cache covering [0, 30720) and, when maxX exceeds
// that, extended in parallel by sieving with a raw prime iterator.
type PiTable struct {
	maxX    int64
	entries []piEntry
}

// New builds a PiTable covering queries pi(x) for 0 <= x <= maxX, using up
// to `threads` goroutines to extend the table beyond the static cache.
func New(ctx context.Context, maxX int64, threads int) (*PiTable, error) {
	if maxX < 0 {
		return nil, pcerrors.ErrInvalidGeometry
	}
	if threads < 1 {
		threads = 1
	}

	limit := maxX + 1
	numEntries := ceilDiv(limit, cacheIntervalSize)
	t := &PiTable{
		maxX:    maxX,
		entries: make([]piEntry, numEntries),
	}

	n := len(piCache)
	if int64(n) > numEntries {
		n = int(numEntries)
	}
	copy(t.entries, piCache[:n])

	cacheLimit := int64(len(piCache)) * cacheIntervalSize
	if limit > cacheLimit {
		tail := piCache[len(piCache)-1]
		baseCount := int64(tail.count) + int64(popcount64(tail.bits))
		if err := t.extend(ctx, limit, cacheLimit, baseCount, threads); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Pi returns PrimePi(x), the number of primes <= x, for 0 <= x <= maxX.
func (t *PiTable) Pi(x int64) (int64, error) {
	if x < 0 || x > t.maxX {
		return 0, pcerrors.ErrOutOfRange
	}
	if x < 5 {
		return piSmallValues[x], nil
	}

	i := x / cacheIntervalSize
	r := x % cacheIntervalSize
	bit := bitIndexLE[r]
	if bit < 0 {
		return int64(t.entries[i].count), nil
	}

	var mask uint64
	if bit == 63 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << uint(bit+1)) - 1
	}

	e := t.entries[i]
	return int64(e.count) + int64(popcount64(e.bits&mask)), nil
}

// MaxX returns the largest x this table can answer queries for.
func (t *PiTable) MaxX() int64 {
	return t.maxX
}

// ValidateCache recomputes the static piCache's entire covered interval
// [0, cacheLimit) from scratch with the same sieve-based construction
// extend() uses to go beyond the cache, and reports pcerrors.ErrCacheMismatch
// if any entry disagrees with the baked-in data. This is design note 9's
// "validate it against a runtime-computed table in debug builds" check:
// the cache is transcribed literal data, the table built here is derived
// independently at call time, so a mismatch means the transcription (or the
// sieve itself) has drifted. Intended for WithDebugValidation, not the hot
// path.
func ValidateCache(ctx context.Context, threads int) error {
	if threads < 1 {
		threads = 1
	}
	cacheLimit := int64(len(piCache)) * cacheIntervalSize

	fresh := &PiTable{
		maxX:    cacheLimit - 1,
		entries: make([]piEntry, len(piCache)),
	}
	// The wheel's tally starts from pi(5) = 3 (data model §3): primes 2, 3
	// and 5 are handled by piSmallValues, not represented as wheel bits.
	if err := fresh.extend(ctx, cacheLimit, 0, 3, threads); err != nil {
		return err
	}

	for i := range piCache {
		if fresh.entries[i] != piCache[i] {
			return pcerrors.ErrCacheMismatch
		}
	}
	return nil
}

// extend fills entries in [low, limit) by partitioning that range into
// `threads` contiguous, 240-aligned sub-ranges and running a two-phase
// parallel construction: Phase 1 sieves each sub-range independently and
// counts its primes; Phase 2 uses those per-range counts, seeded from
// baseCount (the running prime count immediately before low), to compute
// each entry's running count, in range order.
func (t *PiTable) extend(ctx context.Context, limit, low int64, baseCount int64, threads int) error {
	dist := limit - low
	const threadThreshold = int64(1e7)

	if threads < 1 {
		threads = 1
	}
	maxThreads := int(ceilDiv(dist, threadThreshold))
	if maxThreads < 1 {
		maxThreads = 1
	}
	if threads > maxThreads {
		threads = maxThreads
	}

	threadDist := dist / int64(threads)
	if threadDist < threadThreshold {
		threadDist = threadThreshold
	}
	if rem := threadDist % cacheIntervalSize; rem != 0 {
		threadDist += cacheIntervalSize - rem
	}

	bounds := make([][2]int64, 0, threads)
	for lo := low; lo < limit; lo += threadDist {
		hi := lo + threadDist
		if hi > limit {
			hi = limit
		}
		bounds = append(bounds, [2]int64{lo, hi})
	}

	counts := make([]int64, len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	for idx, b := range bounds {
		idx, b := idx, b
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			counts[idx] = t.initBits(b[0], b[1])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g2, gctx2 := errgroup.WithContext(ctx)
	for idx, b := range bounds {
		idx, b := idx, b
		g2.Go(func() error {
			select {
			case <-gctx2.Done():
				return gctx2.Err()
			default:
			}
			var startCount int64 = baseCount
			for i := 0; i < idx; i++ {
				startCount += counts[i]
			}
			t.initCount(b[0], b[1], startCount)
			return nil
		})
	}
	return g2.Wait()
}

// initBits zero-initializes entries[low/240 : ceil(high/240)), sets the
// prime bit for each prime in [max(low,7), high), and returns the number of
// primes it found.
func (t *PiTable) initBits(low, high int64) int64 {
	i := low / cacheIntervalSize
	j := ceilDiv(high, cacheIntervalSize)
	for k := i; k < j; k++ {
		t.entries[k] = piEntry{}
	}

	sieveLow := low
	if sieveLow < 7 {
		sieveLow = 7
	}

	var count int64
	it := arith.NewPrimeIterator(sieveLow, high)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		bit := setBit[p%cacheIntervalSize]
		t.entries[p/cacheIntervalSize].bits |= bit
		count++
	}
	return count
}

// initCount fills entries[low/240 : ceil(high/240)).count starting from
// startCount, advancing by the popcount of each entry's bits as it goes.
func (t *PiTable) initCount(low, high, startCount int64) {
	i := low / cacheIntervalSize
	stop := ceilDiv(high, cacheIntervalSize)
	count := startCount
	for ; i < stop; i++ {
		t.entries[i].count = uint32(count)
		count += int64(popcount64(t.entries[i].bits))
	}
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

func popcount64(x uint64) int64 {
	return int64(bits.OnesCount64(x))
}
