package primecount

import (
	"context"

	"github.com/klmo/primecount/internal/wheel"
)

// PiTable answers pi(x) queries for 0 <= x <= its configured max_x in O(1)
// amortized time, backed by a compressed bitset over the residue wheel
// mod 30.
type PiTable struct {
	inner *wheel.PiTable
}

// NewPiTable builds a PiTable covering queries pi(x) for 0 <= x <= maxX,
// using up to threads goroutines to extend the table beyond its static
// seed cache. Returns an error for an invalid maxX (negative) or, when
// WithDebugValidation is set, for errors.ErrCacheMismatch if the baked-in
// static cache disagrees with a freshly recomputed one.
func NewPiTable(maxX int64, threads int, opts ...Option) (*PiTable, error) {
	cfg := newConfig(opts...)

	if cfg.debugValidation {
		if err := wheel.ValidateCache(context.Background(), threads); err != nil {
			return nil, err
		}
	}

	inner, err := wheel.New(context.Background(), maxX, threads)
	if err != nil {
		return nil, err
	}
	return &PiTable{inner: inner}, nil
}

// Pi returns pi(x), the number of primes <= x, for 0 <= x <= the table's
// configured max_x. Returns errors.ErrOutOfRange outside that domain.
func (t *PiTable) Pi(x int64) (int64, error) {
	return t.inner.Pi(x)
}

// MaxX returns the largest x this table can answer queries for.
func (t *PiTable) MaxX() int64 {
	return t.inner.MaxX()
}
