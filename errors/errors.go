// Package errors defines all exported error sentinels for the primecount
// library.
//
// This is the single source of truth for error values. Both the top-level
// primecount package and internal algorithm packages import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// PiTable errors
var (
	ErrOutOfRange = errors.New("primecount: x exceeds the PiTable's configured max_x")
)

// Debug-validation errors (only surfaced when WithDebugValidation is set)
var (
	ErrCacheMismatch        = errors.New("primecount: static pi cache disagrees with a runtime-computed table")
	ErrArrayChecksumMismatch = errors.New("primecount: mu/lpf/primes checksum does not match the independently recomputed arrays")
	ErrNonDeterministicS2   = errors.New("primecount: S2 produced a different total or phi digest across thread counts")
)

// Internal errors (parameter validation shared across internal packages)
var (
	ErrInvalidGeometry = errors.New("primecount: invalid geometry parameters")
)
