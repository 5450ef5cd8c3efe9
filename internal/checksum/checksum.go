// Package checksum implements the corruption and determinism checks that
// WithDebugValidation() enables: xxh3-128 digests over the precomputed
// mu/lpf/primes arrays, and murmur3-128 digests over S2's phi (and
// optionally mu_sum) accumulators, so a second, independently-built copy of
// either can be compared cheaply instead of diffed element by element.
package checksum

import (
	"encoding/binary"
	"fmt"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// murmurSeed is fixed so that digests of the same worker state are directly
// comparable across separate Compute calls (testable properties 6 and 7).
const murmurSeed uint32 = 0x53544b32 // "STK2"

// ArrayDigest returns the xxh3-128 digest of mu, lpf and primes concatenated
// as little-endian int32 words, in that order.
func ArrayDigest(mu, lpf, primes []int32) (lo, hi uint64) {
	buf := make([]byte, 0, 4*(len(mu)+len(lpf)+len(primes)))
	buf = appendInt32s(buf, mu)
	buf = appendInt32s(buf, lpf)
	buf = appendInt32s(buf, primes)
	h := xxh3.Hash128(buf)
	return h.Lo, h.Hi
}

// VerifyArrayDigest reports whether mu/lpf/primes hash to the digest
// recorded by a prior ArrayDigest call.
func VerifyArrayDigest(mu, lpf, primes []int32, lo, hi uint64) bool {
	gotLo, gotHi := ArrayDigest(mu, lpf, primes)
	return gotLo == lo && gotHi == hi
}

// WorkerStateDigest returns the murmur3-128 digest of a worker's final
// phi[] and muSum[] accumulators, seeded with murmurSeed.
func WorkerStateDigest(phi, muSum []int64) (uint64, uint64) {
	buf := make([]byte, 0, 8*(len(phi)+len(muSum)))
	buf = appendInt64s(buf, phi)
	buf = appendInt64s(buf, muSum)
	return murmur3.Sum128WithSeed(buf, murmurSeed)
}

// DigestString renders a 128-bit digest pair the way log output or a test
// failure message wants it: one fixed-width hex token.
func DigestString(lo, hi uint64) string {
	return fmt.Sprintf("%016x%016x", hi, lo)
}

func appendInt32s(buf []byte, vals []int32) []byte {
	var tmp [4]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint32(tmp[:], uint32(v))
		buf = append(buf, tmp[:]...)
	}
	return buf
}

func appendInt64s(buf []byte, vals []int64) []byte {
	var tmp [8]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint64(tmp[:], uint64(v))
		buf = append(buf, tmp[:]...)
	}
	return buf
}
