// Package hashtables provides hash functions for the maps under Maps. A map takes any func(K) uint64 that's
// deterministic; the ones here are ready-made for common key types.
package hashtables

import (
	"encoding/binary"
	"hash/maphash"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// Hasher is a seed for xxh3. The receivers don't modify it, so it's safe to share.
type Hasher uint64

// MakeHasher with a random seed.
func MakeHasher() Hasher {
	return Hasher(rand.Uint64())
}

// HashString hashes v.
func (u Hasher) HashString(v string) uint64 {
	return xxh3.HashStringSeed(v, uint64(u))
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	return xxh3.HashSeed(b, uint64(u))
}

// HashUint64 hashes the little endian bytes of v.
func (u Hasher) HashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return xxh3.HashSeed(b[:], uint64(u))
}

// String returns u.HashString as a func value.
func String(u Hasher) func(string) uint64 {
	return u.HashString
}

// Integer returns a hash function for any integer key type. Keys that are equal after conversion to uint64
// hash the same.
func Integer[K constraints.Integer](u Hasher) func(K) uint64 {
	return func(k K) uint64 {
		return u.HashUint64(uint64(k))
	}
}

// XXHashString is an unseeded alternative to Hasher.HashString.
func XXHashString(v string) uint64 {
	return xxhash.Sum64String(v)
}

// XXHashUint64 is an unseeded alternative to Hasher.HashUint64.
func XXHashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return xxhash.Sum64(b[:])
}

// Comparable hashes any comparable key through hash/maphash. It's slower than the typed functions above.
func Comparable[K comparable](seed maphash.Seed) func(K) uint64 {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
