package openaddr

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to the start of its probe sequence.
// Only the low bits are used, so they should be well mixed.
type Hasher[T comparable] func(k T) uint64

// StringHasher hashes strings with xxhash.
func StringHasher(k string) uint64 {
	return xxhash.Sum64String(k)
}

// IntHasher hashes integers with xxhash over their little endian bytes.
func IntHasher[T constraints.Integer](k T) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(k))
	return xxhash.Sum64(b[:])
}
