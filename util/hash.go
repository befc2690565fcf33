package util

import (
	"github.com/cespare/xxhash/v2"
	. "github.com/rryqszq4/go-murmurhash"
)

// Seed used for register hashing. Fixed so that sketches built by
// different processes stay mergeable.
const hashSeed uint32 = 313

// Hash32 hashes data with MurmurHash3_x86_32 and the fixed sketch seed.
func Hash32(data []byte) uint32 {
	return MurmurHash3_x86_32(data, hashSeed)
}

// Fingerprint returns a 64-bit fingerprint of data. The benchmark harness
// uses it to track exact cardinality without retaining the keys.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
