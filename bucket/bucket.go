package bucket

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash role tags keep IndexHash and ColIndexHash independent even though
// both are built on the same underlying xxhash primitive: without a tag,
// IndexHash(i, seed) and ColIndexHash(col=0, i, seed) would collide.
const (
	roleIndex    uint64 = 0
	roleColIndex uint64 = 1
)

// IndexHash returns a 64-bit uniform hash of edge index i, keyed by seed.
// It is used to populate a bucket's c_hash accumulator and, at recovery
// time, to confirm a candidate singleton.
func IndexHash(i, seed uint64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], roleIndex)
	binary.LittleEndian.PutUint64(buf[16:24], i)

	return xxhash.Sum64(buf[:])
}

// ColIndexHash returns a 64-bit hash of edge index i keyed by both the
// graph seed and the column id col. Its bits decide, via Contains, which
// rows of that column receive i.
func ColIndexHash(col, i, seed uint64) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], roleColIndex)
	binary.LittleEndian.PutUint64(buf[16:24], col)
	binary.LittleEndian.PutUint64(buf[24:32], i)

	return xxhash.Sum64(buf[:])
}

// LevelMask returns the bitmask whose low r bits are set, used to select
// level r of the geometric row scheme: Contains(h, LevelMask(r)) holds
// with probability 2^-r, independently per column.
func LevelMask(r int) uint64 {
	if r <= 0 {
		return 0
	}
	if r >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<uint(r) - 1
}

// Contains reports whether h belongs to the level described by mask: true
// iff every bit set in mask is clear in h.
func Contains(h, mask uint64) bool {
	return h&mask == 0
}

// IsGood implements the recovery predicate: it returns true iff a is a
// plausible singleton survivor of this bucket. a must lie in [0, n), the
// column/row hash of a must place it back in this bucket (Contains check
// against mask), and the index hash of a must reproduce the accumulated
// c_hash exactly. A false positive occurs only if two or more distinct
// indices hashed into the bucket and happened to satisfy all three checks
// together — probability bounded by the hash width.
func IsGood(a, cHash, n, col, mask, seed uint64) bool {
	if a >= n {
		return false
	}
	if !Contains(ColIndexHash(col, a, seed), mask) {
		return false
	}

	return IndexHash(a, seed) == cHash
}
