// Package bucket implements the pure arithmetic primitives the sketch
// package builds its linear summary on top of: a keyed index hash, a
// keyed column/row hash, a membership predicate over hash levels, and
// the "good bucket" recovery predicate.
//
// Every function here is a pure function of its arguments and the
// caller-supplied graph seed — no state, no allocation on the hot path.
// The underlying hash primitive is github.com/cespare/xxhash/v2; this
// package is the only place in the module that imports it, so a future
// swap to a different hash family touches one file.
//
// Level nesting. IndexHash feeds the recovery check (is this the bucket's
// unique surviving index?); ColIndexHash feeds Contains, which decides
// which rows of a column an index is XORed into. Contains(h, LevelMask(r))
// is true iff the low r bits of h are all zero, which happens with
// probability 2^-r and — critically — is monotone in r: if row r rejects
// (Contains returns false at level r), every row r' > r also rejects,
// because LevelMask(r) is a submask of LevelMask(r+1). Sketch.Update relies
// on exactly this nesting to stop walking rows at the first rejection
// instead of testing every row.
package bucket
