// Package sketch implements the L0 linear sketch: a fixed-size summary of
// an integer vector x in GF(2)^N, supporting Update(i) (x[i] ^= 1),
// in-place Merge (XOR two sketches over identical parameters), and Query
// (recover a uniformly random surviving nonzero coordinate of x with high
// probability).
//
// A Sketch is organized as C columns by R rows of buckets; each bucket
// holds two XOR accumulators, A and CHash (see bucket.IndexHash /
// bucket.ColIndexHash). C and R are derived once, at construction, from
// the vector size N and a bucket factor f; they never change afterwards.
//
// Mutation contract: Update and Merge XOR state in and are safe to call
// concurrently on a single Sketch (an internal mutex serializes them), but
// Query may be called at most once per Sketch lifetime — see ErrRepeatedQuery.
// This one-shot restriction exists because a second query would reuse
// randomness the first query's recovered index already consumed,
// invalidating the independence the sampling analysis relies on.
package sketch
