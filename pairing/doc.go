// Package pairing implements the edge-id mappings used to index per-edge
// coordinates in a vertex's GF(2) update vector.
//
// Two pairing schemes are provided:
//
//   - Nondirectional maps an unordered pair {i, j}, i != j, into [0, n(n-1)/2)
//     via the standard triangular-number pairing function. This is the
//     scheme the connectivity driver uses: edges are undirected, so {u,v}
//     and {v,u} must land on the same coordinate.
//   - Concatenating maps an ordered pair of 32-bit vertex ids into a single
//     uint64 by bit concatenation. It is exposed for callers that care
//     about ordered pairs (e.g. a directed variant built on top of this
//     package), but the driver in this repository never uses it.
//
// Both schemes are bit-exact bijections on their stated domains; see the
// package tests for the inverse round-trip property.
package pairing
