// Package registry holds one sketch per vertex and implements the two
// operations the connectivity driver needs: Apply, which folds a stream
// event into both endpoints' sketches, and Sample, which merges the
// sketches of every vertex in a super-node and recovers one boundary
// edge.
//
// All n sketches share one (graphSeed, f) pair — see DESIGN.md for why
// this is required rather than seeding each vertex independently — so
// that Sample's merge of arbitrarily many members always satisfies the
// sketch package's identical-parameters contract.
package registry
