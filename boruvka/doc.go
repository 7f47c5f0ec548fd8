// Package boruvka implements the Borůvka-style connected-components
// driver: repeatedly sample one outgoing edge per current super-node
// from the registry's sketches, union the endpoints, and stop when a
// round makes no progress.
//
// Each round samples every current component independently, so rounds
// parallelize across components (golang.org/x/sync/errgroup bounds the
// worker pool to GOMAXPROCS); the shared dsu.DSU is safe for this
// concurrent find/union traffic. Cancellation (via context.Context) is
// only honored between rounds — a round in flight always finishes — to
// keep the DSU's state consistent with a complete or empty round, never
// a partially-applied one.
package boruvka
