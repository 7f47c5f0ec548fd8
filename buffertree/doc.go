// Package buffertree persists per-vertex sketch snapshots to disk using
// a single go.etcd.io/bbolt database; Engine.Snapshot writes each
// vertex's serialized sketch here. Nothing in this module reads the
// snapshots back into an Engine.
//
// A Store holds one bbolt bucket keyed by the vertex's big-endian
// uint32 id; values are whatever binary blob the caller supplies
// (typically sketch.Sketch.MarshalBinary's output). buffertree does not
// know about sketches, graphs, or the sampling protocol — it is a thin,
// ordered key/value layer, the same role a gutter tree plays in the
// systems this module's sampling scheme is drawn from.
package buffertree
