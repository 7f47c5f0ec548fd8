// Package ingest fans a stream of graph update events out across a
// pool of workers and applies each one to a registry.Registry.
//
// Two events touching the same vertex must never race, but two events
// touching disjoint vertices should run concurrently — registry.Apply
// already serializes access to each endpoint's own sketch internally,
// so the pool's only job is to bound concurrency and give callers a
// way to wait for every submitted event to finish (Quiesce) before,
// for example, starting a connectivity round.
package ingest
