// Package engine wires the registry, ingest, and boruvka packages
// together into the single object a caller actually wants: something
// that accepts a stream of edge events and answers connectivity
// queries. It is the top of the dependency graph — CLI and
// config-driven callers construct an Engine and never touch registry or
// dsu directly; they pass ingest.Event values in and read results from
// the *boruvka.Driver that Connectivity returns.
package engine
