// Package dsu implements a thread-safe disjoint-set-union (union-find)
// over a fixed set of vertex ids, supporting Find, Union, and enumeration
// of current roots and components.
//
// The algorithm (path compression plus union by rank) is the same one
// used inline by prim_kruskal.Kruskal; this package pulls it out into a
// standalone, reusable, concurrency-safe primitive so the connectivity
// driver can call Find/Union from multiple goroutines while sampling
// different super-nodes in the same Borůvka round.
package dsu
