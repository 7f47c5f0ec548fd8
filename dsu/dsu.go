package dsu

import (
	"sort"
	"sync"
)

// DSU is a disjoint-set-union over vertex ids [0, n). All methods are
// safe for concurrent use; a single mutex guards parent/rank because
// Find and Union both run in O(alpha(n)) amortized time, far too cheap
// for lock contention to matter at the vertex counts this engine targets.
type DSU struct {
	mu     sync.Mutex
	parent []uint32
	rank   []uint8
}

// New returns a DSU over n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]uint32, n),
		rank:   make([]uint8, n),
	}
	for i := range d.parent {
		d.parent[i] = uint32(i)
	}

	return d
}

// Find returns the canonical root of v's component, compressing the path
// from v to the root as it walks.
func (d *DSU) Find(v uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.find(v)
}

// find is the unlocked core of Find; callers must hold d.mu.
func (d *DSU) find(v uint32) uint32 {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]] // path compression (halving)
		v = d.parent[v]
	}

	return v
}

// Union merges the components containing u and v, attaching the
// lower-rank root under the higher-rank one (breaking ties by attaching
// v's root under u's and incrementing its rank). It reports whether a
// merge actually occurred (false if u and v were already in the same
// component).
func (d *DSU) Union(u, v uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}

	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}

// Roots returns the canonical root of every current component, in
// ascending order.
func (d *DSU) Roots() []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	seen := make(map[uint32]struct{})
	var roots []uint32
	for v := range d.parent {
		r := d.find(uint32(v))
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			roots = append(roots, r)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	return roots
}

// Components returns every current component as a map from root to its
// sorted-by-id members.
func (d *DSU) Components() map[uint32][]uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[uint32][]uint32)
	for v := range d.parent {
		r := d.find(uint32(v))
		out[r] = append(out[r], uint32(v))
	}

	return out
}

// Len returns the number of vertices the DSU was constructed over.
func (d *DSU) Len() int {
	return len(d.parent)
}
