package registry

import (
	"github.com/sketchgraph/boruvka/pairing"
	"github.com/sketchgraph/boruvka/sketch"
)

// Registry holds one L0 sketch per vertex over a fixed vertex set
// [0, n), all sharing the same universe size N = n(n-1)/2, hash seed,
// and bucket factor f.
type Registry struct {
	n         int
	universeN uint64
	graphSeed uint64
	f         float64
	sketches  []*sketch.Sketch
}

// New constructs a Registry of n vertex sketches, each over universe
// size n(n-1)/2, sharing graphSeed and bucket factor f.
func New(n int, graphSeed uint64, f float64) *Registry {
	universeN := universeSize(n)
	sketches := make([]*sketch.Sketch, n)
	for v := 0; v < n; v++ {
		sketches[v] = sketch.New(universeN, graphSeed, f)
	}

	return &Registry{
		n:         n,
		universeN: universeN,
		graphSeed: graphSeed,
		f:         f,
		sketches:  sketches,
	}
}

func universeSize(n int) uint64 {
	if n < 2 {
		return 0
	}
	nn := uint64(n)

	return nn * (nn - 1) / 2
}

// Len returns the number of vertices this registry was constructed over.
func (reg *Registry) Len() int { return reg.n }

// Sketch returns the live per-vertex sketch for v. Callers must not
// Query it directly — only Sample's disposable clones should ever be
// queried — or the vertex's sketch becomes permanently unsampleable.
func (reg *Registry) Sketch(v uint32) (*sketch.Sketch, error) {
	if int(v) >= reg.n {
		return nil, ErrVertexOutOfRange
	}

	return reg.sketches[v], nil
}

// Apply folds one stream event touching edge {u, v} into both
// endpoints' sketches. Insertions and deletions call this identically:
// XOR is its own inverse, so parity across the whole stream determines
// whether the edge is currently present.
func (reg *Registry) Apply(u, v uint32) error {
	if int(u) >= reg.n || int(v) >= reg.n {
		return ErrVertexOutOfRange
	}
	if u == v {
		return ErrSelfEdge
	}

	e, err := pairing.Nondirectional(u, v)
	if err != nil {
		return err
	}
	if err := reg.sketches[u].Update(e); err != nil {
		return err
	}

	return reg.sketches[v].Update(e)
}

// Sample merges the sketches of every vertex in members into a disposable
// clone, queries it, and decodes the recovered index back into an edge.
// Internal edges among members cancel in the merge (linearity), so a
// successful recovery is guaranteed to be a boundary edge leaving the
// super-node. Errors from the underlying Query (ErrAllZero,
// ErrNoGoodBucket) propagate unchanged; callers treat both as "no edge
// available from this super-node this round."
func (reg *Registry) Sample(members []uint32) (u, v uint32, err error) {
	if len(members) == 0 {
		return 0, 0, ErrEmptySample
	}

	first, err := reg.Sketch(members[0])
	if err != nil {
		return 0, 0, err
	}
	merged := first.Clone()
	for _, m := range members[1:] {
		s, err := reg.Sketch(m)
		if err != nil {
			return 0, 0, err
		}
		if err := merged.Merge(s); err != nil {
			return 0, 0, err
		}
	}

	idx, err := merged.Query()
	if err != nil {
		return 0, 0, err
	}

	a, b := pairing.InvNondirectional(idx)

	return a, b, nil
}
