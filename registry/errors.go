package registry

import "errors"

var (
	// ErrVertexOutOfRange indicates Apply or Sample referenced a vertex id
	// not in [0, n).
	ErrVertexOutOfRange = errors.New("registry: vertex id out of range")

	// ErrEmptySample indicates Sample was called with no members.
	ErrEmptySample = errors.New("registry: sample requires at least one member")

	// ErrSelfEdge indicates Apply was called with u == v; self-loops do
	// not exist in this graph model.
	ErrSelfEdge = errors.New("registry: apply requires u != v")
)
