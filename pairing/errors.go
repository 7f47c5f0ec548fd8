package pairing

import "errors"

var (
	// ErrSelfEdge indicates Nondirectional was called with i == j; the
	// non-self-edge pairing function is undefined on the diagonal.
	ErrSelfEdge = errors.New("pairing: nondirectional pairing undefined for i == j")
)
