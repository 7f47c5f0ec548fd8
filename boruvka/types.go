package boruvka

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sketchgraph/boruvka/dsu"
	"github.com/sketchgraph/boruvka/registry"
)

// Edge is a spanning-forest edge recorded by the driver.
type Edge struct {
	U, V uint32
}

// Driver runs the Borůvka loop over a registry's sketches and a
// disjoint-set-union. A Driver is single-use: construct one, call Run
// once, then read its results. It is not safe to call Run concurrently
// from multiple goroutines, though Run internally parallelizes the
// per-component sampling within each round.
type Driver struct {
	reg    *registry.Registry
	d      *dsu.DSU
	n      int
	logger *zap.Logger

	mu     sync.Mutex
	forest []Edge
}

// New constructs a Driver over reg's n vertices, each initially its own
// component. A nil logger defaults to a no-op logger.
func New(reg *registry.Registry, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := reg.Len()

	return &Driver{
		reg:    reg,
		d:      dsu.New(n),
		n:      n,
		logger: logger,
	}
}
