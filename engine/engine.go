package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sketchgraph/boruvka/boruvka"
	"github.com/sketchgraph/boruvka/buffertree"
	"github.com/sketchgraph/boruvka/config"
	"github.com/sketchgraph/boruvka/ingest"
	"github.com/sketchgraph/boruvka/registry"
)

// New constructs an Engine over n vertices, seeded for its linear
// sketches with graphSeed and bucket factor f. cfg is optional; a nil
// cfg behaves like config.Default() (no disk persistence).
func New(n int, graphSeed uint64, f float64, cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	e := &Engine{
		n:       n,
		reg:     registry.New(n, graphSeed, f),
		logger:  zap.NewNop(),
		cfg:     cfg,
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}

	if cfg.UseGutterTree {
		store, err := buffertree.Open(cfg.DiskDir)
		if err != nil {
			return nil, fmt.Errorf("engine: opening buffer tree: %w", err)
		}
		e.store = store
	}

	e.pool = ingest.New(e.reg, e.workers, e.logger)

	return e, nil
}

// Len returns the number of vertices this engine was constructed over.
func (e *Engine) Len() int { return e.n }

// Apply folds one edge event into the engine's sketches, blocking
// until the update is applied.
func (e *Engine) Apply(ctx context.Context, ev ingest.Event) error {
	return e.pool.Submit(ctx, ev)
}

// Run drains events from the stream until it closes or ctx is
// canceled, applying each one concurrently across the ingest pool.
func (e *Engine) Run(ctx context.Context, events <-chan ingest.Event) error {
	return e.pool.Run(ctx, events)
}

// Snapshot persists every vertex's current sketch to the configured
// buffer tree. It is a no-op (returns nil) when no gutter tree was
// configured.
func (e *Engine) Snapshot() error {
	if e.store == nil {
		return nil
	}
	for v := 0; v < e.n; v++ {
		s, err := e.reg.Sketch(uint32(v))
		if err != nil {
			return err
		}
		data, err := s.MarshalBinary()
		if err != nil {
			return fmt.Errorf("engine: marshaling vertex %d: %w", v, err)
		}
		if err := e.store.Put(uint32(v), data); err != nil {
			return fmt.Errorf("engine: storing vertex %d: %w", v, err)
		}
	}

	return nil
}

// Connectivity runs a fresh Borůvka driver over the engine's current
// sketch state and returns it once the connected-components fixpoint
// is reached. Sampling a registry's per-vertex sketches never consumes
// them (only disposable per-round clones are queried), so Connectivity
// may be called repeatedly as the stream evolves.
func (e *Engine) Connectivity(ctx context.Context) (*boruvka.Driver, error) {
	drv := boruvka.New(e.reg, e.logger)
	if err := drv.Run(ctx); err != nil {
		return nil, err
	}

	return drv, nil
}

// Close releases any resources the engine holds open, such as a
// buffer-tree file handle.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}

	return e.store.Close()
}
