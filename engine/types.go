package engine

import (
	"go.uber.org/zap"

	"github.com/sketchgraph/boruvka/buffertree"
	"github.com/sketchgraph/boruvka/config"
	"github.com/sketchgraph/boruvka/ingest"
	"github.com/sketchgraph/boruvka/registry"
)

// Engine is the top-level handle on a dynamic graph's approximate
// connectivity state: a fixed vertex set, a registry of per-vertex
// sketches, an ingest pool applying the update stream, and (when
// configured) a disk-backed store that Snapshot writes per-vertex
// sketches to. New does not load earlier snapshots from that store.
type Engine struct {
	n       int
	reg     *registry.Registry
	pool    *ingest.Pool
	store   *buffertree.Store
	logger  *zap.Logger
	cfg     *config.Config
	workers int
}

// Option customizes Engine construction.
type Option func(*Engine)

// WithLogger attaches a structured logger; nil is treated as a no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWorkers sets the ingest pool's worker count.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		if workers > 0 {
			e.workers = workers
		}
	}
}
