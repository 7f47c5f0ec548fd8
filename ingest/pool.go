package ingest

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sketchgraph/boruvka/registry"
)

const numStripes = 256

// Pool applies a stream of Events to a registry.Registry across a
// bounded pool of workers. Events whose vertices fall in the same
// stripe are serialized against each other; events in different
// stripes run concurrently.
type Pool struct {
	reg     *registry.Registry
	logger  *zap.Logger
	workers int

	stripes [numStripes]sync.Mutex

	mu     sync.Mutex
	closed bool
	queue  chan Event
	g      *errgroup.Group
}

// New constructs a Pool over reg with the given worker count. A
// non-positive workers defaults to 1. A nil logger defaults to a
// no-op logger.
func New(reg *registry.Registry, workers int, logger *zap.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pool{
		reg:     reg,
		logger:  logger,
		workers: workers,
		queue:   make(chan Event, workers*4),
	}
}

// Run starts the worker pool, consuming events from in until it closes
// or ctx is canceled. Run blocks until all workers exit, returning the
// first error any worker encountered (context cancellation included).
func (p *Pool) Run(ctx context.Context, in <-chan Event) error {
	g, gctx := errgroup.WithContext(ctx)
	p.mu.Lock()
	p.g = g
	p.mu.Unlock()

	for i := 0; i < p.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case ev, ok := <-in:
					if !ok {
						return nil
					}
					if err := p.apply(ev); err != nil {
						return err
					}
				}
			}
		})
	}

	return g.Wait()
}

// Submit applies a single event synchronously against the stripe lock
// for its endpoints. It is safe to call concurrently with Run and with
// other Submit calls.
func (p *Pool) Submit(ctx context.Context, ev Event) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return p.apply(ev)
}

// Quiesce marks the pool closed to further Submit calls and waits for
// any in-flight Run to finish draining its input channel.
func (p *Pool) Quiesce() error {
	p.mu.Lock()
	p.closed = true
	g := p.g
	p.mu.Unlock()

	if g == nil {
		return nil
	}

	return g.Wait()
}

func (p *Pool) apply(ev Event) error {
	lo, hi := stripeFor(ev.U), stripeFor(ev.V)
	if lo > hi {
		lo, hi = hi, lo
	}
	p.stripes[lo].Lock()
	if hi != lo {
		p.stripes[hi].Lock()
	}
	defer p.stripes[lo].Unlock()
	if hi != lo {
		defer p.stripes[hi].Unlock()
	}

	if err := p.reg.Apply(ev.U, ev.V); err != nil {
		p.logger.Debug("ingest: apply failed",
			zap.Uint32("u", ev.U),
			zap.Uint32("v", ev.V),
			zap.String("op", ev.Op.String()),
			zap.Error(err),
		)

		return err
	}

	return nil
}

func stripeFor(v uint32) int {
	return int(v % numStripes)
}
