package boruvka

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sketchgraph/boruvka/sketch"
)

// Run executes Borůvka rounds until a round produces no new unions, or
// ctx is canceled between rounds. It never fails because of sampling
// misses — ErrAllZero and ErrNoGoodBucket both mean "no edge available
// from this component this round" and are swallowed — but a programmer
// error surfacing from the registry (e.g. a parameter mismatch) aborts
// the run and is returned.
func (drv *Driver) Run(ctx context.Context) error {
	for round := 0; ; round++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		progressed, err := drv.runRound(ctx)
		if err != nil {
			return err
		}
		drv.logger.Debug("boruvka round complete",
			zap.Int("round", round),
			zap.Int("components", len(drv.d.Roots())),
			zap.Bool("progressed", progressed),
		)
		if !progressed {
			return nil
		}
	}
}

// runRound samples every current component once, in parallel, and unions
// every successfully recovered edge. It reports whether any union
// occurred.
func (drv *Driver) runRound(ctx context.Context) (bool, error) {
	comps := drv.d.Components()
	roots := make([]uint32, 0, len(comps))
	for r := range comps {
		roots = append(roots, r)
	}

	type sample struct {
		u, v uint32
		ok   bool
	}
	results := make([]sample, len(roots))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range roots {
		i, members := i, comps[r]
		g.Go(func() error {
			u, v, err := drv.reg.Sample(members)
			if err != nil {
				if errors.Is(err, sketch.ErrAllZero) || errors.Is(err, sketch.ErrNoGoodBucket) {
					return nil
				}

				return err
			}
			results[i] = sample{u: u, v: v, ok: true}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	progressed := false
	for _, s := range results {
		if !s.ok {
			continue
		}
		if drv.d.Union(s.u, s.v) {
			progressed = true
			drv.mu.Lock()
			drv.forest = append(drv.forest, Edge{U: s.u, V: s.v})
			drv.mu.Unlock()
		}
	}

	return progressed, nil
}

// ConnectedComponents returns the current equivalence classes of the
// driver's disjoint-set-union, one slice of member vertex ids per
// component.
func (drv *Driver) ConnectedComponents() [][]uint32 {
	comps := drv.d.Components()
	out := make([][]uint32, 0, len(comps))
	for _, members := range comps {
		out = append(out, members)
	}

	return out
}

// SpanningForest returns the edges the driver accumulated across all
// rounds.
func (drv *Driver) SpanningForest() []Edge {
	drv.mu.Lock()
	defer drv.mu.Unlock()

	return append([]Edge(nil), drv.forest...)
}

// IsConnected reports whether a and b are currently in the same
// component.
func (drv *Driver) IsConnected(a, b uint32) bool {
	return drv.d.Find(a) == drv.d.Find(b)
}
