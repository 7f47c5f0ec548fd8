package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sketchgraph/boruvka/engine"
	"github.com/sketchgraph/boruvka/ingest"
)

// divisorCommand builds the divisor graph on {0,...,n-1} — an edge
// between i and k*i for every k >= 2 with k*i < n — and reports its
// connected components. Divisor graphs make a convenient correctness
// demo: component structure is known in closed form ({0}, {1}, one
// singleton for every prime p with 2p >= n, and every other vertex from
// 2 up joined into 2's component).
func divisorCommand() *cli.Command {
	return &cli.Command{
		Name:  "divisor",
		Usage: "build the divisor graph on n vertices and print its components",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Value: 1000, Usage: "number of vertices"},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "sketch hash seed"},
			&cli.Float64Flag{Name: "f", Value: 4.0, Usage: "bucket factor f"},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("n")
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("constructing logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			eng, err := engine.New(n, c.Uint64("seed"), c.Float64("f"), nil, engine.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("constructing engine: %w", err)
			}
			defer func() { _ = eng.Close() }()

			ctx := context.Background()
			for i := 2; i < n; i++ {
				for k := 2; i*k < n; k++ {
					ev := ingest.Event{U: uint32(i), V: uint32(i * k), Op: ingest.OpInsert}
					if err := eng.Apply(ctx, ev); err != nil {
						return fmt.Errorf("applying edge (%d,%d): %w", i, i*k, err)
					}
				}
			}

			drv, err := eng.Connectivity(ctx)
			if err != nil {
				return fmt.Errorf("computing connectivity: %w", err)
			}

			comps := drv.ConnectedComponents()
			fmt.Printf("vertices=%d components=%d\n", n, len(comps))
			for _, comp := range comps {
				if len(comp) <= 8 {
					fmt.Printf("  size=%d members=%v\n", len(comp), comp)
				} else {
					fmt.Printf("  size=%d\n", len(comp))
				}
			}

			return nil
		},
	}
}
