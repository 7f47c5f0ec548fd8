package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sketchgraph/boruvka/config"
	"github.com/sketchgraph/boruvka/engine"
	"github.com/sketchgraph/boruvka/ingest"
)

// streamCommand replays an edge-update stream read from --file against
// an engine of --n vertices and reports the resulting connectivity.
// The stream format is one event per line: "+ u v" for an insertion,
// "- u v" for a deletion; blank lines and lines starting with "#" are
// ignored.
func streamCommand() *cli.Command {
	return &cli.Command{
		Name:  "stream",
		Usage: "replay an edge-update stream from a file and print its components",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Required: true, Usage: "number of vertices"},
			&cli.StringFlag{Name: "file", Required: true, Usage: "path to the event stream"},
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "sketch hash seed"},
			&cli.Float64Flag{Name: "f", Value: 4.0, Usage: "bucket factor f"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Default()
			if path := c.String("config"); path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				cfg = loaded
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("constructing logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			eng, err := engine.New(c.Int("n"), c.Uint64("seed"), c.Float64("f"), cfg, engine.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("constructing engine: %w", err)
			}
			defer func() { _ = eng.Close() }()

			f, err := os.Open(c.String("file"))
			if err != nil {
				return fmt.Errorf("opening stream file: %w", err)
			}
			defer f.Close()

			ctx := context.Background()
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				ev, ok, err := parseEvent(scanner.Text())
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				if err := eng.Apply(ctx, ev); err != nil {
					return fmt.Errorf("applying event %+v: %w", ev, err)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading stream file: %w", err)
			}

			if err := eng.Snapshot(); err != nil {
				return fmt.Errorf("snapshotting sketches: %w", err)
			}

			drv, err := eng.Connectivity(ctx)
			if err != nil {
				return fmt.Errorf("computing connectivity: %w", err)
			}

			comps := drv.ConnectedComponents()
			fmt.Printf("vertices=%d components=%d\n", c.Int("n"), len(comps))

			return nil
		},
	}
}

// parseEvent parses a single stream line. It returns ok=false for
// blank or comment lines.
func parseEvent(line string) (ingest.Event, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ingest.Event{}, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) != 3 {
		return ingest.Event{}, false, fmt.Errorf("malformed stream line %q: expected \"+|- u v\"", line)
	}

	var op ingest.Op
	switch fields[0] {
	case "+":
		op = ingest.OpInsert
	case "-":
		op = ingest.OpDelete
	default:
		return ingest.Event{}, false, fmt.Errorf("malformed stream line %q: unknown op %q", line, fields[0])
	}

	u, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return ingest.Event{}, false, fmt.Errorf("malformed stream line %q: %w", line, err)
	}
	v, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return ingest.Event{}, false, fmt.Errorf("malformed stream line %q: %w", line, err)
	}

	return ingest.Event{U: uint32(u), V: uint32(v), Op: op}, true, nil
}
