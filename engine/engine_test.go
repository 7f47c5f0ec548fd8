package engine_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sketchgraph/boruvka/config"
	"github.com/sketchgraph/boruvka/engine"
	"github.com/sketchgraph/boruvka/ingest"
)

func TestEngine_ApplyAndConnectivity(t *testing.T) {
	e, err := engine.New(5, 1, 4.0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	ctx := context.Background()
	edges := [][2]uint32{{0, 1}, {1, 2}, {3, 4}}
	for _, ed := range edges {
		if err := e.Apply(ctx, ingest.Event{U: ed[0], V: ed[1], Op: ingest.OpInsert}); err != nil {
			t.Fatalf("Apply(%d,%d): %v", ed[0], ed[1], err)
		}
	}

	drv, err := e.Connectivity(ctx)
	if err != nil {
		t.Fatalf("Connectivity: %v", err)
	}
	if len(drv.ConnectedComponents()) != 2 {
		t.Fatalf("expected 2 components ({0,1,2} and {3,4}), got %d", len(drv.ConnectedComponents()))
	}
}

func TestEngine_SnapshotWithGutterTree(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(
		config.WithGutterTree(true),
		config.WithDiskDir(filepath.Join(dir, "boruvka.db")),
	)
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}

	e, err := engine.New(3, 1, 4.0, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	if err := e.Apply(context.Background(), ingest.Event{U: 0, V: 1, Op: ingest.OpInsert}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := e.Snapshot(); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
}

func TestEngine_SnapshotWithoutGutterTreeIsNoop(t *testing.T) {
	e, err := engine.New(3, 1, 4.0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	if err := e.Snapshot(); err != nil {
		t.Fatalf("Snapshot should be a no-op without a gutter tree, got %v", err)
	}
}
