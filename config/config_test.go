package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sketchgraph/boruvka/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	if c.UseGutterTree || c.InMemoryBackups || c.DiskDir != "" {
		t.Fatalf("expected zero-value defaults, got %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestNew_WithOptions(t *testing.T) {
	c, err := config.New(
		config.WithGutterTree(true),
		config.WithDiskDir("/tmp/snapshots"),
		config.WithInMemoryBackups(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.UseGutterTree || !c.InMemoryBackups || c.DiskDir != "/tmp/snapshots" {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestNew_MissingDiskDir(t *testing.T) {
	_, err := config.New(config.WithGutterTree(true))
	if err != config.ErrDiskDirRequired {
		t.Fatalf("expected ErrDiskDirRequired, got %v", err)
	}
}

func TestWithDiskDir_EmptyIsNoop(t *testing.T) {
	c, err := config.New(
		config.WithDiskDir("/tmp/first"),
		config.WithDiskDir(""),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.DiskDir != "/tmp/first" {
		t.Fatalf("expected empty WithDiskDir to be a no-op, got %q", c.DiskDir)
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
use_gutter_tree: true
in_memory_backups: false
disk_dir: /var/lib/boruvka
`)
	c, err := config.Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !c.UseGutterTree || c.InMemoryBackups || c.DiskDir != "/var/lib/boruvka" {
		t.Fatalf("unexpected parsed config: %+v", c)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := config.Parse([]byte("use_gutter_tree: [this is not a bool"))
	if err == nil {
		t.Fatalf("expected an error for malformed yaml")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "use_gutter_tree: false\n")

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UseGutterTree {
		t.Fatalf("expected UseGutterTree false, got true")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
