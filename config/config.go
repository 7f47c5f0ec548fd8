package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how an Engine persists sketch state outside of
// process memory.
type Config struct {
	// UseGutterTree enables the bbolt-backed buffer tree (package
	// buffertree) as the system of record for per-vertex sketch
	// snapshots. When false, sketches live only in the in-process
	// registry and are lost on restart.
	UseGutterTree bool `yaml:"use_gutter_tree"`

	// InMemoryBackups is loaded from YAML and settable by option, but no
	// package in this module reads it: no in-memory copy of snapshots is
	// kept whatever its value.
	InMemoryBackups bool `yaml:"in_memory_backups"`

	// DiskDir is the path the buffer tree's bbolt database file is opened
	// at; it names the database file itself, not a directory holding it.
	// Required when UseGutterTree is true.
	DiskDir string `yaml:"disk_dir"`
}

// Option mutates a Config at construction time. Options are applied in
// order after a config's defaults (or its loaded YAML values) are set,
// so later options win.
type Option func(*Config)

// WithGutterTree toggles the disk-backed buffer tree.
func WithGutterTree(enabled bool) Option {
	return func(c *Config) {
		c.UseGutterTree = enabled
	}
}

// WithInMemoryBackups sets the InMemoryBackups field, which no package
// in this module acts on.
func WithInMemoryBackups(enabled bool) Option {
	return func(c *Config) {
		c.InMemoryBackups = enabled
	}
}

// WithDiskDir overrides the buffer tree's database file path. An empty
// dir is a no-op, leaving whatever was previously set.
func WithDiskDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.DiskDir = dir
		}
	}
}

// Default returns a Config with the conservative defaults: no gutter
// tree, no in-memory backups, no disk directory.
func Default() *Config {
	return &Config{}
}

// New returns Default() with opts applied in order.
func New(opts ...Option) (*Config, error) {
	cfg := Default()
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg, cfg.Validate()
}

// Load reads a YAML document from path and applies opts on top of it.
func Load(path string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(data, opts...)
}

// Parse decodes a YAML document and applies opts on top of it.
func Parse(data []byte, opts ...Option) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg, cfg.Validate()
}

// Validate reports whether the config is internally consistent.
func (c *Config) Validate() error {
	if c.UseGutterTree && c.DiskDir == "" {
		return ErrDiskDirRequired
	}

	return nil
}
