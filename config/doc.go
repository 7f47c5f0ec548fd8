// Package config loads the on-disk settings that control how an Engine
// persists per-vertex sketch state between ingest batches: whether it
// keeps a disk-backed gutter tree at all, whether recovery backups stay
// in memory, and where on disk the buffer tree lives.
//
// Settings load from YAML via gopkg.in/yaml.v3 and can be overridden
// programmatically with functional options, mirroring the option
// pattern the rest of this module uses for construction-time
// configuration.
package config
