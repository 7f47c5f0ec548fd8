package config

import "errors"

// ErrDiskDirRequired is returned when UseGutterTree is true but DiskDir
// is empty: a disk-backed buffer tree has nowhere to live.
var ErrDiskDirRequired = errors.New("config: disk_dir is required when use_gutter_tree is true")

// ErrInvalidYAML is returned when the input cannot be parsed as the
// expected document shape.
var ErrInvalidYAML = errors.New("config: invalid yaml document")
