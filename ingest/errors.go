package ingest

import "errors"

// ErrClosed is returned by Submit after Quiesce has been called.
var ErrClosed = errors.New("ingest: pool is closed")

// ErrQueueFull names a full event queue. Submit applies each event
// synchronously and never returns it.
var ErrQueueFull = errors.New("ingest: event queue is full")
