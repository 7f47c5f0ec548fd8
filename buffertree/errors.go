package buffertree

import "errors"

// ErrNotFound names the missing-snapshot condition. Get does not return
// it: Get reports a vertex with no stored snapshot as ok == false with a
// nil error.
var ErrNotFound = errors.New("buffertree: snapshot not found")

// ErrClosed is returned by any operation attempted after Close.
var ErrClosed = errors.New("buffertree: store is closed")
