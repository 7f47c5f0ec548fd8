package sketch

import "errors"

var (
	// ErrIndexOutOfRange indicates Update was called with i not in [0, N).
	ErrIndexOutOfRange = errors.New("sketch: index out of range")

	// ErrParamMismatch indicates Merge was attempted between sketches with
	// differing N, Seed, or F. This is a programmer error: two sketches
	// can only be linearly combined if they were built over the same
	// universe with the same hash seed and bucket factor.
	ErrParamMismatch = errors.New("sketch: merge requires identical N, seed, and f")

	// ErrRepeatedQuery indicates a second Query call on a Sketch that has
	// already been queried once. Programmer error: treat as fatal.
	ErrRepeatedQuery = errors.New("sketch: query already performed on this sketch")

	// ErrAllZero indicates every accumulator in the sketch is the zero
	// pair: the summarized vector has no surviving nonzero coordinate.
	ErrAllZero = errors.New("sketch: all buckets zero, no nonzero coordinate to recover")

	// ErrNoGoodBucket indicates recovery failed this round: some bucket
	// holds nonzero state, but none satisfies the good-bucket predicate.
	// Callers should treat this the same as ErrAllZero — "no edge
	// available this round" — rather than as a fatal condition.
	ErrNoGoodBucket = errors.New("sketch: no good bucket found")
)
