package pairing

import "math/bits"

// Nondirectional maps the unordered pair {i, j}, i != j, into a single
// index in [0, maj*(maj-1)/2 + min] using the triangular-number pairing
// function pair(i,j) = min + maj*(maj-1)/2, where min = min(i,j) and
// maj = max(i,j). The function does not depend on argument order:
// Nondirectional(i,j) == Nondirectional(j,i).
//
// For a fixed vertex count n, the range of Nondirectional over all pairs
// 0 <= i < j < n is exactly [0, n(n-1)/2).
func Nondirectional(i, j uint32) (uint64, error) {
	if i == j {
		return 0, ErrSelfEdge
	}
	lo, hi := uint64(i), uint64(j)
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo + hi*(hi-1)/2, nil
}

// InvNondirectional inverts Nondirectional, returning the pair in
// lexicographic order (min, maj) with min < maj.
func InvNondirectional(idx uint64) (uint32, uint32) {
	maj := triangularRoot(idx)
	min := idx - maj*(maj-1)/2

	return uint32(min), uint32(maj)
}

// triangularRoot returns the largest maj such that maj*(maj-1)/2 <= idx.
// It starts from an integer-square-root estimate and corrects by at most
// a couple of steps to land on the exact boundary, avoiding the precision
// loss a naive float64 sqrt would introduce for large idx.
func triangularRoot(idx uint64) uint64 {
	// Solve maj^2 - maj - 2*idx <= 0 for the largest integer maj, i.e.
	// maj ~= (1 + sqrt(1 + 8*idx)) / 2.
	maj := (1 + isqrt(1+8*idx)) / 2
	for maj*(maj-1)/2 > idx {
		maj--
	}
	for (maj+1)*maj/2 <= idx {
		maj++
	}

	return maj
}

// isqrt computes the integer square root floor(sqrt(n)) using Newton's
// method seeded from the bit length of n, which converges in a handful
// of iterations for any uint64 and never overflows.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		y := (x + n/x) / 2
		if y >= x {
			break
		}
		x = y
	}
	// Compare by division, not by squaring, so x near 2^32 cannot overflow.
	for x > n/x {
		x--
	}
	for x+1 <= n/(x+1) {
		x++
	}

	return x
}

// Concat maps an ordered pair of 32-bit vertex ids to a uint64 by bit
// concatenation: (i << 32) | j. Unlike Nondirectional, argument order
// matters: Concat(i,j) != Concat(j,i) in general.
func Concat(i, j uint32) uint64 {
	return uint64(i)<<32 | uint64(j)
}

// InvConcat inverts Concat, splitting the 64-bit value back into its
// ordered (i, j) halves.
func InvConcat(idx uint64) (uint32, uint32) {
	return uint32(idx >> 32), uint32(idx)
}
