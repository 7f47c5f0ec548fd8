package sketch

import (
	"math"
	"sync"

	"github.com/sketchgraph/boruvka/numeric"
)

// Sketch is a fixed-size GF(2) linear summary of a vector of length N.
// Parameters N, Seed, and F are immutable for the life of the sketch;
// C and R (columns and rows) are derived from them once at construction.
type Sketch struct {
	mu sync.Mutex

	n    uint64
	seed uint64
	f    float64

	c int // columns
	r int // rows

	a     []uint64 // C*R accumulators, column-major: a[col*r + row]
	cHash []uint64 // C*R accumulators, same layout

	queried bool
}

// New allocates a zeroed Sketch over universe size n, keyed by seed, with
// bucket factor f (f > 0). Columns and rows are sized deterministically
// from (n, f) via bucketGen and guessGen.
func New(n, seed uint64, f float64) *Sketch {
	c := bucketGen(n, f)
	r := guessGen(n)

	return &Sketch{
		n:     n,
		seed:  seed,
		f:     f,
		c:     c,
		r:     r,
		a:     make([]uint64, c*r),
		cHash: make([]uint64, c*r),
	}
}

// N returns the sketch's universe size.
func (s *Sketch) N() uint64 { return s.n }

// Seed returns the sketch's hash seed.
func (s *Sketch) Seed() uint64 { return s.seed }

// F returns the sketch's bucket factor.
func (s *Sketch) F() float64 { return s.f }

// Columns returns the number of bucket columns, C.
func (s *Sketch) Columns() int { return s.c }

// Rows returns the number of bucket rows per column, R.
func (s *Sketch) Rows() int { return s.r }

// Queried reports whether Query has already been called on this sketch.
func (s *Sketch) Queried() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queried
}

func (s *Sketch) idx(col, row int) int { return col*s.r + row }

// bucketGen computes C, the number of columns, monotone in log N and
// scaled by the bucket factor f. A larger f trades space for a higher
// probability that at least one column yields a good bucket at recovery.
func bucketGen(n uint64, f float64) int {
	if n < 2 {
		return 1
	}
	raw := f * math.Log2(float64(n))
	c := numeric.DoubleToUint64(raw)
	if c < 1 {
		c = 1
	}

	return int(c)
}

// guessGen computes R, the number of rows per column: approximately
// ceil(log2(N)) + 1, enough geometric levels to isolate a singleton with
// high probability regardless of how many indices collide into a column.
func guessGen(n uint64) int {
	if n < 2 {
		return 1
	}
	r := numeric.DoubleToUint64(math.Log2(float64(n))) + 1

	return int(r)
}
