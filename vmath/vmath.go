package vmath

// Clamp restricts v to [lo, hi]
// hi below lo collapses the range to lo
func Clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use; the game loop owns one instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [lo, hi], both ends inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// FloatRange returns a value in [lo, hi)
func (r *FastRand) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// ClampFloat restricts v to [lo, hi]
// NaN and +Inf resolve to hi, -Inf to lo
func ClampFloat(v, lo, hi float64) float64 {
	if !(v <= hi) {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
