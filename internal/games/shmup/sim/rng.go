package sim

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG and draws from the high bits.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// In returns a uniform integer from the half-open range.
// An empty range yields its Min.
func (r *RNG) In(rg Range) int {
	if rg.Empty() {
		return rg.Min
	}
	return rg.Min + r.Intn(rg.Max-rg.Min)
}

// State returns the internal state for snapshot hashing.
func (r *RNG) State() uint64 {
	return r.state
}
