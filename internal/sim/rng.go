// Package sim implements the slipway simulation core: the procedural
// ribbon track, gate sequencing, and the player physics integrator.
// It is pure and deterministic, with no wall clock and no global
// state, so the whole game can be driven headless in tests.
package sim

// RNG is a deterministic pseudo-random number generator (xorshift32).
// The same 32-bit seed always yields the same stream, which makes a
// generated track fully reproducible from its seed.
type RNG struct {
	state uint32
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint32) *RNG {
	if seed == 0 {
		seed = 2463534242 // Default seed, zero would lock the stream
	}
	return &RNG{state: seed}
}

// Next returns the next random uint32.
func (r *RNG) Next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()) / (1 << 32)
}

// Range returns a random float64 in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + r.Float()*(max-min)
}

// Sign returns -1.0 or +1.0 with equal probability.
func (r *RNG) Sign() float64 {
	if r.Next()&1 == 0 {
		return -1.0
	}
	return 1.0
}
