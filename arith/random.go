// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// random.go — one step of a linear congruential generator.

package arith

// LCG constants, a classic small-modulus triple from published generator tables.
const (
	LCGMultiplier = 9301
	LCGIncrement  = 49297
	LCGModulus    = 233280
)

// PseudoRandom maps seed to (a·seed + c) mod m / m in [0, 1).
// The modulus is floored, so negative seeds land in [0, 1) too. No state is
// kept: the same seed always yields the same value. To draw a stream feed
// a scaled result back in as the next seed.
func PseudoRandom(seed int64) float64 {
	// Reducing the seed first keeps a·seed inside int64.
	s := seed % LCGModulus
	if s < 0 {
		s += LCGModulus
	}
	v := (LCGMultiplier*s + LCGIncrement) % LCGModulus

	return float64(v) / LCGModulus
}
