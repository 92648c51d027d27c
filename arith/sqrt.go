// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// sqrt.go — Newton (Babylonian) square roots, floating and integer.

package arith

import "math"

// DefaultSqrtPrecision is the stopping tolerance used by the course examples.
const DefaultSqrtPrecision = 1e-4

// SqrtNewton approximates √x by x_{k+1} = (x_k + x/x_k)/2 starting at x_0 = x,
// stopping once |x_{k+1} - x_k| < precision.
//
// Contract:
//   - x < 0, NaN or +Inf → ErrDomain.
//   - precision <= 0 or NaN → ErrDomain (the loop could never stop).
//   - x == 0 → 0.
//
// After the first step the iterates decrease monotonically; if rounding stops
// that progress before the tolerance is met (large x, tiny precision) the
// current iterate is already the closest float and is returned.
func SqrtNewton(x, precision float64) (float64, error) {
	if math.IsNaN(x) || x < 0 || math.IsInf(x, 1) {
		return 0, arithErrorf(methodSqrtNewton, ErrDomain, "x=%v", x)
	}
	if math.IsNaN(precision) || precision <= 0 {
		return 0, arithErrorf(methodSqrtNewton, ErrDomain, "precision=%v", precision)
	}
	if x == 0 {
		return 0, nil
	}

	guess := x
	for step := 0; ; step++ {
		next := (guess + x/guess) / 2
		if math.Abs(next-guess) < precision {
			return next, nil
		}
		if step > 0 && next >= guess {
			return guess, nil
		}
		guess = next
	}
}

// ISqrt returns ⌊√n⌋ using integer Newton iteration. ErrDomain for n < 0.
// Complexity: O(log n) iterations.
func ISqrt(n int64) (int64, error) {
	if n < 0 {
		return 0, arithErrorf(methodISqrt, ErrDomain, "n=%d", n)
	}
	if n < 2 {
		return n, nil
	}

	// uint64 keeps x+1 from overflowing at math.MaxInt64.
	un := uint64(n)
	x := un
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + un/x) / 2
	}

	return int64(x), nil
}
