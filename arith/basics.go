// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// basics.go — control-flow warm-ups: summation two ways, exchange, sign.

package arith

// CountingSum returns 1 + 2 + … + n by iteration; 0 for n <= 0.
// Complexity: O(n).
func CountingSum(n int) int64 {
	var total int64
	for i := 1; i <= n; i++ {
		total += int64(i)
	}

	return total
}

// SummationFormula returns n(n+1)/2; 0 for n <= 0 so it agrees with CountingSum.
// Complexity: O(1).
func SummationFormula(n int) int64 {
	if n <= 0 {
		return 0
	}
	m := int64(n)

	return m * (m + 1) / 2
}

// Exchange returns its arguments swapped.
func Exchange[T any](a, b T) (T, T) {
	return b, a
}

// Classify reports whether x is negative, zero or positive.
func Classify(x int) Sign {
	switch {
	case x > 0:
		return Positive
	case x < 0:
		return Negative
	default:
		return Zero
	}
}
