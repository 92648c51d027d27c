// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// fibonacci.go — F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2), computed iteratively.

package arith

import "math/big"

const (
	// maxFibonacciInt64 is the largest n with F(n) <= math.MaxInt64.
	maxFibonacciInt64 = 92
	// maxFibonacciTerms is the longest sequence F(0..n-1) that fits in int64.
	maxFibonacciTerms = maxFibonacciInt64 + 1
)

// FibonacciNth returns F(n). n <= 0 yields 0; n > 92 returns ErrOverflow.
// Complexity: O(n) time, O(1) space.
func FibonacciNth(n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	if n > maxFibonacciInt64 {
		return 0, arithErrorf(methodFibonacciNth, ErrOverflow, "n=%d > %d", n, maxFibonacciInt64)
	}

	a, b := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b, nil
}

// FibonacciSequence returns the first n terms F(0), …, F(n-1).
// n <= 0 yields an empty (non-nil) slice; n > 93 returns ErrOverflow.
// Complexity: O(n) time and space.
func FibonacciSequence(n int) ([]int64, error) {
	if n <= 0 {
		return []int64{}, nil
	}
	if n > maxFibonacciTerms {
		return nil, arithErrorf(methodFibonacciSequence, ErrOverflow, "n=%d > %d", n, maxFibonacciTerms)
	}

	fib := make([]int64, n)
	if n > 1 {
		fib[1] = 1
	}
	for i := 2; i < n; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}

	return fib, nil
}

// FibonacciBig returns F(n) with arbitrary precision; n <= 0 yields 0.
func FibonacciBig(n int) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	if n <= 0 {
		return a
	}
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}

	return b
}
