// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// factorial.go — n! in three flavours: loop, recursion, arbitrary precision.

package arith

import "math/big"

// maxFactorialInt64 is the largest n with n! <= math.MaxInt64 (20! ≈ 2.43e18).
const maxFactorialInt64 = 20

// FactorialIterative returns n! = 1·2·…·n computed with a loop.
//
// Contract:
//   - n < 0  → ErrDomain.
//   - n ∈ {0, 1} → 1.
//   - n > 20 → ErrOverflow (use FactorialBig).
//
// Complexity: O(n) time, O(1) space.
func FactorialIterative(n int) (int64, error) {
	if n < 0 {
		return 0, arithErrorf(methodFactorialIterative, ErrDomain, "n=%d", n)
	}
	if n > maxFactorialInt64 {
		return 0, arithErrorf(methodFactorialIterative, ErrOverflow, "n=%d > %d", n, maxFactorialInt64)
	}
	if n == 0 || n == 1 {
		return 1, nil
	}

	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}

	return result, nil
}

// FactorialRecursive returns the same values as FactorialIterative using
// n! = n·(n-1)!. The call chain is n frames deep, so the configured
// MaxRecursionDepth must be at least n; otherwise ErrRecursionDepth is
// returned before the stack grows past the bound.
//
// Complexity: O(n) time, O(n) stack.
func FactorialRecursive(n int, opts ...Option) (int64, error) {
	if n < 0 {
		return 0, arithErrorf(methodFactorialRecursive, ErrDomain, "n=%d", n)
	}
	if n > maxFactorialInt64 {
		return 0, arithErrorf(methodFactorialRecursive, ErrOverflow, "n=%d > %d", n, maxFactorialInt64)
	}
	cfg := newOptions(opts...)

	return factorialRec(int64(n), 1, cfg.MaxRecursionDepth)
}

func factorialRec(n int64, depth, limit int) (int64, error) {
	if depth > limit {
		return 0, arithErrorf(methodFactorialRecursive, ErrRecursionDepth, "depth %d > %d", depth, limit)
	}
	if n <= 1 {
		return 1, nil
	}
	rest, err := factorialRec(n-1, depth+1, limit)
	if err != nil {
		return 0, err
	}

	return n * rest, nil
}

// FactorialBig returns n! with arbitrary precision. ErrDomain for n < 0.
// Complexity: O(n) big multiplications.
func FactorialBig(n int) (*big.Int, error) {
	if n < 0 {
		return nil, arithErrorf(methodFactorialBig, ErrDomain, "n=%d", n)
	}
	if n < 2 {
		return big.NewInt(1), nil
	}

	// MulRange(1, n) multiplies by binary splitting.
	return new(big.Int).MulRange(1, int64(n)), nil
}
