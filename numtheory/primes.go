// SPDX-License-Identifier: MIT
// Package: algokit/numtheory
//
// primes.go — trial division, smallest divisor, sieve, factorization.

package numtheory

import "github.com/katalvlaran/algokit/arith"

// IsPrime reports whether n is prime.
//
// Steps:
//  1. n < 2 → false; n == 2 → true; even n → false.
//  2. Trial-divide by odd candidates 3, 5, … up to ⌊√n⌋ (arith.ISqrt).
//
// Complexity: O(√n) time, O(1) space.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := floorSqrt(n)
	for i := int64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// SmallestDivisor returns the smallest divisor of n greater than 1, which is
// n itself when n is prime. For n < 2 it returns n unchanged.
// Complexity: O(√n).
func SmallestDivisor(n int64) int64 {
	if n < 2 {
		return n
	}
	if n%2 == 0 {
		return 2
	}

	limit := floorSqrt(n)
	for i := int64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return i
		}
	}

	return n
}

// Sieve returns all primes <= n in ascending order using the sieve of
// Eratosthenes. n < 2 yields an empty (non-nil) slice.
//
// Each prime p strikes p², p²+p, … so the total work is Σ n/p over primes
// p <= √n, i.e. O(n log log n) time and O(n) space.
func Sieve(n int) []int {
	if n < 2 {
		return []int{}
	}

	composite := make([]bool, n+1)
	for p := 2; p*p <= n; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}

	primes := make([]int, 0, primeCountHint(n))
	for i := 2; i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}

	return primes
}

// PrimeFactors returns the prime factorization of n in non-decreasing order
// with multiplicity (60 → [2 2 3 5]). n < 2 yields an empty (non-nil) slice.
// Complexity: O(√n) time.
func PrimeFactors(n int64) []int64 {
	factors := []int64{}
	if n < 2 {
		return factors
	}

	// d <= n/d is d*d <= n without overflowing near math.MaxInt64.
	for d := int64(2); d <= n/d; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// floorSqrt is arith.ISqrt for n >= 0, where it cannot fail.
func floorSqrt(n int64) int64 {
	r, _ := arith.ISqrt(n)

	return r
}

// primeCountHint is a loose upper bound on π(n) used to presize the result.
func primeCountHint(n int) int {
	if n < 17 {
		return 6
	}
	// Roughly 2n/log2(n); append still grows the slice if this falls short.
	lg := 0
	for v := n; v > 1; v >>= 1 {
		lg++
	}

	return 2 * n / lg
}
