// SPDX-License-Identifier: MIT
// Package numtheory implements the factoring methods of algokit: greatest
// common divisors, least common multiples, primality by trial division, the
// sieve of Eratosthenes, smallest divisors and prime factorization.
//
// All functions are pure and operate on int64 (int for the sieve bound).
// GCD and GCDRecursive are the two textbook forms of Euclid's algorithm; the
// recursive one is bounded by Options.MaxRecursionDepth so that the
// recursion is a visible configuration choice rather than a silent risk.
//
//	numtheory.GCD(48, 18)        // 6
//	numtheory.Sieve(30)          // [2 3 5 7 11 13 17 19 23 29]
//	numtheory.PrimeFactors(60)   // [2 2 3 5]
package numtheory
