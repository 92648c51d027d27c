// Package algokit is a small playground of textbook algorithms: the
// arithmetic, factoring and array techniques of an introductory problem
// solving course, written as pure, generic Go.
//
// 🚀 What's inside?
//
//   - Arithmetic: factorial (loop, recursion, big), exponentiation by
//     squaring, modular power, Fibonacci, Newton square roots, an LCG step.
//   - Number theory: Euclid's GCD, LCM, primality, sieve of Eratosthenes,
//     prime factorization, smallest divisor.
//   - Radix: base 2..36 conversion and code-point helpers.
//   - Sequences: min/max, k-th order statistics, dedup, three-way partition,
//     reversal, counting.
//   - Efficiency: a sortedness check that reports how many comparisons it made.
//
// ✨ Why algokit?
//
//   - Pure functions only – no globals, no I/O, safe for concurrent callers
//   - Fail fast – sentinel errors (errors.Is) for every invalid input
//   - Both forms shown – recursive variants next to iterative ones, with the
//     recursion depth bound exposed as an option
//
// Subpackages:
//
//	arith/      — factorial, power, fibonacci, sqrt, LCG, sums
//	numtheory/  — gcd, lcm, primes, sieve, factors
//	radix/      — base conversion, character codes
//	seqs/       — array techniques over generic slices
//	efficiency/ — instrumented sortedness check
//
//	go get github.com/katalvlaran/algokit
package algokit
