// SPDX-License-Identifier: MIT
// Package arith collects the textbook arithmetic routines of algokit:
// factorials, exponentiation by squaring, Fibonacci numbers, Newton square
// roots, a linear congruential generator and a handful of control-flow
// warm-ups (summation, exchange, sign classification).
//
// 🚀 What's inside?
//
//   - FactorialIterative / FactorialRecursive / FactorialBig
//   - Power / PowerRecursive / ModPow        — O(log e) squaring
//   - FibonacciNth / FibonacciSequence / FibonacciBig
//   - SqrtNewton / ISqrt                     — Babylonian iteration
//   - PseudoRandom                           — stateless LCG step
//   - CountingSum / SummationFormula / Exchange / Classify
//
// ✨ Contracts:
//
//   - Every function is pure: no globals, no I/O, safe for concurrent use.
//   - Inputs outside the mathematical domain return ErrDomain.
//   - Results that cannot fit in int64 return ErrOverflow; use the *Big
//     variants for arbitrary precision.
//   - Recursive variants are kept on purpose to show both forms. Their call
//     depth is bounded by Options.MaxRecursionDepth (see WithMaxRecursionDepth)
//     and exceeding it returns ErrRecursionDepth instead of growing the stack.
//
// ⚙️ Usage:
//
//	f, err := arith.FactorialIterative(5)             // 120
//	p, err := arith.Power(2, -2)                       // 0.25
//	r, err := arith.FactorialRecursive(15, arith.WithMaxRecursionDepth(64))
//
// Errors are sentinels; branch with errors.Is(err, arith.ErrDomain).
package arith
