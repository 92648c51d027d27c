// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// errors.go — sentinel errors for the arith package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w through arithErrorf, never by formatting
//     the sentinel itself.
//   • Algorithms do not panic on user input. Option constructors may panic.

package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an input outside the mathematically valid domain:
	// negative factorial argument, negative (or NaN/Inf) square-root argument,
	// non-positive precision, zero base with a negative exponent, non-positive
	// modulus.
	ErrDomain = errors.New("arith: input outside function domain")

	// ErrOverflow indicates that the exact result does not fit in int64.
	ErrOverflow = errors.New("arith: result overflows int64")

	// ErrRecursionDepth indicates that a recursive variant would exceed the
	// configured Options.MaxRecursionDepth.
	ErrRecursionDepth = errors.New("arith: recursion depth limit exceeded")
)

// Method names used as context prefixes in wrapped errors.
const (
	methodFactorialIterative = "FactorialIterative"
	methodFactorialRecursive = "FactorialRecursive"
	methodFactorialBig       = "FactorialBig"
	methodPower              = "Power"
	methodPowerRecursive     = "PowerRecursive"
	methodModPow             = "ModPow"
	methodFibonacciNth       = "FibonacciNth"
	methodFibonacciSequence  = "FibonacciSequence"
	methodSqrtNewton         = "SqrtNewton"
	methodISqrt              = "ISqrt"
)

// arithErrorf wraps sentinel with the method context and a formatted detail.
// The result reads "<method>: <detail>: <sentinel text>" and still matches
// errors.Is(err, sentinel).
func arithErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
