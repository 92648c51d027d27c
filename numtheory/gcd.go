// SPDX-License-Identifier: MIT
// Package: algokit/numtheory
//
// gcd.go — Euclid's algorithm: gcd(a, b) = gcd(b, a mod b), gcd(a, 0) = |a|.

package numtheory

import "math/bits"

// GCD returns the greatest common divisor of a and b, always >= 0.
// GCD(0, 0) = 0 and GCD(a, 0) = |a|.
//
// The single unrepresentable result, 2^63 (only for pairs drawn from
// {0, math.MinInt64}), wraps to math.MinInt64.
//
// Complexity: O(log min(|a|, |b|)) time, O(1) space.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return abs(a)
}

// GCDRecursive returns GCD(a, b) through the recursive definition. Each
// step is one frame; the chain is checked against Options.MaxRecursionDepth.
func GCDRecursive(a, b int64, opts ...Option) (int64, error) {
	cfg := newOptions(opts...)

	return gcdRec(a, b, 1, cfg.MaxRecursionDepth)
}

func gcdRec(a, b int64, depth, limit int) (int64, error) {
	if depth > limit {
		return 0, numtheoryErrorf(methodGCDRecursive, ErrRecursionDepth, "depth %d > %d", depth, limit)
	}
	if b == 0 {
		return abs(a), nil
	}

	return gcdRec(b, a%b, depth+1, limit)
}

// LCM returns the least common multiple |a·b| / gcd(a, b), or 0 when either
// argument is 0. ErrOverflow if the multiple does not fit in int64.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := magnitude(GCD(a, b))
	ua, ub := magnitude(a), magnitude(b)

	hi, lo := bits.Mul64(ua/g, ub)
	if hi != 0 || lo > 1<<63-1 {
		return 0, numtheoryErrorf(methodLCM, ErrOverflow, "lcm(%d, %d)", a, b)
	}

	return int64(lo), nil
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// magnitude returns |x| as uint64, exact for math.MinInt64.
func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}
