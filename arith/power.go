// SPDX-License-Identifier: MIT
// Package: algokit/arith
//
// power.go — exponentiation by squaring.
//
// Algorithm (iterative, right-to-left binary):
//  1. result = 1, e = |exp|.
//  2. While e > 0: if e is odd multiply result by base; square base; halve e.
//  3. For exp < 0 return 1/result.
//
// O(log |exp|) multiplications instead of |exp|.

package arith

import "math/bits"

// Power returns base^exp by repeated squaring.
//
// Contract:
//   - exp == 0 → 1 (including 0^0).
//   - exp < 0  → 1 / base^|exp|.
//   - base == 0 && exp < 0 → ErrDomain.
//
// Complexity: O(log |exp|) time, O(1) space.
func Power(base float64, exp int) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, arithErrorf(methodPower, ErrDomain, "0^%d", exp)
	}
	if exp < 0 {
		return 1 / powUint(base, magnitude(exp)), nil
	}

	return powUint(base, uint64(exp)), nil
}

// PowerRecursive computes the same value with the halving recursion:
//
//	b^0 = 1,  b^e = (b^(e/2))² for even e,  b^e = b·b^(e-1) for odd e.
//
// The depth is at most about 2·log2|exp| and is checked against
// Options.MaxRecursionDepth (ErrRecursionDepth).
func PowerRecursive(base float64, exp int, opts ...Option) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, arithErrorf(methodPowerRecursive, ErrDomain, "0^%d", exp)
	}
	cfg := newOptions(opts...)

	v, err := powerRec(base, magnitude(exp), 1, cfg.MaxRecursionDepth)
	if err != nil {
		return 0, err
	}
	if exp < 0 {
		return 1 / v, nil
	}

	return v, nil
}

func powerRec(base float64, e uint64, depth, limit int) (float64, error) {
	if depth > limit {
		return 0, arithErrorf(methodPowerRecursive, ErrRecursionDepth, "depth %d > %d", depth, limit)
	}
	if e == 0 {
		return 1, nil
	}
	if e%2 == 0 {
		half, err := powerRec(base, e/2, depth+1, limit)
		if err != nil {
			return 0, err
		}

		return half * half, nil
	}
	rest, err := powerRec(base, e-1, depth+1, limit)
	if err != nil {
		return 0, err
	}

	return base * rest, nil
}

func powUint(base float64, e uint64) float64 {
	result := 1.0
	for e > 0 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
		e >>= 1
	}

	return result
}

// magnitude returns |x| as uint64; correct for math.MinInt as well.
func magnitude(x int) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

// ModPow returns base^exp mod m in [0, m) using square-and-multiply.
// Intermediate products are 128-bit (math/bits), so any int64 modulus is safe.
//
// Contract: m <= 0 → ErrDomain; exp < 0 → ErrDomain (no modular inverse).
// Negative bases are reduced into [0, m) first.
//
// Complexity: O(log exp) time, O(1) space.
func ModPow(base, exp, m int64) (int64, error) {
	if m <= 0 {
		return 0, arithErrorf(methodModPow, ErrDomain, "modulus %d", m)
	}
	if exp < 0 {
		return 0, arithErrorf(methodModPow, ErrDomain, "exponent %d", exp)
	}

	mod := uint64(m)
	b := base % m
	if b < 0 {
		b += m
	}
	ub := uint64(b)
	result := uint64(1) % mod
	for e := uint64(exp); e > 0; e >>= 1 {
		if e&1 == 1 {
			hi, lo := bits.Mul64(result, ub)
			result = bits.Rem64(hi, lo, mod)
		}
		hi, lo := bits.Mul64(ub, ub)
		ub = bits.Rem64(hi, lo, mod)
	}

	return int64(result), nil
}
