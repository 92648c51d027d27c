// SPDX-License-Identifier: MIT
// Package: algokit/radix
//
// convert.go — base conversion via an intermediate integer.
//
// Algorithm:
//  1. Validate both bases.
//  2. Strip one optional sign, then fold digits left to right:
//     value = value·from + digit (Horner's rule).
//  3. Render value in the target base (repeated division, done by big.Int.Text)
//     and upper-case the letters.

package radix

import (
	"math/big"
	"strings"
)

const (
	// MinBase and MaxBase bound the bases Convert accepts.
	MinBase = 2
	MaxBase = 36

	// Digits is the rendering alphabet; a digit's value is its index.
	Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Convert re-renders the numeral digits, written in fromBase, in toBase.
//
// Input grammar: an optional '+' or '-' followed by one or more digits from
// Digits whose value is below fromBase; letters are case-insensitive. Output
// uses upper-case letters, no leading zeros, and a '-' for negative values.
// Zero (including "-0") renders as "0".
//
// Complexity: O(L²) word operations for an L-digit numeral.
func Convert(digits string, fromBase, toBase int) (string, error) {
	if err := checkBase(fromBase); err != nil {
		return "", err
	}
	if err := checkBase(toBase); err != nil {
		return "", err
	}

	body, negative := splitSign(digits)
	if body == "" {
		return "", radixErrorf(methodConvert, ErrFormat, "no digits in %q", digits)
	}

	value := new(big.Int)
	base := big.NewInt(int64(fromBase))
	d := new(big.Int)
	for i, r := range body {
		v := digitValue(r)
		if v < 0 || v >= fromBase {
			return "", radixErrorf(methodConvert, ErrFormat, "invalid digit %q at offset %d for base %d", r, i, fromBase)
		}
		value.Mul(value, base)
		value.Add(value, d.SetInt64(int64(v)))
	}
	if negative {
		value.Neg(value)
	}

	return strings.ToUpper(value.Text(toBase)), nil
}

func checkBase(b int) error {
	if b < MinBase || b > MaxBase {
		return radixErrorf(methodConvert, ErrBase, "base %d not in [%d, %d]", b, MinBase, MaxBase)
	}

	return nil
}

// splitSign removes one leading '+' or '-'.
func splitSign(s string) (body string, negative bool) {
	if s == "" {
		return s, false
	}
	switch s[0] {
	case '-':
		return s[1:], true
	case '+':
		return s[1:], false
	}

	return s, false
}

// digitValue maps 0-9, a-z, A-Z to 0..35 and anything else to -1.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}
