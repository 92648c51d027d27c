// SPDX-License-Identifier: MIT
// Package: algokit/radix

package radix

import "unicode/utf8"

// CharToCode returns the Unicode code point of r ('A' → 65).
func CharToCode(r rune) int {
	return int(r)
}

// CodeToChar returns the character with the given code point (65 → 'A').
// Negative values, values above utf8.MaxRune and surrogate halves return
// ErrCodePoint.
func CodeToChar(code int) (rune, error) {
	if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
		return 0, radixErrorf(methodCodeToChar, ErrCodePoint, "code %d", code)
	}

	return rune(code), nil
}
