// SPDX-License-Identifier: MIT
// Package radix converts numerals between positional bases 2..36 and maps
// characters to and from their Unicode code points.
//
// Convert parses a numeral in one base into an arbitrary-precision integer
// (math/big) and renders it in another, using the alphabet 0-9 then A-Z:
//
//	radix.Convert("1010", 2, 10)  // "10"
//	radix.Convert("FF", 16, 2)    // "11111111"
//	radix.Convert("-z", 36, 10)   // "-35"
//
// Errors:
//   - ErrBase      — a base outside [MinBase, MaxBase].
//   - ErrFormat    — empty numeral, lone sign, or a digit invalid for the base.
//   - ErrCodePoint — CodeToChar on a value that is not a Unicode scalar.
package radix
