// SPDX-License-Identifier: MIT
// Package: algokit/radix
//
// errors.go — sentinel errors for radix. Base checks run before format
// checks, so Convert("xyz", 1, 10) reports ErrBase.

package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrBase indicates a base outside [MinBase, MaxBase].
	ErrBase = errors.New("radix: base out of range")

	// ErrFormat indicates a malformed numeral for the stated base.
	ErrFormat = errors.New("radix: malformed numeral")

	// ErrCodePoint indicates an integer that is not a valid Unicode scalar value.
	ErrCodePoint = errors.New("radix: invalid code point")
)

const (
	methodConvert    = "Convert"
	methodCodeToChar = "CodeToChar"
)

func radixErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
