// SPDX-License-Identifier: MIT
// Package: algokit/numtheory
//
// errors.go — sentinel errors; match with errors.Is.

package numtheory

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow indicates that the exact result does not fit in int64.
	ErrOverflow = errors.New("numtheory: result overflows int64")

	// ErrRecursionDepth indicates that GCDRecursive would exceed the
	// configured Options.MaxRecursionDepth.
	ErrRecursionDepth = errors.New("numtheory: recursion depth limit exceeded")
)

const (
	methodGCDRecursive = "GCDRecursive"
	methodLCM          = "LCM"
)

// numtheoryErrorf returns "<method>: <detail>: <sentinel>" wrapping sentinel.
func numtheoryErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
