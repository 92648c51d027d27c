// SPDX-License-Identifier: MIT
// Package: algokit/seqs
//
// errors.go — sentinel errors; match with errors.Is.

package seqs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an operation that needs at least one element.
	ErrEmptyInput = errors.New("seqs: empty input")

	// ErrRange indicates a rank k outside [1, len(s)].
	ErrRange = errors.New("seqs: rank out of range")
)

const (
	methodFindMin     = "FindMin"
	methodFindMax     = "FindMax"
	methodKthSmallest = "KthSmallest"
	methodKthLargest  = "KthLargest"
	methodQuickSelect = "QuickSelect"
)

func seqsErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// checkRank validates a 1-indexed rank against n elements.
func checkRank(method string, k, n int) error {
	if k < 1 || k > n {
		return seqsErrorf(method, ErrRange, "k=%d not in [1, %d]", k, n)
	}

	return nil
}
