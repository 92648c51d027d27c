// SPDX-License-Identifier: MIT
// Package: algokit/seqs
//
// scan.go — single-pass scans: minimum, maximum, occurrence count.

package seqs

import "cmp"

// FindMin returns the smallest element of s. ErrEmptyInput if s is empty.
// Complexity: O(n) time, O(1) space.
func FindMin[T cmp.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, seqsErrorf(methodFindMin, ErrEmptyInput, "no elements")
	}

	best := s[0]
	for _, v := range s[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// FindMax returns the largest element of s. ErrEmptyInput if s is empty.
// Complexity: O(n) time, O(1) space.
func FindMax[T cmp.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, seqsErrorf(methodFindMax, ErrEmptyInput, "no elements")
	}

	best := s[0]
	for _, v := range s[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Count returns how many elements of s equal target.
func Count[T comparable](s []T, target T) int {
	n := 0
	for _, v := range s {
		if v == target {
			n++
		}
	}

	return n
}
