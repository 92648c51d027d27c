// SPDX-License-Identifier: MIT
// Package: algokit/efficiency

package efficiency

import "cmp"

// CheckSorted reports whether s is in non-decreasing order.
//
// Steps:
//  1. For i = 0 … n-2: count one comparison of s[i] and s[i+1].
//  2. On the first s[i] > s[i+1] stop; the slice is not sorted.
//
// Comparisons equals the pairs actually checked: n-1 for sorted input
// (0 for n < 2), fewer when an inversion cuts the scan short.
//
// Complexity: O(n) time, O(1) space.
func CheckSorted[T cmp.Ordered](s []T) Report {
	r := Report{
		IsSorted:        true,
		TimeComplexity:  LinearTime,
		SpaceComplexity: ConstantSpace,
	}
	for i := 0; i+1 < len(s); i++ {
		r.Comparisons++
		if s[i] > s[i+1] {
			r.IsSorted = false
			break
		}
	}

	return r
}
