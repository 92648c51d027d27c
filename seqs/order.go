// SPDX-License-Identifier: MIT
// Package: algokit/seqs
//
// order.go — k-th order statistics.
//
// KthSmallest and KthLargest sort a copy (O(n log n)). QuickSelect returns
// the same value as KthSmallest with expected O(n) work by partitioning a
// copy three ways around a median-of-three pivot and descending into the
// side that holds rank k.

package seqs

import (
	"cmp"
	"slices"
)

// KthSmallest returns the k-th smallest element (1-indexed) of s.
// ErrRange if k < 1 or k > len(s). s itself is not reordered.
//
// Complexity: O(n log n) time, O(n) space.
func KthSmallest[T cmp.Ordered](s []T, k int) (T, error) {
	if err := checkRank(methodKthSmallest, k, len(s)); err != nil {
		var zero T
		return zero, err
	}
	sorted := slices.Clone(s)
	slices.Sort(sorted)

	return sorted[k-1], nil
}

// KthLargest returns the k-th largest element (1-indexed) of s.
// ErrRange if k < 1 or k > len(s).
//
// Complexity: O(n log n) time, O(n) space.
func KthLargest[T cmp.Ordered](s []T, k int) (T, error) {
	if err := checkRank(methodKthLargest, k, len(s)); err != nil {
		var zero T
		return zero, err
	}
	sorted := slices.Clone(s)
	slices.Sort(sorted)

	return sorted[len(sorted)-k], nil
}

// QuickSelect returns the k-th smallest element (1-indexed) of s by
// partition-select. Same results and errors as KthSmallest.
//
// Complexity: expected O(n) time, O(n) space for the working copy.
func QuickSelect[T cmp.Ordered](s []T, k int) (T, error) {
	if err := checkRank(methodQuickSelect, k, len(s)); err != nil {
		var zero T
		return zero, err
	}

	return selectKth(slices.Clone(s), k-1), nil
}

// selectKth reorders a in place and returns the element of 0-based rank k.
func selectKth[T cmp.Ordered](a []T, k int) T {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := medianOfThree(a[lo], a[lo+(hi-lo)/2], a[hi])

		// Dutch national flag: a[lo:lt] < p, a[lt:gt+1] == p, a[gt+1:hi+1] > p.
		lt, i, gt := lo, lo, hi
		for i <= gt {
			switch {
			case a[i] < p:
				a[lt], a[i] = a[i], a[lt]
				lt++
				i++
			case a[i] > p:
				a[i], a[gt] = a[gt], a[i]
				gt--
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return a[k]
		}
	}

	return a[lo]
}

func medianOfThree[T cmp.Ordered](x, y, z T) T {
	if x > y {
		x, y = y, x
	}
	if y > z {
		y = z
	}
	if x > y {
		return x
	}

	return y
}
