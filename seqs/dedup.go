// SPDX-License-Identifier: MIT
// Package: algokit/seqs

package seqs

// DedupSorted drops consecutive duplicates, keeping the first of each run.
// On sorted input this removes every duplicate and preserves order; the
// operation is idempotent. Complexity: O(n).
func DedupSorted[T comparable](s []T) []T {
	out := make([]T, 0, len(s))
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			out = append(out, v)
		}
	}

	return out
}

// DedupUnordered returns the distinct elements of s collected through a set.
// The output order is unspecified and may differ between calls; compare
// results as sets. Complexity: O(n) expected.
func DedupUnordered[T comparable](s []T) []T {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}

	out := make([]T, 0, len(set))
	for v := range set {
		out = append(out, v)
	}

	return out
}
