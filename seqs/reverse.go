// SPDX-License-Identifier: MIT
// Package: algokit/seqs
//
// reverse.go — order reversal and the 1..n range builder.

package seqs

// Reverse returns a new slice holding s in reverse order; s is untouched.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}

// ReverseString reverses s by runes, so multi-byte characters stay intact.
func ReverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}

// Range returns 1, 2, …, n built with a loop; empty for n <= 0.
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}

	return out
}
