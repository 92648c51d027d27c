// SPDX-License-Identifier: MIT
// Package: algokit/seqs

package seqs

import "cmp"

// Partition splits s into the elements less than, equal to and greater than
// pivot in a single stable pass. Complexity: O(n) time, O(n) space.
func Partition[T cmp.Ordered](s []T, pivot T) Partitioned[T] {
	p := Partitioned[T]{
		Less:    []T{},
		Equal:   []T{},
		Greater: []T{},
	}
	for _, v := range s {
		switch {
		case v < pivot:
			p.Less = append(p.Less, v)
		case v > pivot:
			p.Greater = append(p.Greater, v)
		default:
			p.Equal = append(p.Equal, v)
		}
	}

	return p
}
