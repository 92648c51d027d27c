// SPDX-License-Identifier: MIT
// Package: algokit/seqs

package seqs

// Partitioned is the result of Partition: the input split around a pivot.
// Within each part elements keep their input order, and
// len(Less)+len(Equal)+len(Greater) equals the input length.
type Partitioned[T any] struct {
	Less    []T // elements < pivot
	Equal   []T // elements == pivot
	Greater []T // elements > pivot
}
