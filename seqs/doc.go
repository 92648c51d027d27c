// SPDX-License-Identifier: MIT
// Package seqs provides the array techniques of algokit as generic functions
// over slices: extremes, order statistics, duplicate removal, three-way
// partitioning, reversal and counting.
//
// 🚀 Guarantees
//
//   - No function mutates its input; results are freshly allocated.
//   - Empty results are empty non-nil slices.
//   - Order is preserved wherever the contract says so (DedupSorted,
//     Partition); DedupUnordered makes no order promise at all.
//
// ⚙️ Errors
//
//   - ErrEmptyInput — FindMin/FindMax on an empty slice.
//   - ErrRange      — k outside [1, len(s)] for KthSmallest/KthLargest/QuickSelect.
//
// Floating-point NaN values have no order; results on slices containing NaN
// are unspecified.
//
//	v, _ := seqs.KthSmallest([]int{3, 1, 4, 1, 5, 9, 2, 6, 5}, 3) // 2
package seqs
