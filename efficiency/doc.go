// SPDX-License-Identifier: MIT
// Package efficiency instruments a tiny algorithm, the sortedness check, so
// its cost can be read off the result instead of guessed.
//
// CheckSorted scans adjacent pairs and stops at the first inversion. The
// returned Report carries the verdict, the number of comparisons actually
// made and the textbook complexity labels:
//
//	r := efficiency.CheckSorted([]int{1, 2, 3, 4, 5})
//	// r.IsSorted == true, r.Comparisons == 4
//
//	r = efficiency.CheckSorted([]int{1, 3, 2, 4, 5})
//	// r.IsSorted == false, r.Comparisons == 2 (stopped early)
package efficiency
