// SPDX-License-Identifier: MIT
// Package: algokit/efficiency

package efficiency

import "fmt"

// Complexity labels reported by CheckSorted.
const (
	LinearTime    = "O(n)"
	ConstantSpace = "O(1)"
)

// Report is the result of CheckSorted. It is built once and returned by value.
type Report struct {
	IsSorted        bool   // no adjacent pair with s[i] > s[i+1]
	Comparisons     int    // adjacent pairs examined before stopping
	TimeComplexity  string // always LinearTime
	SpaceComplexity string // always ConstantSpace
}

// String renders the report on one line, e.g.
// "sorted=true comparisons=4 time=O(n) space=O(1)".
func (r Report) String() string {
	return fmt.Sprintf("sorted=%t comparisons=%d time=%s space=%s",
		r.IsSorted, r.Comparisons, r.TimeComplexity, r.SpaceComplexity)
}
