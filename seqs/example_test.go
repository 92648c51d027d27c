package seqs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/seqs"
)

// ExampleKthSmallest walks the course array through the main techniques.
func ExampleKthSmallest() {
	arr := []int{3, 1, 4, 1, 5, 9, 2, 6, 5}

	lo, _ := seqs.FindMin(arr)
	hi, _ := seqs.FindMax(arr)
	third, _ := seqs.KthSmallest(arr, 3)
	fmt.Println(lo, hi, third)
	fmt.Println(seqs.Reverse(arr))
	// Output:
	// 1 9 2
	// [5 6 2 9 5 1 4 1 3]
}

func ExamplePartition() {
	p := seqs.Partition([]int{3, 1, 4, 1, 5, 9, 2, 6, 5}, 5)
	fmt.Println(p.Less, p.Equal, p.Greater)
	// Output:
	// [3 1 4 1 2] [5 5] [9 6]
}

func ExampleDedupSorted() {
	fmt.Println(seqs.DedupSorted([]int{1, 1, 2, 3, 3, 3, 4}))
	// Output:
	// [1 2 3 4]
}
