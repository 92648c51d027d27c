package efficiency_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/efficiency"
)

func ExampleCheckSorted() {
	fmt.Println(efficiency.CheckSorted([]int{1, 2, 3, 4, 5}))
	fmt.Println(efficiency.CheckSorted([]int{1, 3, 2, 4, 5}))
	// Output:
	// sorted=true comparisons=4 time=O(n) space=O(1)
	// sorted=false comparisons=2 time=O(n) space=O(1)
}
