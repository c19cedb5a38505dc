package segtree_test

import (
	"fmt"

	"github.com/katalvlaran/lvrange/segtree"
)

// ExampleTree_Query sums a range, updates a leaf and sums again.
func ExampleTree_Query() {
	xs := make([]int, 32)
	for i := range xs {
		xs[i] = i
	}
	st, err := segtree.FromSlice(xs, segtree.Sum[int]{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(st.Query(0, 32))
	st.Update(5, 100)
	fmt.Println(st.Query(0, 32))
	// Output:
	// 496
	// 591
}

// ExampleTree_PartitionRight finds how many leading items fit a budget.
func ExampleTree_PartitionRight() {
	costs := []int{4, 2, 7, 1, 3}
	st, _ := segtree.FromSlice(costs, segtree.Sum[int]{})

	budget := 13
	r, err := st.PartitionRight(0, func(total int) bool { return total <= budget })
	if err != nil {
		fmt.Println("everything fits")
		return
	}
	fmt.Println("items that fit:", r-1)
	// Output:
	// items that fit: 3
}

// ExampleNewFunc builds a behavior from a merge function and its identity.
func ExampleNewFunc() {
	gcd := func(a, b int) int {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}
	st, _ := segtree.FromSlice([]int{12, 18, 24, 9}, segtree.NewFunc(gcd, 0))
	fmt.Println(st.Query(0, 3), st.Query(0, 4))
	// Output:
	// 6 3
}
