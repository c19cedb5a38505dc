package lazysegtree_test

import (
	"fmt"

	"github.com/katalvlaran/lvrange/lazysegtree"
)

// ExampleTree_Modify adds a constant to a range of counters.
func ExampleTree_Modify() {
	lt, _ := lazysegtree.New[int, int](8, lazysegtree.RangeAddSum[int]{})
	lt.Modify(2, 6, 3)
	lt.Modify(0, 4, 1)
	fmt.Println(lt.Query(0, 8), lt.Values())
	// Output: 16 [1 1 4 4 3 3 0 0]
}

// ExampleArithmeticAddSum adds 1, 2, 3, … to a range.
func ExampleArithmeticAddSum() {
	type P = lazysegtree.Progression[int]
	lt, _ := lazysegtree.New[int, P](6, lazysegtree.ArithmeticAddSum[int]{})
	lt.Modify(1, 5, P{Offset: 1, Delta: 1})
	fmt.Println(lt.Values(), lt.Query(2, 4))
	// Output: [0 1 2 3 4 0] 5
}
