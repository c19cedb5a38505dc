package pathtree_test

import (
	"fmt"

	"github.com/katalvlaran/lvrange/graph"
	"github.com/katalvlaran/lvrange/lazysegtree"
	"github.com/katalvlaran/lvrange/pathtree"
	"github.com/katalvlaran/lvrange/segtree"
)

// ExampleTree_Query reads vertex labels along a path in walk order.
//
//	  0
//	 / \
//	1   2
//	|
//	3
func ExampleTree_Query() {
	g, _ := graph.New(4)
	_ = g.AddUndirectedEdge(0, 1)
	_ = g.AddUndirectedEdge(0, 2)
	_ = g.AddUndirectedEdge(1, 3)

	labels := [][]string{{"a"}, {"b"}, {"c"}, {"d"}}
	pt, err := pathtree.FromValues(g, labels, segtree.Concat[string]{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(pt.Query(3, 2), pt.Query(2, 3))
	// Output: [d b a c] [c a b d]
}

// ExampleLazyTree_Modify adds 1, 2, 3, … to the vertices of a path.
func ExampleLazyTree_Modify() {
	g, _ := graph.PathGraph(5)
	type P = lazysegtree.Progression[int]
	lt, err := pathtree.NewLazy[int, P](g, lazysegtree.ArithmeticAddSum[int]{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	lt.Modify(3, 0, P{Offset: 1, Delta: 1})
	for v := 0; v < 5; v++ {
		fmt.Print(lt.At(v), " ")
	}
	fmt.Println("sum:", lt.Query(0, 4))
	// Output: 4 3 2 1 0 sum: 10
}
