package hld_test

import (
	"fmt"

	"github.com/katalvlaran/lvrange/graph"
	"github.com/katalvlaran/lvrange/hld"
)

// ExampleDecomposition_ShortestPath decomposes a small tree and maps a path
// onto chain segments.
//
//	    0
//	   / \
//	  1   2
//	 / \
//	3   4
func ExampleDecomposition_ShortestPath() {
	g, _ := graph.New(5)
	_ = g.AddUndirectedEdge(0, 1)
	_ = g.AddUndirectedEdge(0, 2)
	_ = g.AddUndirectedEdge(1, 3)
	_ = g.AddUndirectedEdge(1, 4)

	d, err := hld.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("chains:", d.CountHeavyPaths())
	for _, seg := range d.ShortestPath(4, 2) {
		fmt.Printf("chain %d: %d→%d\n", seg.PathID, seg.First, seg.Last)
	}
	fmt.Println(d.PathVertices(4, 2), "lca:", d.LCA(4, 3))
	// Output:
	// chains: 3
	// chain 1: 0→0
	// chain 0: 1→0
	// chain 2: 0→0
	// [4 1 0 2] lca: 1
}
