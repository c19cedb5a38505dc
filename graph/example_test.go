package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvrange/graph"
)

// ExampleShortestPath finds the unique path between two leaves of a small tree.
func ExampleShortestPath() {
	//  0 ─ 1 ─ 2
	//      │
	//      3 ─ 4
	g, _ := graph.New(5)
	_ = g.AddUndirectedEdge(0, 1)
	_ = g.AddUndirectedEdge(1, 2)
	_ = g.AddUndirectedEdge(1, 3)
	_ = g.AddUndirectedEdge(3, 4)

	path, err := graph.ShortestPath(g, 0, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 1 3 4]
}

// ExampleBFS lists the edges that discover new vertices, root-to-leaf.
func ExampleBFS() {
	g, _ := graph.New(4)
	_ = g.AddUndirectedEdge(0, 1)
	_ = g.AddUndirectedEdge(0, 2)
	_ = g.AddUndirectedEdge(2, 3)

	graph.BFS(g, 0, func(from int, e graph.Edge) {
		fmt.Printf("%d→%d\n", from, e.To)
	})
	// Output:
	// 0→1
	// 0→2
	// 2→3
}
