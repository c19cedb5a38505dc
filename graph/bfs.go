package graph

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *AdjacencyList
	queue   *arrayqueue.Queue
	visited []bool
	onEdge  func(from int, e Edge)
}

// BFS runs breadth-first search on g from root and invokes fn(from, e) for
// every edge e that discovers a not-yet-visited vertex e.To. Calls happen in
// visit order, so e.To values arrive root-to-leaf. Vertices unreachable from
// root are never reported.
//
// root must be in [0, g.Size()); fn must be non-nil.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *AdjacencyList, root int, fn func(from int, e Edge)) {
	w := &walker{
		graph:   g,
		queue:   arrayqueue.New(),
		visited: make([]bool, g.Size()),
		onEdge:  fn,
	}
	w.enqueue(root)
	w.loop()
}

// enqueue marks v visited and appends it to the queue.
func (w *walker) enqueue(v int) {
	w.visited[v] = true
	w.queue.Enqueue(v)
}

// loop drains the queue, discovering neighbors in edge-list order.
func (w *walker) loop() {
	for !w.queue.Empty() {
		item, _ := w.queue.Dequeue()
		u := item.(int)
		for _, e := range w.graph.edges[u] {
			if w.visited[e.To] {
				continue
			}
			w.onEdge(u, e)
			w.enqueue(e.To)
		}
	}
}

// BFSOrder returns root followed by every vertex reachable from it, in BFS
// visit order. Returns ErrVertexOutOfRange for an invalid root.
//
// Complexity: O(V + E).
func BFSOrder(g *AdjacencyList, root int) ([]int, error) {
	if err := g.checkVertex(root); err != nil {
		return nil, fmt.Errorf("BFSOrder: %w", err)
	}
	order := make([]int, 0, g.Size())
	order = append(order, root)
	BFS(g, root, func(_ int, e Edge) {
		order = append(order, e.To)
	})

	return order, nil
}

// ShortestPath returns the fewest-hop vertex sequence s→t (inclusive) found
// by BFS parent links. On a tree this is the unique simple path.
// Returns ErrVertexOutOfRange for invalid endpoints and ErrUnreachable if t
// cannot be reached from s.
//
// Complexity: O(V + E).
func ShortestPath(g *AdjacencyList, s, t int) ([]int, error) {
	if err := g.checkVertex(s); err != nil {
		return nil, fmt.Errorf("ShortestPath(%d,%d): %w", s, t, err)
	}
	if err := g.checkVertex(t); err != nil {
		return nil, fmt.Errorf("ShortestPath(%d,%d): %w", s, t, err)
	}

	prev := make([]int, g.Size())
	for i := range prev {
		prev[i] = -1
	}
	BFS(g, s, func(from int, e Edge) {
		prev[e.To] = from
	})
	if s != t && prev[t] < 0 {
		return nil, fmt.Errorf("ShortestPath(%d,%d): %w", s, t, ErrUnreachable)
	}

	// build reversed path
	path := []int{}
	for cur := t; cur != s; cur = prev[cur] {
		path = append(path, cur)
	}
	path = append(path, s)
	// reverse to get s → t
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
