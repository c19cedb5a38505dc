package graph

import "fmt"

// AdjacencyList stores, for each vertex 0..n-1, its outgoing edges in
// insertion order. The vertex count is fixed at construction.
type AdjacencyList struct {
	edges [][]Edge // edges[u] = outgoing edges of u
}

// New returns an AdjacencyList with n isolated vertices.
// Returns ErrInvalidSize if n < 0.
//
// Complexity: O(n).
func New(n int) (*AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrInvalidSize)
	}

	return &AdjacencyList{edges: make([][]Edge, n)}, nil
}

// Size returns the number of vertices.
func (g *AdjacencyList) Size() int {
	return len(g.edges)
}

// Edges returns the outgoing edges of u in insertion order.
// The returned slice is shared with g and must not be modified.
// u must be in [0, Size()).
func (g *AdjacencyList) Edges(u int) []Edge {
	return g.edges[u]
}

// EdgeCount returns the total number of stored (directed) edges.
//
// Complexity: O(V).
func (g *AdjacencyList) EdgeCount() int {
	total := 0
	for _, es := range g.edges {
		total += len(es)
	}

	return total
}

// AddEdge appends the directed edge from→to.
// Returns ErrVertexOutOfRange if either endpoint is outside [0, Size()).
//
// Complexity: O(1) amortized.
func (g *AdjacencyList) AddEdge(from, to int) error {
	if err := g.checkVertex(from); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	if err := g.checkVertex(to); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	g.edges[from] = append(g.edges[from], Edge{To: to})

	return nil
}

// AddUndirectedEdge appends u→v and v→u. Trees handed to the hld and
// pathtree packages must be built with this method.
//
// Complexity: O(1) amortized.
func (g *AdjacencyList) AddUndirectedEdge(u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return err
	}

	return g.AddEdge(v, u)
}

// HasVertex reports whether v is a valid vertex index.
func (g *AdjacencyList) HasVertex(v int) bool {
	return v >= 0 && v < len(g.edges)
}

func (g *AdjacencyList) checkVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, len(g.edges), ErrVertexOutOfRange)
	}

	return nil
}
