package graph

import "fmt"

const methodRandomTree = "RandomTree"

// RandomTree builds a random tree on n vertices as a bidirectional edge set.
//
// Model:
//   - Draw a random labelling π of 0..n-1.
//   - For i = 1..n-1 attach π[i] to π[j] with j drawn uniformly from [0, i).
//
// Contract:
//   - n ≥ 0 (else ErrInvalidSize); n ∈ {0,1} yields an edgeless graph.
//   - A random source is required (WithSeed/WithRand) whenever n > 1, else
//     ErrNeedRandSource.
//   - Both directions of every tree edge are stored, parent→child first.
//
// Determinism: identical outcomes for identical seeds.
//
// Complexity: O(n) time and memory.
func RandomTree(n int, opts ...Option) (*AdjacencyList, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomTree, err)
	}
	if n <= 1 {
		return g, nil
	}
	if o.Rand == nil {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomTree, n, ErrNeedRandSource)
	}

	labels := o.Rand.Perm(n)
	for i := 1; i < n; i++ {
		parent := labels[o.Rand.Intn(i)]
		if err = g.AddUndirectedEdge(parent, labels[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomTree, err)
		}
	}

	return g, nil
}

// PathGraph builds the path 0-1-2-…-(n-1) as a bidirectional edge set.
// Useful as the deepest possible tree for stress-testing explicit stacks.
//
// Complexity: O(n).
func PathGraph(n int) (*AdjacencyList, error) {
	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("PathGraph: %w", err)
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddUndirectedEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("PathGraph: %w", err)
		}
	}

	return g, nil
}
