package pathtree

import (
	"fmt"

	"github.com/katalvlaran/lvrange/graph"
	"github.com/katalvlaran/lvrange/hld"
	"github.com/katalvlaran/lvrange/lazysegtree"
)

// LazyTree folds and modifies vertex values along tree paths.
type LazyTree[T, M any] struct {
	decomp   *hld.Decomposition
	chains   []*lazysegtree.Tree[T, M]
	behavior lazysegtree.Behavior[T, M]
}

// NewLazy returns a LazyTree over g with every vertex set to
// b.IdentityValue().
//
// Complexity: O(n).
func NewLazy[T, M any](g *graph.AdjacencyList, b lazysegtree.Behavior[T, M], opts ...Option) (*LazyTree[T, M], error) {
	t, err := newLazyTree(g, nil, false, b, opts)
	if err != nil {
		return nil, fmt.Errorf("NewLazy: %w", err)
	}

	return t, nil
}

// LazyFromValues returns a LazyTree over g with vertex v set to values[v].
//
// Complexity: O(n).
func LazyFromValues[T, M any](g *graph.AdjacencyList, values []T, b lazysegtree.Behavior[T, M], opts ...Option) (*LazyTree[T, M], error) {
	t, err := newLazyTree(g, values, true, b, opts)
	if err != nil {
		return nil, fmt.Errorf("LazyFromValues: %w", err)
	}

	return t, nil
}

func newLazyTree[T, M any](g *graph.AdjacencyList, values []T, withValues bool, b lazysegtree.Behavior[T, M], opts []Option) (*LazyTree[T, M], error) {
	if b == nil {
		return nil, lazysegtree.ErrNilBehavior
	}
	if !lazysegtree.IsCommutative(b) && !lazysegtree.HasReverseValue(b) {
		return nil, fmt.Errorf("non-commutative merge without ReverseValue: %w", ErrReverseRequired)
	}
	_, splits := b.(lazysegtree.Splitter[M])
	_, reverses := b.(lazysegtree.ModifierReverser[M])
	if splits && !reverses {
		return nil, fmt.Errorf("SplitModifier without ReverseModifier: %w", ErrReverseRequired)
	}
	d, err := decompose(g, values, withValues, opts)
	if err != nil {
		return nil, err
	}

	t := &LazyTree[T, M]{
		decomp:   d,
		chains:   make([]*lazysegtree.Tree[T, M], d.CountHeavyPaths()),
		behavior: b,
	}
	for p := range t.chains {
		if withValues {
			t.chains[p], err = lazysegtree.FromSlice(chainValues(d, values, p), b)
		} else {
			t.chains[p], err = lazysegtree.New(d.PathLength(p), b)
		}
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Decomposition returns the heavy-light decomposition the tree is laid out on.
func (t *LazyTree[T, M]) Decomposition() *hld.Decomposition {
	return t.decomp
}

// Size returns the number of vertices.
func (t *LazyTree[T, M]) Size() int {
	return t.decomp.Size()
}

// Update sets the value of vertex v, dropping modifiers pending on it.
//
// Complexity: O(log n).
func (t *LazyTree[T, M]) Update(v int, x T) {
	t.chains[t.decomp.PathID(v)].Update(t.decomp.LocalIndex(v), x)
}

// At returns the value of vertex v with every modifier applied.
//
// Complexity: O(log n).
func (t *LazyTree[T, M]) At(v int) T {
	return t.chains[t.decomp.PathID(v)].At(t.decomp.LocalIndex(v))
}

// Modify applies m to every vertex on the path s→v. Position-dependent
// modifiers start at s.
//
// Complexity: O(log² n).
func (t *LazyTree[T, M]) Modify(s, v int, m M) {
	for _, seg := range t.decomp.ShortestPath(s, v) {
		n := seg.Len()
		head, rest := lazysegtree.Split(t.behavior, m, n)
		if seg.Reversed() {
			head = lazysegtree.ReverseModifier(t.behavior, n, head)
		}
		t.chains[seg.PathID].Modify(seg.Lo(), seg.Hi(), head)
		m = rest
	}
}

// Query returns the fold of the vertex values on the path s→v, s first.
//
// Complexity: O(log² n).
func (t *LazyTree[T, M]) Query(s, v int) T {
	acc := t.behavior.IdentityValue()
	for _, seg := range t.decomp.ShortestPath(s, v) {
		part := t.chains[seg.PathID].Query(seg.Lo(), seg.Hi())
		if seg.Reversed() {
			part = lazysegtree.ReverseValue(t.behavior, seg.Len(), part)
		}
		acc = t.behavior.MergeValue(acc, part)
	}

	return acc
}
