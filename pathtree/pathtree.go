package pathtree

import (
	"fmt"

	"github.com/katalvlaran/lvrange/graph"
	"github.com/katalvlaran/lvrange/hld"
	"github.com/katalvlaran/lvrange/segtree"
)

// Tree folds vertex values along tree paths.
type Tree[T any] struct {
	decomp   *hld.Decomposition
	chains   []*segtree.Tree[T]
	behavior segtree.Behavior[T]
	reverser segtree.Reverser[T] // nil when folds need no reversal
}

// New returns a Tree over g with every vertex set to b.Identity().
//
// Complexity: O(n).
func New[T any](g *graph.AdjacencyList, b segtree.Behavior[T], opts ...Option) (*Tree[T], error) {
	t, err := newTree(g, nil, false, b, opts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return t, nil
}

// FromValues returns a Tree over g with vertex v set to values[v].
//
// Complexity: O(n).
func FromValues[T any](g *graph.AdjacencyList, values []T, b segtree.Behavior[T], opts ...Option) (*Tree[T], error) {
	t, err := newTree(g, values, true, b, opts)
	if err != nil {
		return nil, fmt.Errorf("FromValues: %w", err)
	}

	return t, nil
}

func newTree[T any](g *graph.AdjacencyList, values []T, withValues bool, b segtree.Behavior[T], opts []Option) (*Tree[T], error) {
	if b == nil {
		return nil, segtree.ErrNilBehavior
	}
	if !segtree.IsCommutative(b) && !segtree.HasReverse(b) {
		return nil, fmt.Errorf("non-commutative merge without Reverse: %w", ErrReverseRequired)
	}
	d, err := decompose(g, values, withValues, opts)
	if err != nil {
		return nil, err
	}

	t := &Tree[T]{
		decomp:   d,
		chains:   make([]*segtree.Tree[T], d.CountHeavyPaths()),
		behavior: b,
	}
	if r, ok := b.(segtree.Reverser[T]); ok {
		t.reverser = r
	}
	for p := range t.chains {
		if withValues {
			t.chains[p], err = segtree.FromSlice(chainValues(d, values, p), b)
		} else {
			t.chains[p], err = segtree.New(d.PathLength(p), b)
		}
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Decomposition returns the heavy-light decomposition the tree is laid out on.
func (t *Tree[T]) Decomposition() *hld.Decomposition {
	return t.decomp
}

// Size returns the number of vertices.
func (t *Tree[T]) Size() int {
	return t.decomp.Size()
}

// Update sets the value of vertex v. Precondition: v is a vertex.
//
// Complexity: O(log n).
func (t *Tree[T]) Update(v int, x T) {
	t.chains[t.decomp.PathID(v)].Update(t.decomp.LocalIndex(v), x)
}

// At returns the value of vertex v.
//
// Complexity: O(1).
func (t *Tree[T]) At(v int) T {
	return t.chains[t.decomp.PathID(v)].At(t.decomp.LocalIndex(v))
}

// Query returns the fold of the vertex values on the path s→v, s first.
//
// Complexity: O(log² n).
func (t *Tree[T]) Query(s, v int) T {
	acc := t.behavior.Identity()
	for _, seg := range t.decomp.ShortestPath(s, v) {
		part := t.chains[seg.PathID].Query(seg.Lo(), seg.Hi())
		if seg.Reversed() && t.reverser != nil {
			part = t.reverser.Reverse(seg.Len(), part)
		}
		acc = t.behavior.Merge(acc, part)
	}

	return acc
}
