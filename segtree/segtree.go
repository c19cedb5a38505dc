package segtree

import (
	"fmt"
	"iter"
	"math/bits"
)

// Tree is a segment tree of n leaves folded with a Behavior.
//
// values has 2·clp2(n)−1 slots: values[k] folds the children 2k+1 and 2k+2,
// and leaves start at offset clp2(n)−1. Leaves past n hold Identity().
type Tree[T any] struct {
	size     int         // number of leaves n
	leaves   int         // clp2(max(n,1)), width of the leaf level
	values   []T         // implicit complete binary tree
	behavior Behavior[T] // client algebra
}

// clp2 returns the smallest power of two ≥ n (1 for n ≤ 1).
func clp2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// New returns a Tree of n leaves, all set to b.Identity().
//
// Complexity: O(n).
func New[T any](n int, b Behavior[T]) (*Tree[T], error) {
	t, err := alloc(n, b)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	t.build()

	return t, nil
}

// NewFilled returns a Tree of n leaves, all set to x.
//
// Complexity: O(n).
func NewFilled[T any](n int, x T, b Behavior[T]) (*Tree[T], error) {
	t, err := alloc(n, b)
	if err != nil {
		return nil, fmt.Errorf("NewFilled: %w", err)
	}
	off := t.leaves - 1
	for i := 0; i < n; i++ {
		t.values[off+i] = x
	}
	t.build()

	return t, nil
}

// FromSlice returns a Tree whose leaves are a copy of xs, in order.
//
// Complexity: O(len(xs)).
func FromSlice[T any](xs []T, b Behavior[T]) (*Tree[T], error) {
	t, err := alloc(len(xs), b)
	if err != nil {
		return nil, fmt.Errorf("FromSlice: %w", err)
	}
	copy(t.values[t.leaves-1:], xs)
	t.build()

	return t, nil
}

// alloc validates the arguments and allocates storage with every slot set to
// Identity().
func alloc[T any](n int, b Behavior[T]) (*Tree[T], error) {
	if b == nil {
		return nil, ErrNilBehavior
	}
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidSize)
	}

	leaves := clp2(n)
	values := make([]T, 2*leaves-1)
	id := b.Identity()
	for i := range values {
		values[i] = id
	}

	return &Tree[T]{size: n, leaves: leaves, values: values, behavior: b}, nil
}

// build recomputes every internal slot bottom-up.
func (t *Tree[T]) build() {
	for k := t.leaves - 2; k >= 0; k-- {
		t.values[k] = t.behavior.Merge(t.values[2*k+1], t.values[2*k+2])
	}
}

// Size returns the number of leaves.
func (t *Tree[T]) Size() int {
	return t.size
}

// Behavior returns the algebra the tree folds with.
func (t *Tree[T]) Behavior() Behavior[T] {
	return t.behavior
}

// At returns leaf i. Precondition: 0 ≤ i < Size().
//
// Complexity: O(1).
func (t *Tree[T]) At(i int) T {
	return t.values[t.leaves-1+i]
}

// Values returns a copy of the leaves in index order.
//
// Complexity: O(n).
func (t *Tree[T]) Values() []T {
	off := t.leaves - 1
	out := make([]T, t.size)
	copy(out, t.values[off:off+t.size])

	return out
}

// All yields (index, leaf) pairs in index order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		off := t.leaves - 1
		for i := 0; i < t.size; i++ {
			if !yield(i, t.values[off+i]) {
				return
			}
		}
	}
}

// Update sets leaf i to x and recomputes its ancestors.
// Precondition: 0 ≤ i < Size().
//
// Complexity: O(log n).
func (t *Tree[T]) Update(i int, x T) {
	k := t.leaves - 1 + i
	t.values[k] = x
	for k > 0 {
		k = (k - 1) / 2
		t.values[k] = t.behavior.Merge(t.values[2*k+1], t.values[2*k+2])
	}
}

// Query returns the left-to-right fold of leaves [l, r), or Identity() when
// l ≥ r. Precondition: 0 ≤ l and r ≤ Size().
//
// Both ends climb toward the root together. Slots taken on the left are
// appended to lacc and slots taken on the right are prepended to racc, so a
// non-commutative Merge still sees the leaves in order.
//
// Complexity: O(log n).
func (t *Tree[T]) Query(l, r int) T {
	lacc := t.behavior.Identity()
	racc := t.behavior.Identity()
	if l >= r {
		return lacc
	}

	off := t.leaves - 1
	l += off
	r += off
	for l < r {
		// an even slot is a right child: take it, then move past its parent
		if l&1 == 0 {
			lacc = t.behavior.Merge(lacc, t.values[l])
		}
		// r-1 odd means a left child closes the range: take it
		if r&1 == 0 {
			racc = t.behavior.Merge(t.values[r-1], racc)
		}
		l = l / 2
		r = (r - 1) / 2
	}

	return t.behavior.Merge(lacc, racc)
}
