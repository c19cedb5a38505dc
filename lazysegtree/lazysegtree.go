package lazysegtree

import (
	"fmt"
	"math/bits"
)

// Tree is a segment tree of n leaves with deferred range modifiers.
//
// values and modifiers have 2·clp2(n)−1 slots laid out as in segtree: the
// children of k are 2k+1 and 2k+2 and leaves start at clp2(n)−1. The
// effective value of slot k spanning w leaves is Modify(w, values[k],
// modifiers[k]).
type Tree[T, M any] struct {
	size      int
	leaves    int
	values    []T
	modifiers []M
	behavior  Behavior[T, M]
	splitter  Splitter[M] // nil for position-independent modifiers
}

func clp2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// New returns a Tree of n leaves, all set to b.IdentityValue().
//
// Complexity: O(n).
func New[T, M any](n int, b Behavior[T, M]) (*Tree[T, M], error) {
	t, err := alloc(n, b)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	t.build()

	return t, nil
}

// FromSlice returns a Tree whose leaves are a copy of xs, in order.
//
// Complexity: O(len(xs)).
func FromSlice[T, M any](xs []T, b Behavior[T, M]) (*Tree[T, M], error) {
	t, err := alloc(len(xs), b)
	if err != nil {
		return nil, fmt.Errorf("FromSlice: %w", err)
	}
	copy(t.values[t.leaves-1:], xs)
	t.build()

	return t, nil
}

func alloc[T, M any](n int, b Behavior[T, M]) (*Tree[T, M], error) {
	if b == nil {
		return nil, ErrNilBehavior
	}
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidSize)
	}

	leaves := clp2(n)
	values := make([]T, 2*leaves-1)
	modifiers := make([]M, 2*leaves-1)
	idv, idm := b.IdentityValue(), b.IdentityModifier()
	for i := range values {
		values[i] = idv
		modifiers[i] = idm
	}
	s, _ := b.(Splitter[M])

	return &Tree[T, M]{
		size:      n,
		leaves:    leaves,
		values:    values,
		modifiers: modifiers,
		behavior:  b,
		splitter:  s,
	}, nil
}

func (t *Tree[T, M]) build() {
	for k := t.leaves - 2; k >= 0; k-- {
		t.values[k] = t.behavior.MergeValue(t.values[2*k+1], t.values[2*k+2])
	}
}

// Size returns the number of leaves.
func (t *Tree[T, M]) Size() int {
	return t.size
}

// Behavior returns the algebra the tree operates with.
func (t *Tree[T, M]) Behavior() Behavior[T, M] {
	return t.behavior
}

func (t *Tree[T, M]) split(m M, k int) (M, M) {
	if t.splitter == nil {
		return m, m
	}

	return t.splitter.SplitModifier(m, k)
}

// effective returns the value of slot k spanning w leaves with its pending
// modifier applied.
func (t *Tree[T, M]) effective(k, w int) T {
	return t.behavior.Modify(w, t.values[k], t.modifiers[k])
}

// compose appends m to the pending modifier of slot k.
func (t *Tree[T, M]) compose(k int, m M) {
	t.modifiers[k] = t.behavior.MergeModifier(t.modifiers[k], m)
}

// push materializes slot k over [l, r) and hands its pending modifier to the
// children, split at the midpoint.
func (t *Tree[T, M]) push(k, l, r int) {
	c := l + (r-l)/2
	m := t.modifiers[k]
	ml, mr := t.split(m, c-l)
	t.values[k] = t.behavior.Modify(r-l, t.values[k], m)
	t.modifiers[k] = t.behavior.IdentityModifier()
	t.compose(2*k+1, ml)
	t.compose(2*k+2, mr)
}

// At returns the effective value of leaf i. Precondition: 0 ≤ i < Size().
//
// Complexity: O(log n).
func (t *Tree[T, M]) At(i int) T {
	return t.Query(i, i+1)
}

// Values returns the effective leaves in index order.
//
// Complexity: O(n log n).
func (t *Tree[T, M]) Values() []T {
	out := make([]T, t.size)
	for i := range out {
		out[i] = t.At(i)
	}

	return out
}

// Update sets leaf i to x, discarding any modifier pending on it.
// Precondition: 0 ≤ i < Size().
//
// Complexity: O(log n).
func (t *Tree[T, M]) Update(i int, x T) {
	k, l, r := 0, 0, t.leaves
	for r-l > 1 {
		t.push(k, l, r)
		c := l + (r-l)/2
		if i < c {
			k, r = 2*k+1, c
		} else {
			k, l = 2*k+2, c
		}
	}
	t.values[k] = x
	t.modifiers[k] = t.behavior.IdentityModifier()

	for w := 2; k > 0; w <<= 1 {
		k = (k - 1) / 2
		t.values[k] = t.behavior.MergeValue(t.effective(2*k+1, w/2), t.effective(2*k+2, w/2))
	}
}

// Modify composes m into every leaf of [l, r). For position-dependent
// modifiers m is anchored at leaf l. Precondition: 0 ≤ l ≤ r ≤ Size().
//
// Complexity: O(log n).
func (t *Tree[T, M]) Modify(l, r int, m M) {
	if l >= r {
		return
	}
	t.modify(l, r, 0, 0, t.leaves, m)
}

// modify applies m, anchored at max(a, l), to [a, b) ∩ [l, r) below slot k
// and returns the effective value of k.
func (t *Tree[T, M]) modify(a, b, k, l, r int, m M) T {
	if r <= a || b <= l {
		return t.effective(k, r-l)
	}
	if a <= l && r <= b {
		t.compose(k, m)
		return t.effective(k, r-l)
	}

	t.push(k, l, r)
	c := l + (r-l)/2
	ml, mr := t.behavior.IdentityModifier(), m
	if a < c {
		ml, mr = t.split(m, c-max(a, l))
	}
	vl := t.modify(a, b, 2*k+1, l, c, ml)
	vr := t.modify(a, b, 2*k+2, c, r, mr)
	t.values[k] = t.behavior.MergeValue(vl, vr)

	return t.values[k]
}

// Query returns the left-to-right fold of the effective leaves in [l, r),
// or IdentityValue() when l ≥ r. Precondition: 0 ≤ l ≤ r ≤ Size().
//
// Complexity: O(log n).
func (t *Tree[T, M]) Query(l, r int) T {
	if l >= r {
		return t.behavior.IdentityValue()
	}

	return t.query(l, r, 0, 0, t.leaves)
}

func (t *Tree[T, M]) query(a, b, k, l, r int) T {
	if r <= a || b <= l {
		return t.behavior.IdentityValue()
	}
	if a <= l && r <= b {
		return t.effective(k, r-l)
	}

	t.push(k, l, r)
	c := l + (r-l)/2

	return t.behavior.MergeValue(t.query(a, b, 2*k+1, l, c), t.query(a, b, 2*k+2, c, r))
}
