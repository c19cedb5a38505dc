package segtree

import "golang.org/x/exp/constraints"

// Number is the set of types the arithmetic behaviors accept.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Func is a Behavior assembled from a merge function and an identity value,
// mirroring the (op, e) pair of competitive-programming segment trees.
// Merge is assumed commutative; use a dedicated type implementing Reverser
// for non-commutative folds that must be walked backwards.
type Func[T any] struct {
	merge    func(a, b T) T
	identity T
}

// NewFunc returns a Func behavior. merge must be associative and identity
// must be its neutral element.
func NewFunc[T any](merge func(a, b T) T, identity T) Func[T] {
	return Func[T]{merge: merge, identity: identity}
}

// Identity returns the configured identity.
func (f Func[T]) Identity() T { return f.identity }

// Merge calls the configured merge function.
func (f Func[T]) Merge(a, b T) T { return f.merge(a, b) }

// Sum folds with +; identity 0.
type Sum[T Number] struct{}

// Identity returns 0.
func (Sum[T]) Identity() T { return 0 }

// Merge returns a + b.
func (Sum[T]) Merge(a, b T) T { return a + b }

// Commutative reports true.
func (Sum[T]) Commutative() bool { return true }

// Product folds with *; identity 1.
type Product[T Number] struct{}

// Identity returns 1.
func (Product[T]) Identity() T { return 1 }

// Merge returns a * b.
func (Product[T]) Merge(a, b T) T { return a * b }

// Commutative reports true.
func (Product[T]) Commutative() bool { return true }

// Min folds with min. Inf must be ≥ every value stored in the tree
// (e.g. math.MaxInt64 or +Inf).
type Min[T constraints.Ordered] struct {
	Inf T
}

// Identity returns Inf.
func (m Min[T]) Identity() T { return m.Inf }

// Merge returns the smaller of a and b.
func (Min[T]) Merge(a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max folds with max. NegInf must be ≤ every value stored in the tree.
type Max[T constraints.Ordered] struct {
	NegInf T
}

// Identity returns NegInf.
func (m Max[T]) Identity() T { return m.NegInf }

// Merge returns the larger of a and b.
func (Max[T]) Merge(a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Concat folds slices by concatenation. It is the canonical non-commutative
// behavior: the fold of a range is the list of its elements in order.
// Merge and Reverse never alias their inputs.
type Concat[E any] struct{}

// Identity returns the empty (nil) slice.
func (Concat[E]) Identity() []E { return nil }

// Merge returns a fresh slice holding a followed by b.
func (Concat[E]) Merge(a, b []E) []E {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]E, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// Reverse returns x in reverse order; n is unused because the fold keeps
// every element.
func (Concat[E]) Reverse(_ int, x []E) []E {
	if len(x) == 0 {
		return nil
	}
	out := make([]E, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}

	return out
}

// Commutative reports false.
func (Concat[E]) Commutative() bool { return false }
