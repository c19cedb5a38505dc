package segtree

import "errors"

// Sentinel errors for segment tree construction and searches.
var (
	// ErrInvalidSize indicates a negative number of leaves.
	ErrInvalidSize = errors.New("segtree: invalid size")

	// ErrNilBehavior indicates that a nil Behavior was supplied.
	ErrNilBehavior = errors.New("segtree: behavior is nil")

	// ErrOutOfRange indicates a partition start index outside [0, Size()].
	ErrOutOfRange = errors.New("segtree: index out of range")

	// ErrNoSolution indicates that a partition predicate held over the whole
	// remaining domain, violating its contract.
	ErrNoSolution = errors.New("segtree: no solution")
)

// Behavior defines the algebra a Tree folds with.
//
// Merge must be associative. Identity must be a two-sided identity of Merge.
type Behavior[T any] interface {
	// Identity returns the neutral element (the fold of an empty range).
	Identity() T

	// Merge combines the fold of a left range with the fold of the range
	// immediately to its right.
	Merge(a, b T) T
}

// Reverser is implemented by behaviors whose Merge is not commutative.
// Reverse(n, x) must return the fold of the same n elements merged in
// reverse order, given their forward fold x.
type Reverser[T any] interface {
	Reverse(n int, x T) T
}

// CommutativityReporter lets a behavior declare whether Merge is commutative.
// Behaviors that do not implement it are assumed commutative.
type CommutativityReporter interface {
	Commutative() bool
}

// Reverse applies b's Reverser when present; otherwise Merge is assumed
// commutative and x is returned unchanged.
func Reverse[T any](b Behavior[T], n int, x T) T {
	if r, ok := b.(Reverser[T]); ok {
		return r.Reverse(n, x)
	}

	return x
}

// HasReverse reports whether b implements Reverser.
func HasReverse[T any](b Behavior[T]) bool {
	_, ok := b.(Reverser[T])
	return ok
}

// IsCommutative reports b's declared commutativity (true when undeclared).
func IsCommutative[T any](b Behavior[T]) bool {
	if c, ok := b.(CommutativityReporter); ok {
		return c.Commutative()
	}

	return true
}
