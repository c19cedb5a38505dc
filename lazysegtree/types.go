package lazysegtree

import (
	"errors"

	"github.com/katalvlaran/lvrange/segtree"
)

// Sentinel errors for lazy segment tree construction.
var (
	// ErrInvalidSize indicates a negative number of leaves.
	ErrInvalidSize = errors.New("lazysegtree: invalid size")

	// ErrNilBehavior indicates that a nil Behavior was supplied.
	ErrNilBehavior = errors.New("lazysegtree: behavior is nil")
)

// Behavior defines values T, modifiers M and how modifiers act on values.
//
// MergeValue and MergeModifier must be associative with the respective
// identities. Modify must distribute over MergeValue for position-independent
// modifiers; position-dependent ones must also implement Splitter.
type Behavior[T, M any] interface {
	IdentityValue() T
	IdentityModifier() M

	// MergeValue folds a left range with the range to its right.
	MergeValue(a, b T) T

	// MergeModifier composes two pending modifiers: apply a, then b.
	MergeModifier(a, b M) M

	// Modify applies m to v, the fold of n consecutive elements.
	Modify(n int, v T, m M) T
}

// Splitter is implemented by position-dependent modifiers.
// SplitModifier(m, k) returns the modifier for the first k elements of m's
// span and the modifier for the remaining elements.
type Splitter[M any] interface {
	SplitModifier(m M, k int) (M, M)
}

// ValueReverser gives the fold of n elements taken in reverse order.
type ValueReverser[T any] interface {
	ReverseValue(n int, v T) T
}

// ModifierReverser gives the modifier that has m's effect on n elements
// walked from the last to the first.
type ModifierReverser[M any] interface {
	ReverseModifier(n int, m M) M
}

// CommutativityReporter is shared with package segtree; a lazy behavior
// reporting Commutative() == false must implement ValueReverser.
type CommutativityReporter = segtree.CommutativityReporter

// Split applies b's Splitter when present; otherwise returns (m, m).
func Split[T, M any](b Behavior[T, M], m M, k int) (M, M) {
	if s, ok := b.(Splitter[M]); ok {
		return s.SplitModifier(m, k)
	}

	return m, m
}

// ReverseValue applies b's ValueReverser when present; otherwise returns v.
func ReverseValue[T, M any](b Behavior[T, M], n int, v T) T {
	if r, ok := b.(ValueReverser[T]); ok {
		return r.ReverseValue(n, v)
	}

	return v
}

// ReverseModifier applies b's ModifierReverser when present; otherwise
// returns m.
func ReverseModifier[T, M any](b Behavior[T, M], n int, m M) M {
	if r, ok := b.(ModifierReverser[M]); ok {
		return r.ReverseModifier(n, m)
	}

	return m
}

// HasReverseValue reports whether b implements ValueReverser.
func HasReverseValue[T, M any](b Behavior[T, M]) bool {
	_, ok := b.(ValueReverser[T])
	return ok
}

// IsCommutative reports b's declared commutativity of MergeValue (true when
// undeclared).
func IsCommutative[T, M any](b Behavior[T, M]) bool {
	if c, ok := b.(CommutativityReporter); ok {
		return c.Commutative()
	}

	return true
}
