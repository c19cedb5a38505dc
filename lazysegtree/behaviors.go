package lazysegtree

import "golang.org/x/exp/constraints"

// Number is the set of element types the arithmetic behaviors accept.
// Complex types are excluded since Modify scales by the span length.
type Number interface {
	constraints.Integer | constraints.Float
}

// RangeAddSum adds a constant to every element of a range and folds with +.
type RangeAddSum[T Number] struct{}

// IdentityValue returns 0, the empty sum.
func (RangeAddSum[T]) IdentityValue() T { return 0 }

// IdentityModifier returns 0, adding nothing.
func (RangeAddSum[T]) IdentityModifier() T { return 0 }

// MergeValue returns a + b.
func (RangeAddSum[T]) MergeValue(a, b T) T { return a + b }

// MergeModifier adds both increments.
func (RangeAddSum[T]) MergeModifier(a, b T) T { return a + b }

// Modify adds m to each of the n summed elements.
func (RangeAddSum[T]) Modify(n int, v T, m T) T { return v + m*T(n) }

// Commutative reports true.
func (RangeAddSum[T]) Commutative() bool { return true }

// Assign is a pending assignment; the zero value assigns nothing.
type Assign[T any] struct {
	Set   bool
	Value T
}

// RangeAssignMin overwrites every element of a range and folds with min.
// Inf is the identity of min, e.g. math.MaxInt.
type RangeAssignMin[T constraints.Ordered] struct {
	Inf T
}

// IdentityValue returns Inf.
func (b RangeAssignMin[T]) IdentityValue() T { return b.Inf }

// IdentityModifier returns an Assign that assigns nothing.
func (RangeAssignMin[T]) IdentityModifier() Assign[T] { return Assign[T]{} }

// MergeValue returns the smaller of a and b.
func (RangeAssignMin[T]) MergeValue(a, b T) T { return min(a, b) }

// Commutative reports true.
func (RangeAssignMin[T]) Commutative() bool { return true }

// MergeModifier keeps the later assignment.
func (RangeAssignMin[T]) MergeModifier(a, b Assign[T]) Assign[T] {
	if b.Set {
		return b
	}

	return a
}

// Modify ignores n: the minimum of n equal elements is the element.
func (RangeAssignMin[T]) Modify(_ int, v T, m Assign[T]) T {
	if m.Set {
		return m.Value
	}

	return v
}

// Progression adds Offset + Delta·i to the i-th element of the range it is
// anchored at.
type Progression[T Number] struct {
	Offset T
	Delta  T
}

// ArithmeticAddSum adds an arithmetic progression to a range and folds with +.
type ArithmeticAddSum[T Number] struct{}

// IdentityValue returns 0, the empty sum.
func (ArithmeticAddSum[T]) IdentityValue() T { return 0 }

// IdentityModifier returns the zero progression.
func (ArithmeticAddSum[T]) IdentityModifier() Progression[T] { return Progression[T]{} }

// MergeValue returns a + b.
func (ArithmeticAddSum[T]) MergeValue(a, b T) T { return a + b }

// Commutative reports true.
func (ArithmeticAddSum[T]) Commutative() bool { return true }

// MergeModifier adds progressions anchored at the same element.
func (ArithmeticAddSum[T]) MergeModifier(a, b Progression[T]) Progression[T] {
	return Progression[T]{Offset: a.Offset + b.Offset, Delta: a.Delta + b.Delta}
}

// Modify adds Σ_{i<n} (Offset + Delta·i) to v.
func (ArithmeticAddSum[T]) Modify(n int, v T, m Progression[T]) T {
	return v + m.Offset*T(n) + m.Delta*T(n*(n-1)/2)
}

// SplitModifier re-anchors the tail at element k.
func (ArithmeticAddSum[T]) SplitModifier(m Progression[T], k int) (Progression[T], Progression[T]) {
	return m, Progression[T]{Offset: m.Offset + m.Delta*T(k), Delta: m.Delta}
}

// ReverseModifier returns the progression that starts at the last of n
// elements and walks back to the first.
func (ArithmeticAddSum[T]) ReverseModifier(n int, m Progression[T]) Progression[T] {
	if n == 0 {
		return m
	}

	return Progression[T]{Offset: m.Offset + m.Delta*T(n-1), Delta: -m.Delta}
}
