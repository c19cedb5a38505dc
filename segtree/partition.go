package segtree

import "fmt"

// PartitionRight returns the smallest r ≥ left such that pred(Query(left, r))
// is false.
//
// pred must be monotone non-increasing as r grows: true on a prefix of
// [left, Size()], then false for good. When pred(Identity()) is already
// false the result is left.
//
// Errors:
//   - ErrOutOfRange if left is outside [0, Size()].
//   - ErrNoSolution if pred still holds for Query(left, Size()).
//
// Complexity: O(log n) calls to Merge and pred.
func (t *Tree[T]) PartitionRight(left int, pred func(T) bool) (int, error) {
	if left < 0 || left > t.size {
		return 0, fmt.Errorf("PartitionRight(%d): size=%d: %w", left, t.size, ErrOutOfRange)
	}
	acc := t.behavior.Identity()
	if !pred(acc) {
		return left, nil
	}
	if r, ok := t.partitionRight(0, 0, t.leaves, left, &acc, pred); ok {
		return r, nil
	}

	return 0, fmt.Errorf("PartitionRight(%d): predicate holds through %d: %w", left, t.size, ErrNoSolution)
}

// partitionRight descends slot k covering [l, r). acc holds the fold of
// [left, l) whenever a fully covered slot is examined.
func (t *Tree[T]) partitionRight(k, l, r, left int, acc *T, pred func(T) bool) (int, bool) {
	if r <= left || l >= t.size {
		return 0, false
	}
	if left <= l && r <= t.size {
		next := t.behavior.Merge(*acc, t.values[k])
		if pred(next) {
			*acc = next
			return 0, false
		}
		if r-l == 1 {
			return r, true
		}
	}

	c := l + (r-l)/2
	if res, ok := t.partitionRight(2*k+1, l, c, left, acc, pred); ok {
		return res, true
	}

	return t.partitionRight(2*k+2, c, r, left, acc, pred)
}

// PartitionLeft is the mirror of PartitionRight: it returns the largest
// l ≤ right such that pred(Query(l, right)) is false.
//
// pred must be monotone non-increasing as l decreases: true on a suffix of
// [0, right], then false for good. When pred(Identity()) is already false
// the result is right.
//
// Errors:
//   - ErrOutOfRange if right is outside [0, Size()].
//   - ErrNoSolution if pred still holds for Query(0, right).
//
// Complexity: O(log n) calls to Merge and pred.
func (t *Tree[T]) PartitionLeft(right int, pred func(T) bool) (int, error) {
	if right < 0 || right > t.size {
		return 0, fmt.Errorf("PartitionLeft(%d): size=%d: %w", right, t.size, ErrOutOfRange)
	}
	acc := t.behavior.Identity()
	if !pred(acc) {
		return right, nil
	}
	if l, ok := t.partitionLeft(0, 0, t.leaves, right, &acc, pred); ok {
		return l, nil
	}

	return 0, fmt.Errorf("PartitionLeft(%d): predicate holds down to 0: %w", right, ErrNoSolution)
}

// partitionLeft descends slot k covering [l, r) right child first. acc holds
// the fold of [r, right) whenever a fully covered slot is examined.
func (t *Tree[T]) partitionLeft(k, l, r, right int, acc *T, pred func(T) bool) (int, bool) {
	if l >= right {
		return 0, false
	}
	if r <= right {
		next := t.behavior.Merge(t.values[k], *acc)
		if pred(next) {
			*acc = next
			return 0, false
		}
		if r-l == 1 {
			return l, true
		}
	}

	c := l + (r-l)/2
	if res, ok := t.partitionLeft(2*k+2, c, r, right, acc, pred); ok {
		return res, true
	}

	return t.partitionLeft(2*k+1, l, c, right, acc, pred)
}
