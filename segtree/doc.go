// Package segtree implements a generic segment tree over a client-supplied
// algebra (Behavior): point update, range fold and monotone binary search.
//
// What
//
//   - Behavior[T]: Identity() and an associative Merge(a, b). Merge need not be
//     commutative; Query always folds leaves strictly left-to-right.
//   - Reverser[T] (optional): Reverse(n, x) gives the fold of the same n
//     elements taken in reverse order. Needed only by path queries that walk a
//     range against its stored orientation (package pathtree).
//   - CommutativityReporter (optional): a behavior that reports
//     Commutative() == false must also implement Reverser; pathtree rejects it
//     otherwise instead of silently producing wrong folds.
//   - Tree[T]: array-backed complete binary tree with 2·clp2(n)−1 slots; leaves
//     occupy the back half, the children of slot k are 2k+1 and 2k+2.
//
// Operations
//
//	Size()                      number of leaves n
//	At(i)                       leaf i
//	Update(i, x)                set leaf i, recompute O(log n) ancestors
//	Query(l, r)                 fold of leaves [l, r); Identity() when l ≥ r
//	PartitionRight(left, pred)  smallest r ≥ left with pred(fold[left, r)) false
//	PartitionLeft(right, pred)  largest  l ≤ right with pred(fold[l, right)) false
//
// Partition contract
//
//	pred must be monotone along the scan: true, then false, never true again.
//	If pred stays true over the whole remaining domain the call fails with
//	ErrNoSolution; it never panics and never returns a silently wrong index.
//
// Index policy
//
//	Update, Query and At are hot paths and do not validate indices: callers
//	guarantee 0 ≤ i < Size() and 0 ≤ l ≤ r ≤ Size(). Constructors and the
//	partition searches validate their arguments and return sentinel errors.
//
// Complexity
//
//   - New / FromSlice: O(n)
//   - Update, Query:   O(log n)
//   - Partition*:      O(log n) calls to Merge and pred
//
// Concurrency
//
//	Tree is not synchronized; serialize access externally if shared.
//
// Errors
//
//   - ErrInvalidSize   negative size.
//   - ErrNilBehavior   nil behavior.
//   - ErrOutOfRange    partition start outside [0, Size()].
//   - ErrNoSolution    partition predicate never became false.
package segtree
