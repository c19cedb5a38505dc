// Package lazysegtree implements a segment tree with deferred range
// modifiers (lazy propagation) over a client-supplied algebra.
//
// What
//
//   - Behavior[T, M]: value monoid (IdentityValue, MergeValue), modifier monoid
//     (IdentityModifier, MergeModifier meaning "apply a, then b") and the action
//     Modify(n, v, m) of a modifier on the fold v of n consecutive elements.
//     Modify may depend on n, e.g. adding an arithmetic progression.
//   - Splitter[M] (optional): SplitModifier(m, k) cuts a position-dependent
//     modifier into the part for the first k elements and the part for the
//     rest. Without it the modifier is assumed position-independent and both
//     halves receive m.
//   - ValueReverser[T] / ModifierReverser[M] (optional): orientation helpers
//     used by pathtree when a chain range is walked backwards. Without them
//     reversal is the identity function.
//
// Node state
//
//	Every slot stores a value and a pending modifier. The effective value of a
//	slot spanning n leaves is Modify(n, value, pending); it is materialized only
//	when the slot is split to reach a partially covered range. Splitting pushes
//	SplitModifier(pending, n/2) into the two children and resets pending to
//	IdentityModifier().
//
// Operations
//
//	Size()            number of leaves
//	At(i)             effective value of leaf i
//	Update(i, x)      point assignment (pending modifiers on the path are pushed first)
//	Modify(l, r, m)   compose m into [l, r)
//	Query(l, r)       left-to-right fold of effective values in [l, r)
//
// Index policy
//
//	Like segtree, hot paths expect 0 ≤ i < Size() and 0 ≤ l ≤ r ≤ Size() and do
//	not validate them. Constructors validate and return sentinel errors.
//
// Complexity
//
//	O(n) construction, O(log n) per Update / Modify / Query / At.
//
// Errors
//
//   - ErrInvalidSize   negative size.
//   - ErrNilBehavior   nil behavior.
package lazysegtree
