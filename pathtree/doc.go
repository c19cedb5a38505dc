// Package pathtree answers fold queries and applies updates along vertex
// paths of a tree by keeping one range structure per heavy chain.
//
// What
//
//   - Tree[T]: point Update / At per vertex and Query(s, t), the fold of the
//     vertex values on the path s→t in walk order. Backed by one segtree.Tree
//     per chain.
//   - LazyTree[T, M]: additionally Modify(s, t, m), applying a modifier to
//     every vertex on the path. Position-dependent modifiers are anchored at s
//     and advance towards t. Backed by one lazysegtree.Tree per chain.
//
// Orientation
//
//	hld.Decomposition.ShortestPath yields segments that may walk a chain
//	towards its head. For such a segment the chain fold is passed through
//	Reverse (ReverseValue for lazy trees) and the modifier piece through
//	ReverseModifier before it is applied. Behaviors that report
//	Commutative() == false must therefore supply Reverse / ReverseValue, and
//	lazy behaviors implementing SplitModifier must supply ReverseModifier;
//	constructors reject them with ErrReverseRequired otherwise.
//
// Complexity
//
//   - Construction: O(n).
//   - Update, At:   O(log n).
//   - Query/Modify: O(log² n), at most 2⌈log₂ n⌉ chain ranges per path.
//
// Errors
//
//   - ErrReverseRequired  behavior cannot be walked backwards but must be.
//   - ErrValuesLength     initial values do not match the vertex count.
//   - Wrapped hld, segtree and lazysegtree construction errors.
package pathtree
