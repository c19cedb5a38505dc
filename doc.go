// Package lvrange is an in-memory toolkit for range queries over arrays and
// over paths of trees, parameterized by the algebra you fold with.
//
// 🚀 What is lvrange?
//
//	A small, generic library that brings together:
//		• Segment trees over any monoid, with partition (binary) search
//		• Lazy segment trees with position-dependent range modifiers
//		• Heavy-Light Decomposition of rooted trees
//		• Path trees: fold and modify vertex values along any tree path
//
// ✨ Why choose lvrange?
//
//   - Bring your own algebra - implement Identity/Merge (plus Modify for lazy
//     trees) and every structure works with it
//   - Order-aware - non-commutative folds such as concatenation come out in
//     walk order, even when a path climbs towards the root
//   - Deep-tree safe - decomposition uses explicit stacks, no recursion
//   - Pure Go generics with a handful of well-known dependencies
//
// Packages:
//
//	graph/        int-indexed adjacency list, BFS, path reconstruction, random trees
//	segtree/      segment tree engine, behaviors (Sum, Product, Min, Max, Concat, Func)
//	lazysegtree/  lazy segment tree engine, behaviors (RangeAddSum, RangeAssignMin, ArithmeticAddSum)
//	hld/          heavy-light decomposition and chain segments of a path
//	pathtree/     Tree and LazyTree answering path queries in O(log² n)
//	examples/     runnable scenarios
//
// Quick ASCII example:
//
//	    0
//	   / \
//	  1   2      Query(3, 2) folds 3 → 1 → 0 → 2
//	  |
//	  3
//
//	go get github.com/katalvlaran/lvrange
package lvrange
