// Package graph provides the minimal integer-indexed graph layer consumed by
// the range-query packages of lvrange.
//
// What
//
//   - AdjacencyList: n vertices numbered 0..n-1, each with an ordered list of
//     outgoing edges. Edge carries only its destination (To).
//   - BFS: breadth-first traversal from a root that reports every edge which
//     discovers a new vertex, in root-to-leaf order.
//   - ShortestPath: unweighted s→t path reconstruction by BFS parent links.
//   - RandomTree: seeded uniform random tree generator (both edge directions).
//
// Why
//
//	Heavy-light decomposition needs nothing more than vertex count, per-vertex
//	edge lists and a BFS order. Integer vertices keep every per-vertex table a
//	dense slice, which is what the chain-local segment trees index into.
//
// Trees
//
//	A tree is supplied as a bidirectional edge set: every tree edge {u,v} must be
//	present as u→v and v→u (AddUndirectedEdge). Child discovery relies on
//	excluding the parent, not on edge direction.
//
// Determinism
//
//	Edge lists keep insertion order and BFS enqueues neighbors in that order,
//	so traversal order is fully reproducible. RandomTree is deterministic for a
//	fixed seed (WithSeed) or *rand.Rand (WithRand).
//
// Concurrency
//
//	AdjacencyList is not synchronized. Build it once, then share it read-only.
//
// Complexity (V = vertices, E = edges)
//
//   - BFS / ShortestPath: O(V + E) time, O(V) memory.
//   - RandomTree:         O(n) time and memory.
//
// Errors
//
//   - ErrInvalidSize       negative vertex count.
//   - ErrVertexOutOfRange  edge endpoint or BFS root outside [0, n).
//   - ErrUnreachable       ShortestPath target not reachable from the source.
//   - ErrNeedRandSource    RandomTree called without WithSeed/WithRand.
package graph
