// Package hld provides Heavy-Light Decomposition of a rooted tree given as an
// undirected graph.AdjacencyList.
//
// What
//
//   - Splits the tree into chains (heavy paths). A child is heavy when its
//     subtree holds at least half of its parent's subtree; the first such child
//     in edge-list order continues the parent's chain, every other child heads
//     a new chain.
//   - Numbers every vertex by (PathID, LocalIndex); local index 0 is the chain
//     head, the vertex closest to the root.
//   - Records per chain its length, its parent vertex (the vertex directly
//     above the head, −1 for the root chain) and its rank (0 for the root
//     chain, parent chain's rank + 1 otherwise).
//   - ShortestPath(s, t) maps the tree path s→t onto an ordered list of
//     Segments; walking every segment from First to Last reproduces the path.
//
// Why
//
//	Any root-to-leaf walk crosses at most ⌈log₂ n⌉ light edges, so a path has
//	at most 2⌈log₂ n⌉ segments. Keeping one range structure per chain turns a
//	path query into O(log n) range queries (see package pathtree).
//
// Construction
//
//  1. BFS from the root records parents; subtree sizes are summed in reverse
//     BFS order.
//  2. Chains are grown with an explicit stack of (head, parent vertex)
//     frames, so degenerate trees of any depth are handled without
//     recursion.
//
// Input requirements
//
//	g must hold each tree edge in both directions (AddUndirectedEdge). Child
//	discovery excludes the parent rather than relying on edge direction.
//
// Complexity
//
//   - New:          O(n) time and memory.
//   - ShortestPath: O(log n).
//
// Options
//
//   - WithRoot(v): root vertex, default 0.
//
// Errors
//
//   - ErrGraphNil         graph pointer is nil.
//   - ErrEmptyTree        graph has no vertices.
//   - ErrOptionViolation  invalid option, e.g. negative root.
//   - ErrRootOutOfRange   root ≥ vertex count.
//   - ErrNotTree          some vertex is unreachable from the root, or the edge
//     set is not exactly the tree edges in both directions.
package hld
