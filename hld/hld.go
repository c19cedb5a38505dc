package hld

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvrange/graph"
)

// chain is one heavy path, head first.
type chain struct {
	parent   int // vertex above the head, -1 for the root chain
	rank     int
	vertices []int
}

// frame is a pending chain head and the vertex it hangs from.
type frame struct {
	head   int
	parent int
}

// Decomposition is an immutable heavy-light decomposition of a rooted tree.
type Decomposition struct {
	root       int
	pathID     []int
	localIndex []int
	paths      []chain
}

// New decomposes the tree g rooted at vertex 0 or at the WithRoot vertex.
//
// Complexity: O(n) time and memory.
func New(g *graph.AdjacencyList, opts ...Option) (*Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Size()
	if n == 0 {
		return nil, ErrEmptyTree
	}
	if o.Root >= n {
		return nil, fmt.Errorf("New(root=%d): n=%d: %w", o.Root, n, ErrRootOutOfRange)
	}

	parent, order, err := hang(g, o.Root)
	if err != nil {
		return nil, fmt.Errorf("New(root=%d): %w", o.Root, err)
	}

	d := &Decomposition{
		root:       o.Root,
		pathID:     make([]int, n),
		localIndex: make([]int, n),
	}
	d.build(g, parent, subtreeSizes(parent, order))

	return d, nil
}

// hang runs BFS from root and returns parent links (-1 for root) and the
// visit order. It also checks that g holds exactly the tree edges in both
// directions.
func hang(g *graph.AdjacencyList, root int) ([]int, []int, error) {
	n := g.Size()
	parent := make([]int, n)
	parent[root] = -1
	order := make([]int, 0, n)
	order = append(order, root)
	graph.BFS(g, root, func(from int, e graph.Edge) {
		parent[e.To] = from
		order = append(order, e.To)
	})

	if len(order) != n {
		return nil, nil, fmt.Errorf("%d of %d vertices reachable: %w", len(order), n, ErrNotTree)
	}
	if m := g.EdgeCount(); m != 2*(n-1) {
		return nil, nil, fmt.Errorf("%d edges for %d vertices: %w", m, n, ErrNotTree)
	}
	// n-1 BFS tree edges plus n-1 back edges exhaust the edge count, so no
	// other edge can exist.
	for _, v := range order[1:] {
		if !hasEdge(g, v, parent[v]) {
			return nil, nil, fmt.Errorf("edge %d→%d missing: %w", v, parent[v], ErrNotTree)
		}
	}

	return parent, order, nil
}

func hasEdge(g *graph.AdjacencyList, u, v int) bool {
	for _, e := range g.Edges(u) {
		if e.To == v {
			return true
		}
	}

	return false
}

// subtreeSizes sums sizes bottom-up in reverse BFS order.
func subtreeSizes(parent, order []int) []int {
	sizes := make([]int, len(parent))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		sizes[v]++
		if p := parent[v]; p >= 0 {
			sizes[p] += sizes[v]
		}
	}

	return sizes
}

// build grows chains from an explicit stack of frames.
func (d *Decomposition) build(g *graph.AdjacencyList, parent, sizes []int) {
	stack := arraystack.New()
	stack.Push(frame{head: d.root, parent: -1})

	for !stack.Empty() {
		item, _ := stack.Pop()
		f := item.(frame)

		id := len(d.paths)
		c := chain{parent: f.parent}
		if f.parent >= 0 {
			c.rank = d.paths[d.pathID[f.parent]].rank + 1
		}

		for cur := f.head; cur >= 0; {
			d.pathID[cur] = id
			d.localIndex[cur] = len(c.vertices)
			c.vertices = append(c.vertices, cur)

			threshold := sizes[cur] / 2
			heavy := -1
			for _, e := range g.Edges(cur) {
				v := e.To
				if v == parent[cur] {
					continue
				}
				if heavy < 0 && sizes[v] >= threshold {
					heavy = v
					continue
				}
				stack.Push(frame{head: v, parent: cur})
			}
			cur = heavy
		}
		d.paths = append(d.paths, c)
	}
}

// Size returns the number of vertices.
func (d *Decomposition) Size() int {
	return len(d.pathID)
}

// Root returns the root vertex.
func (d *Decomposition) Root() int {
	return d.root
}

// CountHeavyPaths returns the number of chains.
func (d *Decomposition) CountHeavyPaths() int {
	return len(d.paths)
}

// PathLength returns the number of vertices on chain p.
func (d *Decomposition) PathLength(p int) int {
	return len(d.paths[p].vertices)
}

// Parent returns the vertex directly above the head of chain p, or -1 for
// the chain holding the root.
func (d *Decomposition) Parent(p int) int {
	return d.paths[p].parent
}

// Rank returns the number of light edges between chain p and the root.
func (d *Decomposition) Rank(p int) int {
	return d.paths[p].rank
}

// PathID returns the chain holding vertex v.
func (d *Decomposition) PathID(v int) int {
	return d.pathID[v]
}

// LocalIndex returns v's position on its chain, 0 at the head.
func (d *Decomposition) LocalIndex(v int) int {
	return d.localIndex[v]
}

// Vertex returns the vertex at local index i of chain p.
func (d *Decomposition) Vertex(p, i int) int {
	return d.paths[p].vertices[i]
}

// ShortestPath returns the segments that, walked in order from First to
// Last, visit the tree path s→t. Precondition: s and t are vertices.
//
// Complexity: O(log n).
func (d *Decomposition) ShortestPath(s, t int) []Segment {
	var head, tail []Segment
	sp, si := d.pathID[s], d.localIndex[s]
	tp, ti := d.pathID[t], d.localIndex[t]

	for sp != tp {
		sr, tr := d.paths[sp].rank, d.paths[tp].rank
		if sr >= tr {
			head = append(head, Segment{PathID: sp, First: si, Last: 0})
			u := d.paths[sp].parent
			sp, si = d.pathID[u], d.localIndex[u]
		}
		if tr >= sr {
			tail = append(tail, Segment{PathID: tp, First: 0, Last: ti})
			u := d.paths[tp].parent
			tp, ti = d.pathID[u], d.localIndex[u]
		}
	}

	out := make([]Segment, 0, len(head)+1+len(tail))
	out = append(out, head...)
	out = append(out, Segment{PathID: sp, First: si, Last: ti})
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}

	return out
}

// PathVertices expands ShortestPath(s, t) into the vertex sequence s…t.
//
// Complexity: O(path length + log n).
func (d *Decomposition) PathVertices(s, t int) []int {
	var out []int
	for _, seg := range d.ShortestPath(s, t) {
		vs := d.paths[seg.PathID].vertices
		if seg.Reversed() {
			for i := seg.First; i >= seg.Last; i-- {
				out = append(out, vs[i])
			}
			continue
		}
		out = append(out, vs[seg.First:seg.Last+1]...)
	}

	return out
}

// LCA returns the lowest common ancestor of s and t: the shallower end of
// the segment where the two climbs meet.
//
// Complexity: O(log n).
func (d *Decomposition) LCA(s, t int) int {
	for d.pathID[s] != d.pathID[t] {
		sp, tp := d.pathID[s], d.pathID[t]
		sr, tr := d.paths[sp].rank, d.paths[tp].rank
		if sr >= tr {
			s = d.paths[sp].parent
		}
		if tr >= sr {
			t = d.paths[tp].parent
		}
	}
	if d.localIndex[s] <= d.localIndex[t] {
		return s
	}

	return t
}
