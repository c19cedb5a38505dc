package hld

import (
	"errors"
	"fmt"
)

// Sentinel errors for decomposition.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("hld: graph is nil")

	// ErrEmptyTree is returned for a graph with no vertices.
	ErrEmptyTree = errors.New("hld: tree is empty")

	// ErrRootOutOfRange is returned when the root is not a vertex of the graph.
	ErrRootOutOfRange = errors.New("hld: root out of range")

	// ErrNotTree is returned when the graph is not an undirected tree.
	ErrNotTree = errors.New("hld: graph is not a tree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hld: invalid option supplied")
)

// Option configures decomposition via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds decomposition parameters.
type Options struct {
	// Root is the vertex the tree hangs from.
	Root int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options rooted at vertex 0.
func DefaultOptions() Options {
	return Options{Root: 0}
}

// WithRoot sets the root vertex. Negative values are an option violation.
func WithRoot(v int) Option {
	return func(o *Options) {
		if v < 0 {
			o.err = fmt.Errorf("WithRoot(%d): %w", v, ErrOptionViolation)
			return
		}
		o.Root = v
	}
}

// Segment is a contiguous range of one chain walked from First to Last
// (local indices, both inclusive). First > Last means the walk goes towards
// the chain head.
type Segment struct {
	PathID int
	First  int
	Last   int
}

// Len returns the number of vertices covered.
func (s Segment) Len() int {
	return s.Hi() - s.Lo()
}

// Lo returns the smaller local index.
func (s Segment) Lo() int {
	return min(s.First, s.Last)
}

// Hi returns one past the larger local index, so [Lo, Hi) is the range.
func (s Segment) Hi() int {
	return max(s.First, s.Last) + 1
}

// Reversed reports whether the segment walks towards the chain head.
func (s Segment) Reversed() bool {
	return s.First > s.Last
}
