package pathtree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrange/graph"
	"github.com/katalvlaran/lvrange/hld"
)

// Sentinel errors for path tree construction.
var (
	// ErrReverseRequired indicates a behavior that lacks the reversal
	// methods needed to fold or modify a path walked towards a chain head.
	ErrReverseRequired = errors.New("pathtree: behavior must implement reversal")

	// ErrValuesLength indicates that the number of initial values differs
	// from the number of vertices.
	ErrValuesLength = errors.New("pathtree: values length mismatch")
)

// Option configures the underlying decomposition.
type Option = hld.Option

// WithRoot roots the tree at vertex v (default 0).
func WithRoot(v int) Option {
	return hld.WithRoot(v)
}

// decompose builds the decomposition and checks values, when given, against
// its size.
func decompose[T any](g *graph.AdjacencyList, values []T, withValues bool, opts []Option) (*hld.Decomposition, error) {
	d, err := hld.New(g, opts...)
	if err != nil {
		return nil, err
	}
	if withValues && len(values) != d.Size() {
		return nil, fmt.Errorf("%d values for %d vertices: %w", len(values), d.Size(), ErrValuesLength)
	}

	return d, nil
}

// chainValues gathers the initial values of chain p in local index order.
func chainValues[T any](d *hld.Decomposition, values []T, p int) []T {
	xs := make([]T, d.PathLength(p))
	for i := range xs {
		xs[i] = values[d.Vertex(p, i)]
	}

	return xs
}
