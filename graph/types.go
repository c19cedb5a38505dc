package graph

import (
	"errors"
	"math/rand"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrInvalidSize indicates a negative vertex count.
	ErrInvalidSize = errors.New("graph: invalid vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Size()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrUnreachable is returned by ShortestPath when t is not reachable from s.
	ErrUnreachable = errors.New("graph: vertex unreachable")

	// ErrNeedRandSource indicates that RandomTree was called without a RNG.
	ErrNeedRandSource = errors.New("graph: rng is required")
)

// Edge is a single outgoing edge. Only the destination is stored; the source
// is the vertex whose edge list holds it.
type Edge struct {
	// To is the destination vertex index.
	To int
}

// Option configures stochastic constructors such as RandomTree.
type Option func(*Options)

// Options holds the knobs shared by the constructors of this package.
type Options struct {
	// Rand is the random source; nil means "no randomness available".
	Rand *rand.Rand
}

// DefaultOptions returns Options with no random source.
func DefaultOptions() Options {
	return Options{Rand: nil}
}

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. A nil r leaves the option unchanged.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
