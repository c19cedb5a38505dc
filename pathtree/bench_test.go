package pathtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrange/graph"
	"github.com/katalvlaran/lvrange/lazysegtree"
	"github.com/katalvlaran/lvrange/pathtree"
	"github.com/katalvlaran/lvrange/segtree"
)

const benchN = 1 << 14

func BenchmarkTree_Query(b *testing.B) {
	g, err := graph.RandomTree(benchN, graph.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	pt, err := pathtree.New[int64](g, segtree.Sum[int64]{})
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pt.Query(rng.Intn(benchN), rng.Intn(benchN))
	}
}

func BenchmarkLazyTree_Modify(b *testing.B) {
	g, err := graph.RandomTree(benchN, graph.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	lt, err := pathtree.NewLazy[int64, prog](g, lazysegtree.ArithmeticAddSum[int64]{})
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lt.Modify(rng.Intn(benchN), rng.Intn(benchN), prog{Offset: 1, Delta: 1})
	}
}
