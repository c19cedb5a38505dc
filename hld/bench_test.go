package hld_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrange/graph"
	"github.com/katalvlaran/lvrange/hld"
)

const benchN = 1 << 15

func BenchmarkNew(b *testing.B) {
	g, err := graph.RandomTree(benchN, graph.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = hld.New(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPath(b *testing.B) {
	g, err := graph.RandomTree(benchN, graph.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	d, err := hld.New(g)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.ShortestPath(rng.Intn(benchN), rng.Intn(benchN))
	}
}
