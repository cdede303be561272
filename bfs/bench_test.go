package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillwalk/bfs"
	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/gridgraph"
)

// randomTerrain builds an n×n terrain with heights in [0,25].
func randomTerrain(b *testing.B, n int) *gridgraph.GridGraph {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = r.Intn(3) + y*25/n
		}
	}
	gg, err := gridgraph.New(grid)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return gg
}

// BenchmarkShortestDistances measures on-demand neighbor evaluation on 500×500.
func BenchmarkShortestDistances(b *testing.B) {
	gg := randomTerrain(b, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestDistances(gg, geom.C(0, 0))
	}
}

// BenchmarkShortestDistances_Cached measures the same search with the adjacency cache.
func BenchmarkShortestDistances_Cached(b *testing.B) {
	gg := randomTerrain(b, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestDistances(gg, geom.C(0, 0), bfs.WithCachedAdjacency())
	}
}
