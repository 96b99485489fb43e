package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/roadwork/dijkstra"
)

func BenchmarkDijkstra_Grid30(b *testing.B) {
	g := randomGrid(b, 30, 30, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, dijkstra.Source(i%g.N()))
	}
}

func BenchmarkRelax_Grid30(b *testing.B) {
	g := randomGrid(b, 30, 30, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Relax(g, dijkstra.Source(i%g.N()))
	}
}
