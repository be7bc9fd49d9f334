package pathorder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/epicycles/pathorder"
)

// benchmarkOrder orders n random points inside a 512×512 box.
func benchmarkOrder(b *testing.B, o pathorder.Orderer, n int) {
	in := randomPoints(rand.New(rand.NewSource(1)), n, 512, 512)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = o.Order(in)
	}
}

// BenchmarkGreedy_2k benchmarks the linear scan on 2 000 points.
func BenchmarkGreedy_2k(b *testing.B) { benchmarkOrder(b, pathorder.Greedy{}, 2000) }

// BenchmarkKDTree_2k benchmarks the k-d tree on 2 000 points.
func BenchmarkKDTree_2k(b *testing.B) { benchmarkOrder(b, pathorder.KDTree{}, 2000) }

// BenchmarkKDTree_20k benchmarks the k-d tree on 20 000 points.
func BenchmarkKDTree_20k(b *testing.B) { benchmarkOrder(b, pathorder.KDTree{}, 20000) }
