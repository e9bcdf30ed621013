// Package tsp_test - benchmarks for the tsp solvers.
//
// Policy:
//   - Deterministic geometry (rippled circles) and fixed seeds (seedDet).
//   - Pre-build all inputs outside the timer; measure only the solver.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspsearch/tsp"
)

// BenchmarkAStar_Permutation_n8 measures A* with the exhaustive heuristic.
func BenchmarkAStar_Permutation_n8(b *testing.B) {
	dist := euclid(rippledCircle(8))
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tsp.TSPAStar(dist, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAStar_SpanningTree_n40 measures A* with the MST estimate.
func BenchmarkAStar_SpanningTree_n40(b *testing.B) {
	dist := euclid(rippledCircle(40))
	opts := tsp.DefaultOptions()
	opts.Heuristic = tsp.SpanningTreeBound

	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tsp.TSPAStar(dist, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnneal_n50 measures the default 5000-step annealing run.
func BenchmarkAnneal_n50(b *testing.B) {
	dist := euclid(rippledCircle(50))
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet

	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tsp.TSPAnnealing(dist, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTabu_n50 measures the default 100-step tabu run.
func BenchmarkTabu_n50(b *testing.B) {
	dist := euclid(rippledCircle(50))
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet

	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tsp.TSPTabu(dist, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTourCost_n200 measures the checked evaluator.
func BenchmarkTourCost_n200(b *testing.B) {
	dist := euclid(rippledCircle(200))
	tour, _ := tsp.RandomTour(200, rand.New(rand.NewSource(seedDet)))

	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tsp.TourCost(dist, tour); err != nil {
			b.Fatal(err)
		}
	}
}
