// Package tsp - cost utilities shared by all solvers.
//
// This file provides the tour evaluator: the total cost of a closed tour
// given as a permutation of city indices. The closing edge from the last city
// back to the first is always added; tours never repeat the start city.
//
// Design:
//   - Fast path for *matrix.Dense and generic path for any matrix.Matrix.
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//   - Solvers sum over their prefetched buffer with cycleCost, which uses the
//     same edge order and rounding, so a returned cost equals TourCost of the
//     returned tour bit for bit.
//
// Complexity:
//   - O(n) time for a tour of length n, O(n) extra space for permutation checks.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspsearch/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns d[t0][t1] + d[t1][t2] + … + d[t(n-1)][t0].
//
// Contract:
//   - dist must be square (n×n), n ≥ 1.
//   - tour must be a permutation of {0..n-1} (len(tour) == n).
//   - Returns ErrNonSquare, ErrDimensionMismatch, ErrInvalidTour,
//     ErrIncompleteGraph (±Inf edge) or ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if err := ValidatePermutation(tour, nr); err != nil {
		return 0, err
	}

	var (
		sum  float64
		w    float64
		u, v int
		i    int
		err  error
		n    = nr
	)
	for i = 0; i < n; i++ {
		u = tour[i]
		v = tour[(i+1)%n]
		if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		if err = checkEdge(u, v, w); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// checkEdge applies the per-edge sentinel policy of TourCost.
func checkEdge(u, v int, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("d[%d][%d] is NaN: %w", u, v, ErrDimensionMismatch)
	}
	if math.IsInf(w, 0) {
		return fmt.Errorf("d[%d][%d]=%g: %w", u, v, w, ErrIncompleteGraph)
	}
	if w < 0 {
		return fmt.Errorf("d[%d][%d]=%g: %w", u, v, w, ErrNegativeWeight)
	}
	return nil
}

// cycleCost is the unchecked evaluator over a prefetched buffer w[u*n+v].
// The caller guarantees that tour is a permutation of {0..n-1}.
//
// Complexity: O(n).
func cycleCost(w []float64, n int, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += w[tour[i]*n+tour[i+1]]
	}
	sum += w[tour[n-1]*n+tour[0]]

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Infinities pass through unchanged.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*roundScale) / roundScale
}

func isInf(x float64) bool { return math.IsInf(x, 1) }
