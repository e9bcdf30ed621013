// Package tsp - validation utilities shared by all solvers.
//
// This file contains small, tight helpers that:
//  1. Validate Options for the selected algorithm (ranges, heuristic guard).
//  2. Validate distance matrices (shape, diagonal, negativity, ∞, symmetry).
//  3. Prefetch a validated matrix into a flat buffer for hot loops.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspsearch/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// maxPathVisitedCities bounds PathVisited A*, whose visited sets are uint64 bitmasks.
const maxPathVisitedCities = 64

// prepare validates opts and dist for algo and returns the matrix order and a
// flat copy of the weights w[i*n+j].
//
// Complexity: O(n²) time and space.
func prepare(dist matrix.Matrix, algo Algorithm, opts Options) (int, []float64, error) {
	var (
		n   int
		err error
	)
	if err = validateOptions(algo, opts); err != nil {
		return 0, nil, err
	}

	allowInf := algo == AStarSearch && opts.AllowInf
	if n, err = validateDistMatrix(dist, allowInf, symTol); err != nil {
		return 0, nil, err
	}

	if algo == AStarSearch {
		if err = validateStartVertex(n, opts.StartVertex); err != nil {
			return 0, nil, err
		}
		if err = validateAStarSize(n, opts); err != nil {
			return 0, nil, err
		}
	}

	w, err := prefetch(dist, n)
	if err != nil {
		return 0, nil, err
	}

	return n, w, nil
}

// validateOptions checks the parameters the chosen algorithm reads.
// Fields of other algorithms are ignored so that a partially filled
// Options works for direct solver calls.
//
// Complexity: O(1).
func validateOptions(algo Algorithm, opts Options) error {
	switch algo {
	case AStarSearch:
		if opts.CustomHeuristic == nil {
			switch opts.Heuristic {
			case PermutationBound, SpanningTreeBound:
			default:
				return fmt.Errorf("heuristic %d: %w", opts.Heuristic, ErrInvalidOptions)
			}
		}
		switch opts.Visited {
		case SharedVisited, PathVisited:
		default:
			return fmt.Errorf("visited scope %d: %w", opts.Visited, ErrInvalidOptions)
		}
		if opts.MaxExactCities < 0 {
			return fmt.Errorf("MaxExactCities=%d: %w", opts.MaxExactCities, ErrInvalidOptions)
		}
		if opts.MaxSearchNodes < 0 {
			return fmt.Errorf("MaxSearchNodes=%d: %w", opts.MaxSearchNodes, ErrInvalidOptions)
		}

	case SimulatedAnnealing:
		// A non-positive or NaN temperature makes exp((c−n)/T) meaningless.
		if !(opts.InitialTemperature > 0) || math.IsInf(opts.InitialTemperature, 0) {
			return fmt.Errorf("InitialTemperature=%g: %w", opts.InitialTemperature, ErrInvalidOptions)
		}
		if !(opts.CoolingRate > 0 && opts.CoolingRate <= 1) {
			return fmt.Errorf("CoolingRate=%g: %w", opts.CoolingRate, ErrInvalidOptions)
		}
		if opts.AnnealingIterations < 0 {
			return fmt.Errorf("AnnealingIterations=%d: %w", opts.AnnealingIterations, ErrInvalidOptions)
		}

	case TabuSearch:
		if opts.TabuIterations < 0 {
			return fmt.Errorf("TabuIterations=%d: %w", opts.TabuIterations, ErrInvalidOptions)
		}
		if opts.MaxTabuSize < 1 {
			return fmt.Errorf("MaxTabuSize=%d: %w", opts.MaxTabuSize, ErrInvalidOptions)
		}

	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// validateAStarSize enforces the structural limits of A*:
// PathVisited needs n ≤ 64, and the exhaustive permutation heuristic is
// capped by MaxExactCities.
func validateAStarSize(n int, opts Options) error {
	if opts.Visited == PathVisited && n > maxPathVisitedCities {
		return fmt.Errorf("PathVisited supports at most %d cities, got %d: %w",
			maxPathVisitedCities, n, ErrTooManyCities)
	}
	if opts.CustomHeuristic != nil || opts.Heuristic != PermutationBound {
		return nil
	}
	limit := opts.MaxExactCities
	if limit == 0 {
		limit = DefaultMaxExactCities
	}
	if n > limit {
		return fmt.Errorf("n=%d > MaxExactCities=%d: %w", n, limit, ErrTooManyCities)
	}

	return nil
}

// validateStartVertex verifies that start∈[0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// ValidateDistances runs the full matrix validation used by every solver
// (finite entries required) and returns the matrix order. Callers that build
// a matrix once and solve it several times can check it up front.
func ValidateDistances(dist matrix.Matrix) (int, error) {
	return validateDistMatrix(dist, false, symTol)
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n>=2,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative off-diagonal distances,
//   - if !allowInf: reject +Inf off-diagonal,
//   - |a_ij − a_ji| ≤ tol (symmetric TSP only),
//   - NaN anywhere is invalid.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix, allowInf bool, tol float64) (int, error) {
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
	if nr == 1 {
		// A single city has no edge to travel; general solvers need n>=2.
		return 0, ErrDimensionMismatch
	}
	var n = nr

	var (
		i, j     int
		aij, aji float64
		err      error
	)

	for i = 0; i < n; i++ {
		aij, err = dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrDimensionMismatch
		}
		if math.Abs(aij) > tol {
			return 0, fmt.Errorf("d[%d][%d]=%g: %w", i, i, aij, ErrNonZeroDiagonal)
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) {
				return 0, fmt.Errorf("d[%d][%d] is NaN: %w", i, j, ErrDimensionMismatch)
			}
			if aij < 0 {
				return 0, fmt.Errorf("d[%d][%d]=%g: %w", i, j, aij, ErrNegativeWeight)
			}
			if math.IsInf(aij, 0) && !allowInf {
				return 0, fmt.Errorf("d[%d][%d]=%g: %w", i, j, aij, ErrIncompleteGraph)
			}
		}
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = dist.At(i, j)
			aji, _ = dist.At(j, i)
			if aij == aji {
				continue // also covers +Inf on both sides
			}
			if math.Abs(aij-aji) > tol {
				return 0, fmt.Errorf("d[%d][%d]=%g, d[%d][%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return n, nil
}

// prefetch copies a validated matrix into a dense buffer w[i*n + j] to remove
// interface indirection from hot loops. *matrix.Dense rows are copied directly.
//
// Complexity: O(n²).
func prefetch(dist matrix.Matrix, n int) ([]float64, error) {
	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
		err  error
	)
	if d, ok := dist.(*matrix.Dense); ok {
		var row []float64
		for i = 0; i < n; i++ {
			if row, err = d.Row(i); err != nil {
				return nil, ErrDimensionMismatch
			}
			copy(w[i*n:(i+1)*n], row)
		}
		return w, nil
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return nil, ErrDimensionMismatch
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}
