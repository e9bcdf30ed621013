// Package tsp - unified dispatcher for TSP solvers.
//
// SolveWithMatrix is the canonical entry point: it routes a distance matrix
// to the solver named by Options.Algo. Each solver validates its own inputs,
// so calling TSPAStar, TSPAnnealing or TSPTabu directly is equivalent.
//
// Design principles:
//   - Deterministic: seed routing to the stochastic solvers; no time-based randomness.
//   - Strict sentinels: only errors from types.go, wrapped with context where useful.
//   - Stable cost: all returned costs are rounded to 1e−9 to prevent FP drift.
package tsp

import "github.com/katalvlaran/tspsearch/matrix"

// SolveWithMatrix validates inputs and routes to the chosen algorithm.
//
// Errors: strict sentinels from types.go (e.g., ErrNonSquare, ErrAsymmetry,
// ErrIncompleteGraph, ErrInvalidOptions, ErrUnsupportedAlgorithm).
//
// Complexity: validation O(n²); the rest per algorithm:
//   - AStarSearch:        see astar.go (factorial with PermutationBound).
//   - SimulatedAnnealing: O(AnnealingIterations·n).
//   - TabuSearch:         O(TabuIterations·(n+MaxTabuSize)).
func SolveWithMatrix(dist matrix.Matrix, opts Options) (TSResult, error) {
	switch opts.Algo {
	case AStarSearch:
		return TSPAStar(dist, opts)
	case SimulatedAnnealing:
		return TSPAnnealing(dist, opts)
	case TabuSearch:
		return TSPTabu(dist, opts)
	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
}

// ParseAlgorithm maps a CLI/config name ("astar", "anneal", "tabu") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "astar", "a*":
		return AStarSearch, nil
	case "anneal", "annealing", "sa":
		return SimulatedAnnealing, nil
	case "tabu":
		return TabuSearch, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}
