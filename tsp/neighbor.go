package tsp

import "math/rand"

// SwapNeighbor returns a copy of tour with the cities at two distinct,
// uniformly chosen positions exchanged. The input is never mutated.
// It is the only move operator of TSPAnnealing and TSPTabu.
//
// Errors: ErrDimensionMismatch if len(tour) < 2 or rng is nil.
//
// Complexity: O(n) for the copy, O(1) for the move.
func SwapNeighbor(tour []int, rng *rand.Rand) ([]int, error) {
	if len(tour) < 2 || rng == nil {
		return nil, ErrDimensionMismatch
	}
	return swapNeighbor(tour, rng), nil
}

// swapNeighbor is SwapNeighbor without argument checks.
func swapNeighbor(tour []int, rng *rand.Rand) []int {
	out := CopyTour(tour)
	i, j := distinctPair(len(out), rng)
	out[i], out[j] = out[j], out[i]
	return out
}
