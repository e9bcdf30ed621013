// Package tsp - tabu search over swap neighborhoods.
//
// Algorithm (one run, all randomness from a single seeded source):
//  1. current := random permutation; best := current; empty TabuList.
//  2. For each of TabuIterations steps:
//     - neighbor := SwapNeighbor(current).
//     - Adopt neighbor as current if it is strictly cheaper than current,
//       or if the move (current[0], current[n-1]) is not in the tabu list.
//       The tabu test looks at the endpoints of the solution being left,
//       not at the neighbor.
//     - If neighbor is strictly cheaper than best, it becomes best whether
//       or not it was adopted.
//     - Push (current[0], current[n-1]) of the possibly new current,
//       evicting the oldest entry when the list holds MaxTabuSize moves.
//  3. Return best.
//
// Complexity: O(iterations · (n + MaxTabuSize)) time, O(n + MaxTabuSize) space.
package tsp

import "github.com/katalvlaran/tspsearch/matrix"

// TSPTabu runs the tabu loop and returns the best tour seen.
//
// Options read: Seed/RNG, TabuIterations, MaxTabuSize, OnProgress.
func TSPTabu(dist matrix.Matrix, opts Options) (TSResult, error) {
	n, w, err := prepare(dist, TabuSearch, opts)
	if err != nil {
		return TSResult{}, err
	}
	rng := rngFor(opts)

	tabu, err := NewTabuList(opts.MaxTabuSize)
	if err != nil {
		return TSResult{}, err
	}

	current, err := RandomTour(n, rng)
	if err != nil {
		return TSResult{}, err
	}
	best := CopyTour(current)
	bestCost := cycleCost(w, n, best)

	var (
		currentCost  float64
		neighbor     []int
		neighborCost float64
		iter         int
	)
	for iter = 0; iter < opts.TabuIterations; iter++ {
		neighbor = swapNeighbor(current, rng)
		currentCost = cycleCost(w, n, current)
		neighborCost = cycleCost(w, n, neighbor)

		if neighborCost < currentCost || !tabu.Contains(endpoints(current)) {
			current = neighbor
			currentCost = neighborCost
		}

		if neighborCost < bestCost {
			best = CopyTour(neighbor)
			bestCost = neighborCost
		}

		tabu.Push(endpoints(current))

		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Iteration:   iter,
				CurrentCost: currentCost,
				BestCost:    bestCost,
				TabuSize:    tabu.Len(),
			})
		}
	}

	return TSResult{Tour: best, Cost: bestCost}, nil
}

// endpoints is the tabu move of a solution: its first and last city.
func endpoints(tour []int) Move {
	return Move{From: tour[0], To: tour[len(tour)-1]}
}
