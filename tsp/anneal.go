// Package tsp - simulated annealing over swap neighborhoods.
//
// Algorithm (one run, all randomness from a single seeded source):
//  1. current := random permutation; best := current.
//  2. For each of AnnealingIterations steps at temperature T:
//     - neighbor := SwapNeighbor(current).
//     - Accept neighbor as current if it is strictly cheaper than current,
//       otherwise with probability exp((cost(current) − cost(neighbor)) / T).
//       The uniform draw is taken only when the neighbor is not strictly
//       cheaper.
//     - If neighbor is strictly cheaper than best, it becomes best whether
//       or not it was accepted.
//     - T *= CoolingRate.
//  3. Return best.
//
// With 0 < CoolingRate < 1 the temperature decays geometrically and strictly;
// at very low T the acceptance probability of a worse move underflows to 0,
// turning the walk into pure descent.
//
// Complexity: O(iterations · n) time, O(n) space.
package tsp

import (
	"math"

	"github.com/katalvlaran/tspsearch/matrix"
)

// TSPAnnealing runs the annealing loop and returns the best tour seen.
//
// Options read: Seed/RNG, InitialTemperature, CoolingRate,
// AnnealingIterations, OnProgress.
func TSPAnnealing(dist matrix.Matrix, opts Options) (TSResult, error) {
	n, w, err := prepare(dist, SimulatedAnnealing, opts)
	if err != nil {
		return TSResult{}, err
	}
	rng := rngFor(opts)

	current, err := RandomTour(n, rng)
	if err != nil {
		return TSResult{}, err
	}
	best := CopyTour(current)
	bestCost := cycleCost(w, n, best)

	var (
		temperature  = opts.InitialTemperature
		currentCost  float64
		neighbor     []int
		neighborCost float64
		iter         int
	)
	for iter = 0; iter < opts.AnnealingIterations; iter++ {
		neighbor = swapNeighbor(current, rng)
		currentCost = cycleCost(w, n, current)
		neighborCost = cycleCost(w, n, neighbor)

		if neighborCost < currentCost ||
			rng.Float64() < math.Exp((currentCost-neighborCost)/temperature) {
			current = neighbor
			currentCost = neighborCost
		}

		if neighborCost < bestCost {
			best = CopyTour(neighbor)
			bestCost = neighborCost
		}

		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Iteration:   iter,
				Temperature: temperature,
				CurrentCost: currentCost,
				BestCost:    bestCost,
			})
		}

		temperature *= opts.CoolingRate
	}

	return TSResult{Tour: best, Cost: bestCost}, nil
}
