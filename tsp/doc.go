// Package tsp provides symmetric Travelling Salesman Problem solvers over a
// distance matrix (matrix.Matrix).
//
// Three interchangeable strategies share one tour evaluator (TourCost) and
// one move operator (SwapNeighbor):
//
//   - TSPAStar: best-first search on f = g + h with a pluggable remaining-cost
//     Heuristic. The default PermutationBound enumerates every ordering of
//     the remaining cities, which is factorial: keep n ≲ 10.
//
//   - TSPAnnealing: swap-neighborhood walk with Metropolis acceptance
//     and geometric cooling (defaults T0=1000, rate 0.995, 5000 steps).
//
//   - TSPTabu: swap-neighborhood walk guided by a bounded FIFO TabuList
//     of (first city, last city) moves (defaults 100 steps, list size 10).
//
// Tours are permutations of {0..n-1}; the closing edge back to the first
// city is implicit. All solvers are single-threaded and synchronous, and the
// stochastic ones draw every random number from one seedable source
// (Options.Seed or Options.RNG), so equal seeds give equal results.
//
// Inputs must be square, symmetric, zero-diagonal and nonnegative; finite
// unless Options.AllowInf is set for A*. Violations fail fast with the
// sentinels in types.go. A* signals "no tour" with Cost = +Inf, not an error.
package tsp
