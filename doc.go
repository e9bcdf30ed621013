// Package tspsearch solves small symmetric Travelling Salesman instances with
// three interchangeable strategies over one distance matrix.
//
// What is inside?
//
//	matrix/         - Matrix interface and the row-major Dense distance matrix
//	tsp/            - TourCost, SwapNeighbor and the solvers:
//	                  TSPAStar (best-first search, pluggable heuristic),
//	                  TSPAnnealing (simulated annealing),
//	                  TSPTabu (tabu search with a bounded FIFO list)
//	cities/         - seeded random cities (orb points, gofakeit names) and
//	                  Euclidean / great-circle distance matrices
//	render/         - Graphviz DOT output of a solved tour
//	cmd/tspsearch/  - CLI: astar | anneal | tabu, YAML config, slog logging
//
// Quick start:
//
//	cs, _ := cities.Random(8, 42)
//	dist, _ := cities.EuclideanMatrix(cs)
//	opts := tsp.DefaultOptions()
//	opts.Algo = tsp.SimulatedAnnealing
//	opts.Seed = 42
//	res, err := tsp.SolveWithMatrix(dist, opts)
//
// Library packages never log and never panic on user input; every failure is
// a sentinel error matched with errors.Is. Equal seeds give equal results.
package tspsearch
