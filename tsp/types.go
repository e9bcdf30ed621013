package tsp

import (
	"errors"
	"math/rand"
)

// Sentinel errors. Every error returned by this package matches one of these
// via errors.Is; a few are wrapped with index context at the call site.
var (
	// ErrDimensionMismatch signals a malformed shape: nil matrix, n<2,
	// NaN weights, or tour/ID slices of the wrong length.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare signals a distance matrix with Rows() != Cols().
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal signals d[i][i] != 0 beyond tolerance.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix diagonal is not zero")

	// ErrNegativeWeight signals a negative travel cost.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrAsymmetry signals d[i][j] != d[j][i] beyond tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrIncompleteGraph signals an infinite travel cost where finite costs are required.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrStartOutOfRange signals Options.StartVertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidTour signals a tour that is not a permutation of {0..n-1}.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the cities")

	// ErrInvalidOptions signals an out-of-domain solver parameter.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnsupportedAlgorithm signals an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTooManyCities signals an A* run with the exhaustive permutation
	// heuristic on more than Options.MaxExactCities cities.
	ErrTooManyCities = errors.New("tsp: too many cities for exhaustive heuristic")

	// ErrSearchLimit signals an A* run that created more than
	// Options.MaxSearchNodes search nodes without closing a tour.
	ErrSearchLimit = errors.New("tsp: A* search node limit reached")
)

// Algorithm selects the solver used by SolveWithMatrix.
type Algorithm int

const (
	// AStarSearch is best-first search on f = g + h (see astar.go).
	AStarSearch Algorithm = iota
	// SimulatedAnnealing is temperature-driven stochastic local search (see anneal.go).
	SimulatedAnnealing
	// TabuSearch is memory-guided stochastic local search (see tabu.go).
	TabuSearch
)

// String returns the CLI/log name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AStarSearch:
		return "astar"
	case SimulatedAnnealing:
		return "anneal"
	case TabuSearch:
		return "tabu"
	default:
		return "unknown"
	}
}

// HeuristicKind selects the built-in A* remaining-cost estimate.
type HeuristicKind int

const (
	// PermutationBound enumerates every ordering of the remaining cities.
	// Factorial cost; usable only for very small instances.
	PermutationBound HeuristicKind = iota
	// SpanningTreeBound is the MST weight over the current and remaining cities.
	SpanningTreeBound
)

// VisitedScope selects how A* tracks committed cities.
type VisitedScope int

const (
	// SharedVisited keeps one set for the whole solve. Once a city is popped
	// it is excluded from every later expansion, so the search commits to a
	// single growing path. This is the default.
	SharedVisited VisitedScope = iota
	// PathVisited tracks the cities of each partial path separately
	// (n ≤ 64). Alternative orderings stay open in the frontier, so memory
	// grows with the number of partial paths; Options.MaxSearchNodes bounds it.
	PathVisited
)

// Literal defaults for the solvers.
const (
	DefaultInitialTemperature  = 1000.0
	DefaultCoolingRate         = 0.995
	DefaultAnnealingIterations = 5000
	DefaultTabuIterations      = 100
	DefaultMaxTabuSize         = 10
	DefaultMaxExactCities      = 10
	DefaultMaxSearchNodes      = 1 << 20
)

// Options configures every solver in this package. Start from
// DefaultOptions and override the fields you need.
type Options struct {
	// Algo selects the solver for SolveWithMatrix.
	Algo Algorithm

	// StartVertex is the root city for A*. Metaheuristics ignore it.
	StartVertex int

	// Seed feeds the per-call RNG when RNG is nil. Seed==0 maps to a fixed default.
	Seed int64

	// RNG, when non-nil, is the single random source for the call.
	// *rand.Rand is not goroutine-safe; do not share it across concurrent solves.
	RNG *rand.Rand

	// AllowInf admits +Inf off-diagonal entries (missing edges) for A*.
	// Metaheuristics always require a finite matrix.
	AllowInf bool

	// Heuristic selects the built-in A* estimate. Ignored if CustomHeuristic is set.
	Heuristic HeuristicKind

	// CustomHeuristic replaces the built-in estimate when non-nil.
	CustomHeuristic Heuristic

	// Visited selects the A* visited-set scope.
	Visited VisitedScope

	// MaxExactCities caps n when A* uses PermutationBound. 0 ⇒ DefaultMaxExactCities.
	MaxExactCities int

	// MaxSearchNodes caps the number of nodes one A* run may create.
	// 0 ⇒ DefaultMaxSearchNodes.
	MaxSearchNodes int

	// InitialTemperature is the annealing start temperature (> 0).
	InitialTemperature float64

	// CoolingRate is the per-iteration multiplicative decay, in (0, 1].
	CoolingRate float64

	// AnnealingIterations is the number of annealing steps (≥ 0).
	AnnealingIterations int

	// TabuIterations is the number of tabu-search steps (≥ 0).
	TabuIterations int

	// MaxTabuSize bounds the tabu list (≥ 1).
	MaxTabuSize int

	// OnProgress, when non-nil, is called once per metaheuristic iteration.
	OnProgress func(Progress)
}

// DefaultOptions returns Options with the literal solver defaults:
// A*, start 0, permutation heuristic, shared visited set,
// T0=1000, cooling 0.995, 5000 annealing steps, 100 tabu steps, tabu size 10.
func DefaultOptions() Options {
	return Options{
		Algo:                AStarSearch,
		StartVertex:         0,
		Seed:                0,
		Heuristic:           PermutationBound,
		Visited:             SharedVisited,
		MaxExactCities:      DefaultMaxExactCities,
		MaxSearchNodes:      DefaultMaxSearchNodes,
		InitialTemperature:  DefaultInitialTemperature,
		CoolingRate:         DefaultCoolingRate,
		AnnealingIterations: DefaultAnnealingIterations,
		TabuIterations:      DefaultTabuIterations,
		MaxTabuSize:         DefaultMaxTabuSize,
	}
}

// Progress is a per-iteration snapshot passed to Options.OnProgress.
type Progress struct {
	Iteration   int     // 0-based iteration index
	Temperature float64 // temperature used in this iteration (annealing only)
	CurrentCost float64 // cost of the current tour after the acceptance decision
	BestCost    float64 // best cost seen so far
	TabuSize    int     // tabu list length after the update (tabu only)
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is a permutation of {0..n-1}; the closing edge back to Tour[0] is implicit.
	// Nil when A* found no finite tour.
	Tour []int

	// Cost is the total closed-tour distance, or +Inf when no tour was found.
	Cost float64
}

// Found reports whether the result carries a finite tour.
func (r TSResult) Found() bool {
	return r.Tour != nil && !isInf(r.Cost)
}
