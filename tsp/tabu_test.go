package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/tsp"
)

func tabuOpts() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.TabuSearch
	opts.Seed = seedDet
	return opts
}

// TestTabuList_FIFO checks capacity, eviction order and membership.
func TestTabuList_FIFO(t *testing.T) {
	tl, err := tsp.NewTabuList(3)
	require.NoError(t, err)
	require.Equal(t, 3, tl.Cap())
	require.Zero(t, tl.Len())

	var i int
	for i = 0; i < 5; i++ {
		tl.Push(tsp.Move{From: i, To: i + 1})
		require.LessOrEqual(t, tl.Len(), 3)
	}
	require.Equal(t, []tsp.Move{{From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 5}}, tl.Moves())
	require.True(t, tl.Contains(tsp.Move{From: 3, To: 4}))
	require.False(t, tl.Contains(tsp.Move{From: 0, To: 1}), "oldest entries are evicted")
	require.False(t, tl.Contains(tsp.Move{From: 4, To: 3}), "moves are ordered pairs")

	// Duplicates occupy their own slots.
	tl.Push(tsp.Move{From: 4, To: 5})
	require.Equal(t, []tsp.Move{{From: 3, To: 4}, {From: 4, To: 5}, {From: 4, To: 5}}, tl.Moves())

	_, err = tsp.NewTabuList(0)
	mustErrIs(t, err, tsp.ErrInvalidOptions)
}

// TestTabu_ValidAndConsistent checks the result contract on a geometric instance.
func TestTabu_ValidAndConsistent(t *testing.T) {
	dist := euclid(rippledCircle(9))
	res, err := tsp.TSPTabu(dist, tabuOpts())
	require.NoError(t, err)
	require.True(t, res.Found())
	mustValidResult(t, dist, res, 9)

	res, err = tsp.TSPTabu(testDense{a: copyRows(fourCities)}, tabuOpts())
	require.NoError(t, err)
	mustValidResult(t, testDense{a: fourCities}, res, 4)
}

// TestTabu_NeverWorseThanStart recreates the random start from the same seed.
func TestTabu_NeverWorseThanStart(t *testing.T) {
	dist := euclid(rippledCircle(10))
	start, err := tsp.RandomTour(10, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	startCost, err := tsp.TourCost(dist, start)
	require.NoError(t, err)

	res, err := tsp.TSPTabu(dist, tabuOpts())
	require.NoError(t, err)
	require.LessOrEqual(t, res.Cost, startCost)

	opts := tabuOpts()
	opts.TabuIterations = 0
	res, err = tsp.TSPTabu(dist, opts)
	require.NoError(t, err)
	mustEqualInts(t, res.Tour, start)
}

// TestTabu_Deterministic runs the same seed repeatedly.
func TestTabu_Deterministic(t *testing.T) {
	dist := euclid(rippledCircle(8))
	first, err := tsp.TSPTabu(dist, tabuOpts())
	require.NoError(t, err)

	Repeat(t, 3, func(t *testing.T) {
		again, err := tsp.TSPTabu(dist, tabuOpts())
		require.NoError(t, err)
		require.Equal(t, first, again)
	})
}

// TestTabu_ListBounded observes the list length through OnProgress.
func TestTabu_ListBounded(t *testing.T) {
	dist := euclid(rippledCircle(7))
	opts := tabuOpts()
	opts.MaxTabuSize = 4

	var trace []tsp.Progress
	opts.OnProgress = func(p tsp.Progress) { trace = append(trace, p) }

	res, err := tsp.TSPTabu(dist, opts)
	require.NoError(t, err)
	require.Len(t, trace, tsp.DefaultTabuIterations)

	var i int
	for i = 0; i < len(trace); i++ {
		require.Equal(t, min(i+1, 4), trace[i].TabuSize)
		if i > 0 {
			require.LessOrEqual(t, trace[i].BestCost, trace[i-1].BestCost)
		}
	}
	require.Equal(t, res.Cost, trace[len(trace)-1].BestCost)
}

// TestTabu_ReplaysAcceptanceRule rebuilds the whole run step by step from an
// identically seeded source. A neighbour replaces the current tour when it is
// strictly cheaper or when the current tour's (first, last) pair is not in the
// list; the pair of the resulting current tour is pushed afterwards.
func TestTabu_ReplaysAcceptanceRule(t *testing.T) {
	const seed = int64(11)
	dist := euclid(rippledCircle(6))
	opts := tabuOpts()
	opts.TabuIterations = 60
	opts.MaxTabuSize = 3
	opts.RNG = rand.New(rand.NewSource(seed))

	var got []tsp.Progress
	opts.OnProgress = func(p tsp.Progress) { got = append(got, p) }
	res, err := tsp.TSPTabu(dist, opts)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	tl, err := tsp.NewTabuList(opts.MaxTabuSize)
	require.NoError(t, err)
	current, err := tsp.RandomTour(6, rng)
	require.NoError(t, err)
	bestCost, err := tsp.TourCost(dist, current)
	require.NoError(t, err)

	var (
		want          []tsp.Progress
		blockedByList int
		iter          int
		endpointsOf   = func(tour []int) tsp.Move { return tsp.Move{From: tour[0], To: tour[len(tour)-1]} }
	)
	for iter = 0; iter < opts.TabuIterations; iter++ {
		neighbor, err := tsp.SwapNeighbor(current, rng)
		require.NoError(t, err)
		currentCost, err := tsp.TourCost(dist, current)
		require.NoError(t, err)
		neighborCost, err := tsp.TourCost(dist, neighbor)
		require.NoError(t, err)

		tabu := tl.Contains(endpointsOf(current))
		switch {
		case neighborCost < currentCost || !tabu:
			current, currentCost = neighbor, neighborCost
		case neighborCost > currentCost:
			blockedByList++
		}
		if neighborCost < bestCost {
			bestCost = neighborCost
		}
		tl.Push(endpointsOf(current))

		want = append(want, tsp.Progress{
			Iteration:   iter,
			CurrentCost: currentCost,
			BestCost:    bestCost,
			TabuSize:    tl.Len(),
		})
	}

	require.Equal(t, want, got)
	require.Equal(t, bestCost, res.Cost)
	require.Positive(t, blockedByList, "some uphill neighbours must be refused by the list")
}

// TestTabu_TabuEndpointsRefuseUphill pins the list's effect: the first step
// always moves (the list is empty), and from then on the current pair is the
// one pushed a step earlier, so only strictly cheaper neighbours are taken.
func TestTabu_TabuEndpointsRefuseUphill(t *testing.T) {
	dist := mustDense(t, fourCities)
	opts := tabuOpts()
	opts.TabuIterations = 40
	opts.MaxTabuSize = 1

	var trace []tsp.Progress
	opts.OnProgress = func(p tsp.Progress) { trace = append(trace, p) }
	_, err := tsp.TSPTabu(dist, opts)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seedDet))
	start, err := tsp.RandomTour(4, rng)
	require.NoError(t, err)
	first, err := tsp.SwapNeighbor(start, rng)
	require.NoError(t, err)
	firstCost, err := tsp.TourCost(dist, first)
	require.NoError(t, err)
	require.Equal(t, firstCost, trace[0].CurrentCost, "an empty list accepts any neighbour")

	var i int
	for i = 1; i < len(trace); i++ {
		require.LessOrEqual(t, trace[i].CurrentCost, trace[i-1].CurrentCost, "step %d", i)
		require.Equal(t, 1, trace[i].TabuSize)
	}
}

// TestTabu_OptionErrors covers the tabu parameter domain.
func TestTabu_OptionErrors(t *testing.T) {
	dist := mustDense(t, fourCities)

	opts := tabuOpts()
	opts.MaxTabuSize = 0
	_, err := tsp.TSPTabu(dist, opts)
	mustErrIs(t, err, tsp.ErrInvalidOptions)

	opts = tabuOpts()
	opts.TabuIterations = -3
	_, err = tsp.TSPTabu(dist, opts)
	mustErrIs(t, err, tsp.ErrInvalidOptions)

	rows := copyRows(fourCities)
	rows[1][3], rows[3][1] = math.Inf(1), math.Inf(1)
	_, err = tsp.TSPTabu(mustDense(t, rows), tabuOpts())
	mustErrIs(t, err, tsp.ErrIncompleteGraph)
}
