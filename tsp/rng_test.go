package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/tsp"
)

// TestRandomTour_Permutation checks shape and determinism of the random start.
func TestRandomTour_Permutation(t *testing.T) {
	a, err := tsp.RandomTour(12, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidatePermutation(a, 12))

	b, err := tsp.RandomTour(12, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	mustEqualInts(t, a, b)

	_, err = tsp.RandomTour(0, nil)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
}

// TestSwapNeighbor_ExactlyTwoPositions verifies the move contract over many draws.
func TestSwapNeighbor_ExactlyTwoPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	tour := []int{0, 1, 2, 3, 4, 5}
	orig := tsp.CopyTour(tour)

	Repeat(t, 200, func(t *testing.T) {
		nb, err := tsp.SwapNeighbor(tour, rng)
		require.NoError(t, err)
		mustEqualInts(t, tour, orig)
		require.NoError(t, tsp.ValidatePermutation(nb, len(tour)))

		var diff []int
		for i := range tour {
			if nb[i] != tour[i] {
				diff = append(diff, i)
			}
		}
		require.Len(t, diff, 2)
		require.Equal(t, tour[diff[0]], nb[diff[1]])
		require.Equal(t, tour[diff[1]], nb[diff[0]])
	})
}

// TestSwapNeighbor_TwoCities always swaps the only pair.
func TestSwapNeighbor_TwoCities(t *testing.T) {
	nb, err := tsp.SwapNeighbor([]int{0, 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	mustEqualInts(t, nb, []int{1, 0})
}

// TestSwapNeighbor_Errors rejects tours with fewer than two cities and a nil source.
func TestSwapNeighbor_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := tsp.SwapNeighbor([]int{0}, rng)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.SwapNeighbor(nil, rng)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.SwapNeighbor([]int{0, 1, 2}, nil)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)
}
