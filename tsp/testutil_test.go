// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: fixtures, repeaters and sentinel assertions.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/tspsearch/matrix"
	"github.com/katalvlaran/tspsearch/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for the stochastic solvers.
	seedDet = int64(7)

	// startV is the canonical start vertex used across tests.
	startV = 0

	// fourCityCost is the optimal closed-tour cost of fourCities.
	fourCityCost = 80.0
)

// fourCities is the classic 4-city instance; the optimum 0→1→3→2→0 costs 80.
var fourCities = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests (square, bounds-checked, with Clone).
// testDense lets tests exercise the generic (non-*matrix.Dense) read path.
// -----------------------------------------------------------------------------

// testDense is a simple dense matrix with bounds-checked At/Set and deep Clone.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// mustDense builds a *matrix.Dense from rows, failing the test on error.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// copyRows deep-copies a fixture so a test may mutate it.
func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	var i int
	for i = range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}

	return out
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustValidResult asserts that res holds a permutation of n cities whose
// reported cost equals TourCost of the tour.
func mustValidResult(t *testing.T, dist matrix.Matrix, res tsp.TSResult, n int) {
	t.Helper()
	if err := tsp.ValidatePermutation(res.Tour, n); err != nil {
		t.Fatalf("tour %v: %v", res.Tour, err)
	}
	want, err := tsp.TourCost(dist, res.Tour)
	if err != nil {
		t.Fatalf("TourCost: %v", err)
	}
	if res.Cost != want {
		t.Fatalf("cost mismatch: got=%.17g TourCost=%.17g", res.Cost, want)
	}
}

// -----------------------------------------------------------------------------
// Geometric generators
// -----------------------------------------------------------------------------

// euclid builds a symmetric metric from 2D points with zero diagonal.
func euclid(pts [][2]float64) *matrix.Dense {
	n := len(pts)
	m, _ := matrix.NewDense(n, n)

	var (
		i, j   int
		dx, dy float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			_ = m.SetSymmetric(i, j, math.Hypot(dx, dy))
		}
	}

	return m
}

// rippledCircle places n points on a slightly perturbed unit circle so that
// the optimal tour is the circle order and ties are rare.
func rippledCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2.0 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// bruteForceOptimum enumerates every tour starting at 0 (n ≤ 8).
func bruteForceOptimum(t *testing.T, dist matrix.Matrix) float64 {
	t.Helper()
	n := dist.Rows()
	rest := make([]int, 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		rest = append(rest, i)
	}
	best := math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == len(rest) {
			tour := append([]int{0}, rest...)
			c, err := tsp.TourCost(dist, tour)
			if err != nil {
				t.Fatalf("TourCost: %v", err)
			}
			if c < best {
				best = c
			}
			return
		}
		var j int
		for j = k; j < len(rest); j++ {
			rest[k], rest[j] = rest[j], rest[k]
			walk(k + 1)
			rest[k], rest[j] = rest[j], rest[k]
		}
	}
	walk(0)

	return best
}
