// SPDX-License-Identifier: MIT

package cities

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/brianvoe/gofakeit"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/tspsearch/matrix"
)

// Side is the edge length of the square Random draws coordinates from.
const Side = 100.0

var (
	// ErrTooFewCities signals a request for, or an input of, fewer than one city.
	ErrTooFewCities = errors.New("cities: at least one city is required")

	// ErrBadCoordinate signals a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("cities: coordinate is not finite")
)

// City is a named point.
type City struct {
	Name string
	Pos  orb.Point
}

// gofakeit draws from a package-level source; fakeMu serializes
// seed-then-draw sequences so concurrent callers stay reproducible.
var fakeMu sync.Mutex

// Random returns n cities with coordinates uniform in [0,Side)² and fake
// names. Equal seeds give equal cities. Names may repeat.
func Random(n int, seed int64) ([]City, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewCities)
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i].Pos = orb.Point{rng.Float64() * Side, rng.Float64() * Side}
	}

	fakeMu.Lock()
	gofakeit.Seed(seed)
	for i = 0; i < n; i++ {
		out[i].Name = gofakeit.City()
	}
	fakeMu.Unlock()

	return out, nil
}

// EuclideanMatrix returns the symmetric matrix of planar distances.
func EuclideanMatrix(cs []City) (*matrix.Dense, error) {
	return distanceMatrix(cs, planar.Distance)
}

// GeodesicMatrix returns the symmetric matrix of great-circle distances in
// meters, reading each Pos as (lon, lat).
func GeodesicMatrix(cs []City) (*matrix.Dense, error) {
	return distanceMatrix(cs, geo.Distance)
}

func distanceMatrix(cs []City, metric func(a, b orb.Point) float64) (*matrix.Dense, error) {
	var n = len(cs)
	if n < 1 {
		return nil, ErrTooFewCities
	}
	var i, j int
	for i = 0; i < n; i++ {
		if !finite(cs[i].Pos) {
			return nil, fmt.Errorf("city %d (%s): %w", i, cs[i].Name, ErrBadCoordinate)
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = m.SetSymmetric(i, j, metric(cs[i].Pos, cs[j].Pos)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func finite(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1]) && !math.IsInf(p[0], 0) && !math.IsInf(p[1], 0)
}

// Names returns the city names in order.
func Names(cs []City) []string {
	out := make([]string, len(cs))
	var i int
	for i = range cs {
		out[i] = cs[i].Name
	}
	return out
}
