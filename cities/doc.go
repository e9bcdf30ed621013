// SPDX-License-Identifier: MIT

// Package cities generates named city sets and turns them into distance
// matrices for the tsp solvers.
//
// Coordinates are orb.Point values. Random places cities uniformly in the
// square [0,100)×[0,100) and names them with gofakeit; both draws are driven
// by one seed so a run can be reproduced. EuclideanMatrix treats the points as
// planar; GeodesicMatrix reads them as (longitude, latitude) in degrees and
// returns great-circle distances in meters.
package cities
