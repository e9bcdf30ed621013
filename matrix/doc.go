// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance-matrix abstraction consumed by
// the tsp solvers.
//
// The package provides:
//
//   - Matrix: a minimal bounds-checked interface (Rows, Cols, At, Set, Clone)
//     so callers can plug their own storage.
//   - Dense: a row-major implementation backed by one flat []float64.
//   - Square/symmetry helpers used by builders in the cities package.
//
// Every public accessor returns a sentinel error (see errors.go) instead of
// panicking on bad indices.
package matrix
