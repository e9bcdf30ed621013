// Package tsp - tour utilities shared by all solvers.
//
// A tour is a permutation of {0..n-1} of length n; the edge from the last
// city back to the first is implicit. These helpers operate purely on index
// sequences, without touching distance matrices.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy of a tour slice.
//   - RotateTourToStart: cyclic shift so the tour starts at a given city.
//   - ReverseTour: same cycle, opposite direction, same first city.
//   - ClosedTour: tour with the first city appended (for renderers).
//   - EqualCycles: equality under rotation and reversal.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input, only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(perm) != n {
		return fmt.Errorf("len=%d, want %d: %w", len(perm), n, ErrInvalidTour)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("position %d: city %d out of range: %w", i, v, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("position %d: city %d repeated: %w", i, v, ErrInvalidTour)
		}
		seen[v] = true
	}
	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// RotateTourToStart returns a fresh copy of tour shifted cyclically so that
// out[0] == start. The cycle and its direction are unchanged.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	var n = len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	return out, nil
}

// ReverseTour returns the same cycle traversed in the opposite direction,
// keeping tour[0] in front: [a b c d] → [a d c b].
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour []int) []int {
	var n = len(tour)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	out[0] = tour[0]

	var i int
	for i = 1; i < n; i++ {
		out[i] = tour[n-i]
	}
	return out
}

// ClosedTour returns tour with its first city appended, i.e. the polyline
// a renderer draws. It returns nil for an empty tour.
func ClosedTour(tour []int) []int {
	if len(tour) == 0 {
		return nil
	}
	out := make([]int, len(tour)+1)
	copy(out, tour)
	out[len(tour)] = tour[0]
	return out
}

// EqualCycles reports whether a and b describe the same closed cycle,
// regardless of starting city and direction.
//
// Complexity: O(n) time.
func EqualCycles(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var n = len(a)
	if n == 0 {
		return true
	}
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	var i int
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[((p-i)%n+n)%n] {
			backward = false
		}
	}
	return forward || backward
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the implicit closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteString("[")
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[0]))
	sb.WriteString("]")
	return sb.String()
}
