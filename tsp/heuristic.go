// Package tsp - remaining-cost estimates for A*.
//
// The search loop only talks to the Heuristic interface, so the estimate can
// be swapped without touching astar.go. Two built-ins are provided:
//
//   - PermutationBound: for every ordering of the remaining cities, the cost
//     of leaving current, visiting them in that order and returning to
//     current; the minimum over all orderings. Exact for that relaxed
//     problem and factorial in its size: O(k·k!) for k remaining cities.
//     This is the reference behavior of TSPAStar.
//   - SpanningTreeBound: weight of a minimum spanning tree over current and
//     the remaining cities (Prim, O(k²)). Never larger than PermutationBound,
//     since every closed walk through the set contains a spanning tree.
package tsp

import (
	"math"

	"github.com/katalvlaran/tspsearch/matrix"
)

// Heuristic estimates the cost of completing a tour from current through
// every city in remaining. Implementations must not retain or mutate remaining.
type Heuristic interface {
	EstimateRemainingCost(current int, remaining []int) float64
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc func(current int, remaining []int) float64

// EstimateRemainingCost calls f(current, remaining).
func (f HeuristicFunc) EstimateRemainingCost(current int, remaining []int) float64 {
	return f(current, remaining)
}

// NewPermutationHeuristic returns the exhaustive PermutationBound over dist.
// +Inf entries are accepted and propagate into the estimate.
func NewPermutationHeuristic(dist matrix.Matrix) (Heuristic, error) {
	n, err := validateDistMatrix(dist, true, symTol)
	if err != nil {
		return nil, err
	}
	w, err := prefetch(dist, n)
	if err != nil {
		return nil, err
	}
	return newPermutationBound(w, n), nil
}

// NewSpanningTreeHeuristic returns the SpanningTreeBound over dist.
func NewSpanningTreeHeuristic(dist matrix.Matrix) (Heuristic, error) {
	n, err := validateDistMatrix(dist, true, symTol)
	if err != nil {
		return nil, err
	}
	w, err := prefetch(dist, n)
	if err != nil {
		return nil, err
	}
	return newSpanningTreeBound(w, n), nil
}

// heuristicFor resolves the estimate configured in opts over a prefetched buffer.
func heuristicFor(w []float64, n int, opts Options) Heuristic {
	if opts.CustomHeuristic != nil {
		return opts.CustomHeuristic
	}
	if opts.Heuristic == SpanningTreeBound {
		return newSpanningTreeBound(w, n)
	}
	return newPermutationBound(w, n)
}

// permutationBound enumerates orderings with Heap's algorithm.
// The scratch buffers are reused across calls; A* is single-threaded.
type permutationBound struct {
	n       int
	w       []float64
	perm    []int
	counter []int
}

func newPermutationBound(w []float64, n int) *permutationBound {
	return &permutationBound{
		n:       n,
		w:       w,
		perm:    make([]int, 0, n),
		counter: make([]int, n),
	}
}

// EstimateRemainingCost returns min over orderings p of remaining of
// d[current][p0] + d[p0][p1] + … + d[p(k-1)][current].
// An empty remaining set yields d[current][current].
func (pb *permutationBound) EstimateRemainingCost(current int, remaining []int) float64 {
	var k = len(remaining)
	if k == 0 {
		return pb.w[current*pb.n+current]
	}

	pb.perm = append(pb.perm[:0], remaining...)
	a := pb.perm
	c := pb.counter[:k]
	var i int
	for i = 0; i < k; i++ {
		c[i] = 0
	}

	best := pb.orderCost(current, a)
	var x float64
	i = 1
	for i < k {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if x = pb.orderCost(current, a); x < best {
				best = x
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}

	return best
}

// orderCost is the closed walk current → order... → current.
func (pb *permutationBound) orderCost(current int, order []int) float64 {
	var (
		n    = pb.n
		prev = current
		sum  float64
		v    int
	)
	for _, v = range order {
		sum += pb.w[prev*n+v]
		prev = v
	}
	return sum + pb.w[prev*n+current]
}

// spanningTreeBound runs Prim's O(k²) MST over {current} ∪ remaining.
type spanningTreeBound struct {
	n     int
	w     []float64
	nodes []int
	key   []float64
	in    []bool
}

func newSpanningTreeBound(w []float64, n int) *spanningTreeBound {
	return &spanningTreeBound{
		n:     n,
		w:     w,
		nodes: make([]int, 0, n+1),
		key:   make([]float64, n+1),
		in:    make([]bool, n+1),
	}
}

// EstimateRemainingCost returns the MST weight over current and remaining.
func (sb *spanningTreeBound) EstimateRemainingCost(current int, remaining []int) float64 {
	sb.nodes = append(append(sb.nodes[:0], current), remaining...)
	var (
		m     = len(sb.nodes)
		inf   = math.Inf(1)
		total float64
		i, it int
		u     int
		x     float64
	)
	for i = 0; i < m; i++ {
		sb.key[i] = inf
		sb.in[i] = false
	}
	sb.key[0] = 0

	for it = 0; it < m; it++ {
		u = -1
		for i = 0; i < m; i++ {
			if !sb.in[i] && (u == -1 || sb.key[i] < sb.key[u]) {
				u = i
			}
		}
		sb.in[u] = true
		total += sb.key[u]
		for i = 0; i < m; i++ {
			if sb.in[i] {
				continue
			}
			x = sb.w[sb.nodes[u]*sb.n+sb.nodes[i]]
			if x < sb.key[i] {
				sb.key[i] = x
			}
		}
	}

	return total
}
