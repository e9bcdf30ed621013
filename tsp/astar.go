// Package tsp - A* best-first tour search.
//
// TSPAStar grows a tour from Options.StartVertex by repeatedly expanding the
// frontier node with the lowest f = g + h, where g is the accumulated path
// cost and h the remaining-cost estimate of the configured Heuristic.
//
// Search state:
//   - Nodes live in an arena ([]searchNode) and are addressed by integer
//     handle; each node stores its parent handle (parent == -1 for the root).
//   - The frontier is a container/heap of handles ordered by f, ties broken
//     by handle (insertion order). The tie-break only makes runs
//     reproducible; callers must not rely on it.
//   - The visited set is an explicit value handed to every step of the loop
//     (visitedSet). With SharedVisited one set serves the whole solve: it
//     only grows, a popped node whose city is already in it is stale and
//     dropped, and every later expansion skips its cities. The search
//     therefore commits to a single growing path (the order in which cities
//     entered the set) and does not revisit alternative orders. PathVisited
//     keeps a per-node bitmask instead, and the tour is the parent chain.
//
// Termination: when the popped node's visited set spans all cities the
// search stops. TSPAStar returns the committed order as the tour and its
// closed cost (always equal to TourCost of that tour). TSPAStarCost returns
// the g of the completing node plus its closing edge; under SharedVisited
// the completing node may descend from an older branch, so that value can
// differ from TSPAStar's cost. An exhausted frontier, or a +Inf tour (only
// possible with Options.AllowInf), yields TSResult{Cost: +Inf} with a nil
// tour and a nil error.
//
// Complexity:
//   - SharedVisited: at most n pops of fresh nodes and O(n²) pushes, each
//     push paying one heuristic call. With PermutationBound a call on k
//     remaining cities costs O(k·k!), so TSPAStar is only practical for n ≲ 10;
//     larger inputs are rejected with ErrTooManyCities (see MaxExactCities).
//   - PathVisited: exponential in n in the worst case; a run that creates
//     more than Options.MaxSearchNodes nodes stops with ErrSearchLimit.
package tsp

import (
	"container/heap"
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/tspsearch/matrix"
)

// TSPAStar runs best-first search from opts.StartVertex and returns the tour
// (starting at StartVertex) with its closed cost, Cost == TourCost(Tour).
//
// Options read: StartVertex, AllowInf, Heuristic, CustomHeuristic, Visited,
// MaxExactCities, MaxSearchNodes.
//
// Errors: validation sentinels from types.go, ErrSearchLimit. An unreachable
// tour is not an error; check TSResult.Found or math.IsInf(res.Cost, 1).
func TSPAStar(dist matrix.Matrix, opts Options) (TSResult, error) {
	e, vs, err := newAStarEngine(dist, opts)
	if err != nil {
		return TSResult{}, err
	}
	h, err := e.run(vs)
	if err != nil {
		return TSResult{}, err
	}
	if h < 0 {
		return TSResult{Cost: math.Inf(1)}, nil
	}

	tour := vs.tour(e.arena, h)
	cost := cycleCost(e.w, e.n, tour)
	if isInf(cost) {
		return TSResult{Cost: math.Inf(1)}, nil
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}

// TSPAStarCost runs the same search as TSPAStar and returns the g of the
// node that completed the visited set plus its edge back to the start:
// +Inf when no tour was found. Under PathVisited this equals TSPAStar's
// cost; under SharedVisited it can differ (see the package notes above).
func TSPAStarCost(dist matrix.Matrix, opts Options) (float64, error) {
	e, vs, err := newAStarEngine(dist, opts)
	if err != nil {
		return 0, err
	}
	h, err := e.run(vs)
	if err != nil {
		return 0, err
	}
	if h < 0 {
		return math.Inf(1), nil
	}
	last := e.arena[h]

	return round1e9(last.g + e.at(last.city, e.start)), nil
}

// newAStarEngine validates the input and selects the visited-set scope.
func newAStarEngine(dist matrix.Matrix, opts Options) (*astarEngine, visitedSet, error) {
	n, w, err := prepare(dist, AStarSearch, opts)
	if err != nil {
		return nil, nil, err
	}

	limit := opts.MaxSearchNodes
	if limit == 0 {
		limit = DefaultMaxSearchNodes
	}
	e := &astarEngine{
		n:        n,
		w:        w,
		start:    opts.StartVertex,
		h:        heuristicFor(w, n, opts),
		maxNodes: limit,
	}
	if opts.Visited == PathVisited {
		return e, pathVisited{n: n}, nil
	}

	return e, newSharedVisited(n), nil
}

// searchNode is one arena entry. path is only maintained for PathVisited.
type searchNode struct {
	city   int
	parent int // arena handle of the parent, -1 for the root
	g      float64
	h      float64
	path   uint64
}

func (s searchNode) f() float64 { return s.g + s.h }

// visitedSet decides which cities a node may still extend to.
type visitedSet interface {
	// enter commits the popped node; false means the node is stale.
	enter(node searchNode) bool
	// complete reports whether node closes the tour.
	complete(node searchNode) bool
	// blocked reports whether city cannot follow node.
	blocked(node searchNode, city int) bool
	// tour returns the city order that ends at the completing handle h.
	tour(arena []searchNode, h int) []int
}

// sharedVisited is one monotonically growing set for the whole solve.
// order records the cities in the order they entered the set.
type sharedVisited struct {
	seen  []bool
	order []int
}

func newSharedVisited(n int) *sharedVisited {
	return &sharedVisited{seen: make([]bool, n), order: make([]int, 0, n)}
}

func (s *sharedVisited) enter(node searchNode) bool {
	if s.seen[node.city] {
		return false
	}
	s.seen[node.city] = true
	s.order = append(s.order, node.city)
	return true
}

func (s *sharedVisited) complete(searchNode) bool { return len(s.order) == len(s.seen) }

func (s *sharedVisited) blocked(_ searchNode, city int) bool { return s.seen[city] }

func (s *sharedVisited) tour([]searchNode, int) []int { return CopyTour(s.order) }

// pathVisited reads the bitmask carried by each node.
type pathVisited struct{ n int }

func (pathVisited) enter(searchNode) bool { return true }

func (p pathVisited) complete(node searchNode) bool { return bits.OnesCount64(node.path) == p.n }

func (pathVisited) blocked(node searchNode, city int) bool { return node.path&(1<<uint(city)) != 0 }

// tour walks the parent handles of h back to the root.
func (p pathVisited) tour(arena []searchNode, h int) []int {
	tour := make([]int, 0, p.n)
	for ; h != -1; h = arena[h].parent {
		tour = append(tour, arena[h].city)
	}
	var i, j int
	for i, j = 0, len(tour)-1; i < j; i, j = i+1, j-1 {
		tour[i], tour[j] = tour[j], tour[i]
	}

	return tour
}

// astarEngine holds the per-solve search data.
type astarEngine struct {
	n        int
	w        []float64
	start    int
	h        Heuristic
	maxNodes int

	arena    []searchNode
	frontier nodeHeap
	scratch  []int // remaining-city buffer reused across expansions
}

func (e *astarEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// run drives the pop/commit/expand loop and returns the handle of the node
// that completed the visited set, or -1 when the frontier ran dry.
func (e *astarEngine) run(vs visitedSet) (int, error) {
	e.arena = make([]searchNode, 0, e.n*e.n)
	e.frontier = nodeHeap{arena: &e.arena}
	e.scratch = make([]int, 0, e.n)

	root := searchNode{city: e.start, parent: -1, path: 1 << uint(e.start)}
	root.h = e.h.EstimateRemainingCost(e.start, e.remaining(vs, root, e.start))
	e.push(root)

	var (
		h    int
		node searchNode
	)
	for e.frontier.Len() > 0 {
		h = heap.Pop(&e.frontier).(int)
		node = e.arena[h]

		if !vs.enter(node) {
			continue
		}
		if vs.complete(node) {
			return h, nil
		}
		if len(e.arena)+e.n > e.maxNodes {
			return -1, fmt.Errorf("%d nodes on %d cities: %w", len(e.arena), e.n, ErrSearchLimit)
		}
		e.expand(vs, h, node)
	}

	return -1, nil
}

// expand pushes one child per city not blocked by vs, in ascending city order.
func (e *astarEngine) expand(vs visitedSet, h int, node searchNode) {
	var next int
	for next = 0; next < e.n; next++ {
		if vs.blocked(node, next) {
			continue
		}
		child := searchNode{
			city:   next,
			parent: h,
			g:      node.g + e.at(node.city, next),
			path:   node.path | 1<<uint(next),
		}
		child.h = e.h.EstimateRemainingCost(next, e.remaining(vs, node, next))
		e.push(child)
	}
}

// remaining lists the cities left after node is extended by next.
// The slice aliases e.scratch and is only valid until the next call.
func (e *astarEngine) remaining(vs visitedSet, node searchNode, next int) []int {
	e.scratch = e.scratch[:0]
	var v int
	for v = 0; v < e.n; v++ {
		if v != next && v != node.city && !vs.blocked(node, v) {
			e.scratch = append(e.scratch, v)
		}
	}
	return e.scratch
}

func (e *astarEngine) push(node searchNode) {
	e.arena = append(e.arena, node)
	heap.Push(&e.frontier, len(e.arena)-1)
}

// nodeHeap is a min-heap of arena handles ordered by f, then by handle.
type nodeHeap struct {
	arena   *[]searchNode
	handles []int
}

func (q nodeHeap) Len() int { return len(q.handles) }

func (q nodeHeap) Less(i, j int) bool {
	a, b := q.handles[i], q.handles[j]
	fa, fb := (*q.arena)[a].f(), (*q.arena)[b].f()
	if fa == fb {
		return a < b
	}
	return fa < fb
}

func (q nodeHeap) Swap(i, j int) { q.handles[i], q.handles[j] = q.handles[j], q.handles[i] }

// Push adds a handle; called by heap.Push.
func (q *nodeHeap) Push(x any) { q.handles = append(q.handles, x.(int)) }

// Pop removes the last handle; called by heap.Pop.
func (q *nodeHeap) Pop() any {
	old := q.handles
	n := len(old)
	item := old[n-1]
	q.handles = old[:n-1]
	return item
}
