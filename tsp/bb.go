// Package tsp — Branch-and-Bound (exact search with an admissible bound).
//
// The search enumerates partial tours rooted at the start vertex,
// depth-first, over an explicit frame stack (no recursion: the stack is
// an arena of frames addressed by depth, so deep instances cannot
// exhaust the call stack).
//
// Rationale (succinct):
//  1. The distance matrix is prefetched into a dense buffer to keep the
//     hot loop free of interface calls.
//  2. The incumbent (best known tour) is seeded with the trivial ring so
//     a timed-out search still returns a feasible tour, never nothing.
//  3. Bound: for every unvisited vertex, the cheapest edge to any other
//     unvisited vertex or to the current endpoint must eventually be
//     paid, so their sum added to the accumulated cost is a lower bound
//     on any completion. A node is pruned the moment that bound reaches
//     the incumbent length.
//  4. Branching order: from the current endpoint, unvisited candidates
//     are tried in ascending edge cost (index tiebreak), so cheap
//     completions are found early and tighten the incumbent fast.
//  5. Soft time limit: the deadline is polled every 4096 node events;
//     exceeding it stops the search immediately and is reported through
//     the proven flag, not as an error.
//
// Complexity: worst case exponential in n (exact search); per node O(n)
// for the bound plus O(1) state updates; memory O(n²) for the prefetch
// and O(n) for stack/visited/path.
package tsp

import (
	"sort"
	"time"
)

// deadlineMask spaces out time.Now calls: one check per 4096 node events.
const deadlineMask = 4095

// bbFrame is one level of the search: the endpoint of the partial tour,
// a cursor into its ordered candidate list, and the accumulated cost.
type bbFrame struct {
	vertex int
	cursor int
	cost   float64
}

// bbEngine holds all search data. A dedicated engine struct (instead of
// closures) keeps dependencies explicit and hot-path state predictable.
type bbEngine struct {
	n     int
	start int

	// Dense weights: w[u*n+v].
	w []float64

	// order[u] lists v≠u ascending by w[u→v], index tiebreak.
	order [][]int

	// Current search state.
	visited []bool
	path    []int // path[0:depth]; path[0] == start
	frames  []bbFrame

	// Incumbent.
	bestTour []int
	bestCost float64

	// Accounting and time budget.
	nodes    int64
	steps    int
	deadline time.Time
	timedOut bool
}

// branchAndBound runs the exact search and returns the best tour found,
// its length, the number of explored nodes, and whether the result is
// proven optimal (the whole tree was exhausted before the deadline).
//
// Contracts: n ≥ 2, 0 ≤ start < n, limit > 0, w is n×n row-major.
func branchAndBound(w []float64, n, start int, limit time.Duration) ([]int, float64, int64, bool) {
	e := bbEngine{
		n:        n,
		start:    start,
		w:        w,
		visited:  make([]bool, n),
		path:     make([]int, n),
		frames:   make([]bbFrame, 0, n),
		deadline: time.Now().Add(limit),
	}
	e.buildOrder()
	e.seedIncumbent()
	e.search()

	return e.bestTour, e.bestCost, e.nodes, !e.timedOut
}

// at is a fast accessor into the dense weight buffer.
func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// neighborOrder implements sort.Interface for one row of candidates.
type neighborOrder struct {
	u   int
	row []int
	e   *bbEngine
}

func (no neighborOrder) Len() int { return len(no.row) }
func (no neighborOrder) Less(i, j int) bool {
	vi, vj := no.row[i], no.row[j]
	wi, wj := no.e.at(no.u, vi), no.e.at(no.u, vj)
	if wi == wj {
		return vi < vj
	}

	return wi < wj
}
func (no *neighborOrder) Swap(i, j int) { no.row[i], no.row[j] = no.row[j], no.row[i] }

// buildOrder produces, for each u, the list of v≠u sorted ascending by
// edge cost. Deterministic branching keeps runs reproducible and lets
// low-cost completions tighten the incumbent early.
func (e *bbEngine) buildOrder() {
	var u, v int
	e.order = make([][]int, e.n)
	for u = 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v = 0; v < e.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		no := neighborOrder{u: u, row: row, e: e}
		sort.Sort(&no)
		e.order[u] = no.row
	}
}

// seedIncumbent installs the trivial ring start, start+1, …, wrap as the
// initial upper bound. Correctness is unaffected; pruning starts from a
// finite incumbent and a timed-out search always has a tour to return.
func (e *bbEngine) seedIncumbent() {
	e.bestTour = make([]int, e.n)
	var i int
	for i = 0; i < e.n; i++ {
		e.bestTour[i] = (e.start + i) % e.n
	}
	e.bestCost = cycleLength(e.w, e.n, e.bestTour)
}

// overDeadline performs a sparse deadline test (every 4096 node events).
func (e *bbEngine) overDeadline() bool {
	e.steps++
	if (e.steps & deadlineMask) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// lowerBound returns costSoFar plus, for every unvisited vertex, its
// minimum edge cost to any other unvisited vertex or to the current
// endpoint. Every unvisited vertex must eventually pay at least that
// much, so the value never exceeds the cost of any completion.
//
// Complexity: O(n²) worst case, O(u²) in the number of unvisited.
func (e *bbEngine) lowerBound(costSoFar float64, endpoint int) float64 {
	var (
		extra float64
		v, u  int
		best  float64
		c     float64
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		best = e.at(v, endpoint)
		for u = 0; u < e.n; u++ {
			if u == v || e.visited[u] {
				continue
			}
			c = e.at(v, u)
			if c < best {
				best = c
			}
		}
		extra += best
	}

	return costSoFar + extra
}

// search runs the iterative DFS. Each frame owns exactly one vertex;
// pushing marks it visited, popping unmarks it, so visited/path always
// mirror the frame stack.
func (e *bbEngine) search() {
	e.frames = append(e.frames, bbFrame{vertex: e.start})
	e.visited[e.start] = true
	e.path[0] = e.start

	var (
		fi    int
		depth int
		v     int
		c     float64
	)
	for len(e.frames) > 0 {
		if e.overDeadline() {
			e.timedOut = true

			return
		}

		fi = len(e.frames) - 1
		f := &e.frames[fi]
		depth = fi + 1

		// Leaf: close the cycle back to start.
		if depth == e.n {
			c = f.cost + e.at(f.vertex, e.start)
			if c < e.bestCost {
				copy(e.bestTour, e.path)
				e.bestCost = round1e9(c)
			}
			e.pop()

			continue
		}

		// Expand: next unvisited candidate in ascending edge order.
		pushed := false
		for f.cursor < len(e.order[f.vertex]) {
			v = e.order[f.vertex][f.cursor]
			f.cursor++
			if e.visited[v] {
				continue
			}
			e.nodes++
			c = f.cost + e.at(f.vertex, v)
			e.visited[v] = true
			e.path[depth] = v
			if e.lowerBound(c, v) >= e.bestCost {
				// Pruned: no completion through v can beat the incumbent.
				e.visited[v] = false

				continue
			}
			e.frames = append(e.frames, bbFrame{vertex: v, cost: c})
			pushed = true

			break
		}
		if !pushed {
			e.pop()
		}
	}
}

// pop retires the top frame and releases its vertex.
func (e *bbEngine) pop() {
	fi := len(e.frames) - 1
	e.visited[e.frames[fi].vertex] = false
	e.frames = e.frames[:fi]
}
