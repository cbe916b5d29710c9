// Package tsp — Genetic Algorithm (population-based heuristic).
//
// One generation is: tournament-select two parents per child, recombine
// with ordered crossover, swap-mutate with a fixed probability, and
// (optionally) carry the fittest individual over unchanged. The run
// executes exactly Generations iterations and returns the best
// individual observed anywhere along the way — not necessarily one from
// the final population.
//
// Operator notes:
//   - Ordered crossover copies the segment between two random cut points
//     verbatim from parent A, then fills the remaining positions
//     cyclically after the second cut with parent B's vertices in the
//     cyclic order they occur after that same cut. The child is a valid
//     permutation by construction, and crossing an individual with
//     itself reproduces it exactly.
//   - Mutation swaps two distinct positions.
//   - Elitism makes the per-generation fittest length non-increasing.
//
// Every random draw comes from the single seeded source, in a fixed
// order, so one seed pins the entire run.
//
// Complexity: Generations × PopulationSize children, each O(n); memory
// O(PopulationSize × n) plus the O(n²) dense prefetch.
package tsp

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// gaEngine owns all state of one genetic run.
type gaEngine struct {
	n   int
	w   []float64 // dense weights, w[u*n+v]
	cfg Config
	rng *rand.Rand

	pop     [][]int
	lengths []float64

	bestTour    []int
	bestLen     float64
	bestGen     int
	convergence []float64
}

// runGenetic executes the configured number of generations and returns
// the best tour observed, its length, and run metadata.
//
// Contracts: n ≥ 2, cfg validated, w is n×n row-major.
func runGenetic(w []float64, n int, cfg Config) ([]int, float64, Meta) {
	e := gaEngine{
		n:           n,
		w:           w,
		cfg:         cfg,
		rng:         rngFromSeed(cfg.Seed),
		pop:         make([][]int, cfg.PopulationSize),
		lengths:     make([]float64, cfg.PopulationSize),
		convergence: make([]float64, 0, cfg.Generations+1),
	}

	e.initialize()

	var g int
	for g = 1; g <= cfg.Generations; g++ {
		e.evolve(g)
	}

	meta := Meta{
		BestGeneration: e.bestGen,
		Convergence:    e.convergence,
		FinalMean:      stat.Mean(e.lengths, nil),
	}
	if cfg.PopulationSize > 1 {
		meta.FinalStdDev = stat.StdDev(e.lengths, nil)
	}

	return e.bestTour, e.bestLen, meta
}

// initialize fills generation 0 with independent uniformly-random
// permutations and records its fittest as the initial best.
func (e *gaEngine) initialize() {
	var i int
	for i = 0; i < len(e.pop); i++ {
		e.pop[i] = randomPerm(e.n, e.rng)
		e.lengths[i] = cycleLength(e.w, e.n, e.pop[i])
	}

	fi := e.fittest()
	e.bestTour = append([]int(nil), e.pop[fi]...)
	e.bestLen = e.lengths[fi]
	e.bestGen = 0
	e.convergence = append(e.convergence, e.lengths[fi])
}

// evolve replaces the population wholesale with generation g.
func (e *gaEngine) evolve(g int) {
	var (
		size   = len(e.pop)
		next   = make([][]int, size)
		offset = 0
		i      int
	)

	// The elite survives unchanged, displacing one generated child.
	if e.cfg.Elitism {
		fi := e.fittest()
		next[0] = append([]int(nil), e.pop[fi]...)
		offset = 1
	}

	for i = offset; i < size; i++ {
		p1 := e.pop[e.tournament()]
		p2 := e.pop[e.tournament()]
		child := e.crossover(p1, p2)
		if e.rng.Float64() < e.cfg.MutationProb {
			e.mutate(child)
		}
		next[i] = child
	}

	e.pop = next
	for i = 0; i < size; i++ {
		e.lengths[i] = cycleLength(e.w, e.n, e.pop[i])
	}

	fi := e.fittest()
	e.convergence = append(e.convergence, e.lengths[fi])
	if e.lengths[fi] < e.bestLen {
		e.bestLen = e.lengths[fi]
		copy(e.bestTour, e.pop[fi])
		e.bestGen = g
	}
}

// fittest returns the index of the minimum-length individual
// (lowest index on ties, for determinism).
func (e *gaEngine) fittest() int {
	var (
		best = 0
		i    int
	)
	for i = 1; i < len(e.pop); i++ {
		if e.lengths[i] < e.lengths[best] {
			best = i
		}
	}

	return best
}

// tournament samples TournamentSize individuals uniformly at random with
// replacement and returns the index of the shortest one.
func (e *gaEngine) tournament() int {
	var (
		best = e.rng.Intn(len(e.pop))
		k    int
		c    int
	)
	for k = 1; k < e.cfg.TournamentSize; k++ {
		c = e.rng.Intn(len(e.pop))
		if e.lengths[c] < e.lengths[best] {
			best = c
		}
	}

	return best
}

// crossover performs ordered crossover (OX) of parents a and b.
func (e *gaEngine) crossover(a, b []int) []int {
	var (
		n     = e.n
		child = make([]int, n)
		used  = make([]bool, n)
		lo    = e.rng.Intn(n)
		hi    = e.rng.Intn(n)
		i, k  int
		v     int
	)
	if lo > hi {
		lo, hi = hi, lo
	}

	// Segment [lo..hi] comes verbatim from parent A.
	for i = lo; i <= hi; i++ {
		child[i] = a[i]
		used[a[i]] = true
	}

	// Remaining positions fill cyclically after the segment, reading
	// parent B cyclically from the same point.
	pos := (hi + 1) % n
	for k = 0; k < n; k++ {
		v = b[(hi+1+k)%n]
		if used[v] {
			continue
		}
		child[pos] = v
		used[v] = true
		pos = (pos + 1) % n
	}

	return child
}

// mutate swaps two distinct random positions of t in place.
func (e *gaEngine) mutate(t []int) {
	if e.n < 2 {
		return
	}
	i := e.rng.Intn(e.n)
	j := e.rng.Intn(e.n - 1)
	if j >= i {
		j++
	}
	t[i], t[j] = t[j], t[i]
}
