// Package tsp_test — helpers shared across *_test.go files. Minimal on
// purpose: fixed instances, an independent length computation, and a
// permutation check, so solver tests never trust solver internals.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tsptour/distmat"
	"tsptour/tsp"
)

// ampleBudget is a time limit small instances never exhaust.
const ampleBudget = 30 * time.Second

// unitSquare is the canonical 4-point instance: perimeter 4, any tour
// using a diagonal is strictly longer.
func unitSquare() []distmat.Point {
	return []distmat.Point{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 0, Y: 1},
		{Name: "C", X: 1, Y: 1},
		{Name: "D", X: 1, Y: 0},
	}
}

// eightCities is the fixed 8-point regression instance.
func eightCities() []distmat.Point {
	return []distmat.Point{
		{Name: "P0", X: 2, Y: 7},
		{Name: "P1", X: 9, Y: 1},
		{Name: "P2", X: 4, Y: 4},
		{Name: "P3", X: 8, Y: 8},
		{Name: "P4", X: 1, Y: 2},
		{Name: "P5", X: 6, Y: 6},
		{Name: "P6", X: 3, Y: 9},
		{Name: "P7", X: 7, Y: 3},
	}
}

// randomPoints builds n points with coordinates drawn from a seeded rng,
// so every run of the suite sees the same instances.
func randomPoints(n int, seed int64) []distmat.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]distmat.Point, n)
	for i := range pts {
		pts[i] = distmat.Point{
			Name: "p" + string(rune('A'+i)),
			X:    rng.Float64() * 100,
			Y:    rng.Float64() * 100,
		}
	}
	return pts
}

// tourLen recomputes the cyclic Euclidean length of a tour
// independently of the solver's own arithmetic.
func tourLen(tour []distmat.Point) float64 {
	var sum float64
	for i := range tour {
		next := tour[(i+1)%len(tour)]
		sum += math.Hypot(tour[i].X-next.X, tour[i].Y-next.Y)
	}
	return sum
}

// requirePermutation asserts that tour visits every point of pts exactly
// once (same cardinality, no duplicates, full coverage).
func requirePermutation(t *testing.T, tour []distmat.Point, pts []distmat.Point) {
	t.Helper()
	require.Len(t, tour, len(pts))

	seen := make(map[string]bool, len(pts))
	for _, p := range tour {
		require.False(t, seen[p.Name], "point %s visited twice", p.Name)
		seen[p.Name] = true
	}
	for _, p := range pts {
		require.True(t, seen[p.Name], "point %s missing from tour", p.Name)
	}
}

// bruteForceLen returns the optimal cyclic length of pts by exhaustive
// permutation of everything after the fixed first point. Usable for
// n ≤ 8 or so.
func bruteForceLen(pts []distmat.Point) float64 {
	n := len(pts)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			var sum float64
			for i := 0; i < n; i++ {
				a, b := pts[order[i]], pts[order[(i+1)%n]]
				sum += math.Hypot(a.X-b.X, a.Y-b.Y)
			}
			if sum < best {
				best = sum
			}
			return
		}
		for i := k; i < n; i++ {
			order[k], order[i] = order[i], order[k]
			permute(k + 1)
			order[k], order[i] = order[i], order[k]
		}
	}
	permute(1) // first point fixed: cyclic tours need no rotation variants
	return best
}

// bnbConfig returns a Branch-and-Bound config with an ample budget.
func bnbConfig() tsp.Config {
	cfg := tsp.DefaultConfig()
	cfg.Algorithm = tsp.BranchAndBound
	cfg.TimeLimit = ampleBudget
	return cfg
}

// gaConfig returns a small, fast genetic config with a fixed seed.
func gaConfig(seed int64) tsp.Config {
	cfg := tsp.DefaultConfig()
	cfg.Algorithm = tsp.Genetic
	cfg.PopulationSize = 60
	cfg.Generations = 120
	cfg.Seed = seed
	return cfg
}
