// Package tsp — tour utilities shared by both solvers.
//
// A tour here is an open permutation of {0..n-1}: position n-1 connects
// implicitly back to position 0. Helpers are compact and
// allocation-conscious; none of them touch solver state.
package tsp

import (
	"fmt"
	"math"

	"tsptour/distmat"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// validatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("%w: tour length %d, want %d", ErrInvalidInput, len(perm), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour index %d out of range", ErrInvalidInput, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: tour repeats index %d", ErrInvalidInput, v)
		}
		seen[v] = true
	}
	return nil
}

// rotateToStart returns a fresh copy of perm cyclically shifted so that
// the element equal to start sits at position 0. The cyclic order (and
// therefore the tour length) is unchanged.
//
// Contract: start occurs in perm (guaranteed for valid permutations with
// start ∈ [0..n-1]).
//
// Complexity: O(n) time, O(n) space.
func rotateToStart(perm []int, start int) []int {
	var (
		n     = len(perm)
		pivot = 0
		i     int
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = perm[(pivot+i)%n]
	}
	return out
}

// prefetchDense loads the distance matrix into a flat row-major buffer
// to remove interface overhead from solver hot loops.
//
// Complexity: O(n²) time and space.
func prefetchDense(m *distmat.Matrix) []float64 {
	var (
		n    = m.Len()
		w    = make([]float64, n*n)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w[i*n+j] = m.Distance(i, j)
		}
	}
	return w
}

// cycleLength sums the closed-tour length of perm over the dense buffer
// w (row-major n×n), including the edge from the last point back to the
// first. The sum is stabilized to 1e-9.
//
// Complexity: O(n) time, O(1) space.
func cycleLength(w []float64, n int, perm []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(perm); i++ {
		sum += w[perm[i]*n+perm[(i+1)%len(perm)]]
	}
	return round1e9(sum)
}
