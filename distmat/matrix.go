// Package distmat — the pairwise distance matrix.
//
// Build computes every unordered pair exactly once and stores the result
// in a symmetric dense matrix (gonum mat.SymDense), which makes the
// Distance(i,j)==Distance(j,i) invariant structural rather than a
// property the builder must maintain by hand.
package distmat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNoPoints is returned by Build when no points are supplied.
var ErrNoPoints = errors.New("distmat: at least one point required")

// ErrIndexOutOfRange is returned by index-taking accessors on misuse.
var ErrIndexOutOfRange = errors.New("distmat: point index out of range")

// Matrix is the read-only pairwise distance table over a point set.
// Built once by Build; never mutated afterwards. Safe for concurrent
// read-only use.
type Matrix struct {
	points []Point
	metric Metric
	d      *mat.SymDense
}

// Build computes all pairwise distances for points under metric.
// A nil metric selects Euclidean. The input slice is copied; later
// mutation of the caller's slice does not affect the matrix.
//
// Errors: ErrNoPoints when len(points) < 1.
//
// Complexity: O(n²) time and space.
func Build(points []Point, metric Metric) (*Matrix, error) {
	if len(points) < 1 {
		return nil, ErrNoPoints
	}
	if metric == nil {
		metric = Euclidean
	}

	var (
		n    = len(points)
		pts  = make([]Point, n)
		d    = mat.NewSymDense(n, nil)
		i, j int
	)
	copy(pts, points)

	// Upper triangle only; SetSym mirrors into the lower one.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, metric.Dist(pts[i], pts[j]))
		}
	}

	return &Matrix{points: pts, metric: metric, d: d}, nil
}

// Distance returns the distance between points i and j.
// Distance(i, j) == Distance(j, i) bit-exactly; Distance(i, i) == 0.
// Out-of-range indices panic (programmer error, same policy as gonum).
//
// Complexity: O(1).
func (m *Matrix) Distance(i, j int) float64 {
	return m.d.At(i, j)
}

// Len reports the number of points in the matrix.
func (m *Matrix) Len() int { return len(m.points) }

// Metric reports the policy the matrix was built with.
func (m *Matrix) Metric() Metric { return m.metric }

// Point returns the point at index i.
//
// Errors: ErrIndexOutOfRange (wrapped with the offending index).
func (m *Matrix) Point(i int) (Point, error) {
	if i < 0 || i >= len(m.points) {
		return Point{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return m.points[i], nil
}

// Points returns a fresh copy of the point set in index order.
// Copying keeps the matrix immutable from the caller's side.
//
// Complexity: O(n).
func (m *Matrix) Points() []Point {
	out := make([]Point, len(m.points))
	copy(out, m.points)
	return out
}
