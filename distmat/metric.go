// Package distmat — metric policies.
//
// The reference material for this problem family is ambiguous about
// whether coordinates are planar units or geographic degrees, so the
// metric is an explicit policy chosen by the caller. Build defaults to
// Euclidean when given a nil Metric; nothing ever switches to geographic
// distance silently.
package distmat

import "math"

// earthRadiusM is the mean Earth radius in metres used by Haversine.
const earthRadiusM = 6371000.0

// Metric computes the distance between two points.
//
// Contracts:
//   - Dist(a, b) == Dist(b, a) for all a, b.
//   - Dist(a, a) == 0.
//   - Results are finite and non-negative.
type Metric interface {
	// Dist returns the distance between a and b.
	Dist(a, b Point) float64
	// Name identifies the policy ("euclidean", "haversine").
	Name() string
}

// Euclidean is the default planar metric: straight-line distance between
// coordinate pairs in whatever units the coordinates carry.
var Euclidean Metric = euclidean{}

// Haversine measures great-circle distance in metres, reading Point.X as
// longitude and Point.Y as latitude, both in degrees.
var Haversine Metric = haversine{}

type euclidean struct{}

func (euclidean) Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func (euclidean) Name() string { return "euclidean" }

type haversine struct{}

func (haversine) Dist(a, b Point) float64 {
	var (
		lat1 = a.Y * math.Pi / 180
		lat2 = b.Y * math.Pi / 180
		dLat = (b.Y - a.Y) * math.Pi / 180
		dLon = (b.X - a.X) * math.Pi / 180
	)
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

func (haversine) Name() string { return "haversine" }
