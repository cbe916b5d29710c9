package distmat

import "fmt"

// Point is a named position on the plane (or, under the Haversine metric,
// on the globe with X=longitude and Y=latitude in degrees).
// Points are immutable value types: construct and copy freely.
type Point struct {
	Name string
	X    float64
	Y    float64
}

// String renders the point as "Name(x, y)" for logs and debug output.
func (p Point) String() string {
	return fmt.Sprintf("%s(%g, %g)", p.Name, p.X, p.Y)
}
