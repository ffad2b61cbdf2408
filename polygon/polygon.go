package polygon

import (
	"fmt"
	"math"
)

// New returns the regular polygon with the given edge count and circumradius.
// Returns an error wrapping ErrInvalidArgument if edges < MinEdges.
// The circumradius is not validated.
func New(edges int, circumradius float64) (RegularPolygon, error) {
	if edges < MinEdges {
		return RegularPolygon{}, fmt.Errorf("%w: edge count %d, want >= %d", ErrInvalidArgument, edges, MinEdges)
	}

	return RegularPolygon{edges: edges, radius: circumradius}, nil
}

// EdgeCount returns the number of edges.
func (p RegularPolygon) EdgeCount() int {
	return p.edges
}

// VertexCount returns the number of vertices, which for a polygon equals
// the number of edges.
func (p RegularPolygon) VertexCount() int {
	return p.edges
}

// Circumradius returns the radius of the circumscribed circle.
func (p RegularPolygon) Circumradius() float64 {
	return p.radius
}

// InteriorAngle returns the interior angle in degrees: (n-2)·180/n.
// It is 60 for a triangle and tends to 180 as n grows.
func (p RegularPolygon) InteriorAngle() float64 {
	return float64(p.edges-2) * 180 / float64(p.edges)
}

// SideLength returns 2R·sin(π/n).
func (p RegularPolygon) SideLength() float64 {
	return 2 * p.radius * math.Sin(math.Pi/float64(p.edges))
}

// Apothem returns the distance from the center to the midpoint of a side:
// R·cos(π/n).
func (p RegularPolygon) Apothem() float64 {
	return p.radius * math.Cos(math.Pi/float64(p.edges))
}

// Area returns n/2 · side · apothem.
func (p RegularPolygon) Area() float64 {
	return float64(p.edges) / 2 * p.SideLength() * p.Apothem()
}

// Perimeter returns n · side.
func (p RegularPolygon) Perimeter() float64 {
	return float64(p.edges) * p.SideLength()
}

// Efficiency returns Area()/Perimeter(). For a fixed circumradius it
// grows strictly with the edge count.
func (p RegularPolygon) Efficiency() float64 {
	return p.Area() / p.Perimeter()
}

// String implements fmt.Stringer.
func (p RegularPolygon) String() string {
	return fmt.Sprintf("RegularPolygon(n=%d, R=%g)", p.edges, p.radius)
}
