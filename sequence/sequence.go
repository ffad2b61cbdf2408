package sequence

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvpoly/polygon"
)

// Sequence is an immutable, ordered run of regular polygons with edge
// counts polygon.MinEdges..MaxEdgeCount and a shared circumradius.
// Members are handed out by value, so callers never alias the owned slice.
type Sequence struct {
	maxEdges int
	radius   float64
	polygons []polygon.RegularPolygon // polygons[i].EdgeCount() == i+polygon.MinEdges
}

// New builds every polygon with 3..maxEdges edges and the given circumradius.
// Returns an error wrapping polygon.ErrInvalidArgument if maxEdges < 3.
// Complexity: O(maxEdges) time and memory.
func New(maxEdges int, circumradius float64) (*Sequence, error) {
	if maxEdges < polygon.MinEdges {
		return nil, fmt.Errorf("%w: max edge count %d, want >= %d", polygon.ErrInvalidArgument, maxEdges, polygon.MinEdges)
	}
	polys := make([]polygon.RegularPolygon, 0, maxEdges-polygon.MinEdges+1)
	for n := polygon.MinEdges; n <= maxEdges; n++ {
		p, err := polygon.New(n, circumradius)
		if err != nil {
			return nil, fmt.Errorf("sequence: build %d-gon: %w", n, err)
		}
		polys = append(polys, p)
	}

	return &Sequence{maxEdges: maxEdges, radius: circumradius, polygons: polys}, nil
}

// Len returns the number of polygons, MaxEdgeCount()-2.
func (s *Sequence) Len() int {
	return len(s.polygons)
}

// MaxEdgeCount returns the edge count of the last polygon.
func (s *Sequence) MaxEdgeCount() int {
	return s.maxEdges
}

// Circumradius returns the radius shared by every member.
func (s *Sequence) Circumradius() float64 {
	return s.radius
}

// At returns the polygon at zero-based index i; index 0 is the triangle.
// Returns an error wrapping ErrIndexOutOfRange if i < 0 or i >= Len().
func (s *Sequence) At(i int) (polygon.RegularPolygon, error) {
	if i < 0 || i >= len(s.polygons) {
		return polygon.RegularPolygon{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s.polygons))
	}

	return s.polygons[i], nil
}

// Polygons returns a copy of the members in ascending edge-count order.
func (s *Sequence) Polygons() []polygon.RegularPolygon {
	return slices.Clone(s.polygons)
}

// MaxEfficiency returns the polygon with the largest Area()/Perimeter().
// On an exact tie the member with fewer edges wins, i.e. the first one
// met in ascending order.
// Returns ErrEmptySequence on a zero-value Sequence.
func (s *Sequence) MaxEfficiency() (polygon.RegularPolygon, error) {
	if len(s.polygons) == 0 {
		return polygon.RegularPolygon{}, ErrEmptySequence
	}
	best := s.polygons[0]
	bestRatio := best.Efficiency()
	for _, p := range s.polygons[1:] {
		// strict > keeps the earliest member on ties
		if r := p.Efficiency(); r > bestRatio {
			best, bestRatio = p, r
		}
	}

	return best, nil
}

// String implements fmt.Stringer.
func (s *Sequence) String() string {
	return fmt.Sprintf("Sequence(m=%d, R=%g)", s.maxEdges, s.radius)
}
