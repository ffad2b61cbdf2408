package polygon

import "errors"

// MinEdges is the smallest edge count that forms a polygon.
const MinEdges = 3

// ErrInvalidArgument indicates a constructor argument outside its domain.
var ErrInvalidArgument = errors.New("polygon: invalid argument")

// RegularPolygon is a regular polygon with all vertices on a circle of
// radius Circumradius. The zero value is not a valid polygon; use New.
type RegularPolygon struct {
	edges  int     // number of edges (== vertices), always >= MinEdges
	radius float64 // circumradius
}

// Regular is implemented by RegularPolygon and, through embedding, by any
// struct that wraps one. EqualAny and GreaterAny accept every Regular.
type Regular interface {
	Regular() RegularPolygon
}
