package sequence

import (
	"iter"

	"github.com/katalvlaran/lvpoly/polygon"
)

// All returns a traversal of (index, polygon) pairs in ascending
// edge-count order. Every call, and every range over the result, starts a
// fresh cursor at index 0; an earlier traversal, finished or abandoned,
// has no effect on a new one.
func (s *Sequence) All() iter.Seq2[int, polygon.RegularPolygon] {
	return func(yield func(int, polygon.RegularPolygon) bool) {
		for i, p := range s.polygons {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Values is All without the index.
func (s *Sequence) Values() iter.Seq[polygon.RegularPolygon] {
	return func(yield func(polygon.RegularPolygon) bool) {
		for _, p := range s.polygons {
			if !yield(p) {
				return
			}
		}
	}
}
