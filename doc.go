// Package lvpoly models regular polygons inscribed in a circle and the
// shape metrics derived from them.
//
// What is in the box?
//
//	polygon/      — RegularPolygon: immutable (edge count, circumradius) value
//	                with interior angle, side, apothem, area, perimeter,
//	                efficiency, equality and edge-count ordering
//	sequence/     — Sequence: polygons with 3..m edges sharing one radius,
//	                indexed access, restartable iteration, max-efficiency query
//	cmd/polygons/ — command line front end (describe, table, best)
//
// Everything is plain float64 arithmetic over immutable values: no I/O, no
// locks, no goroutines. Values may be shared freely between goroutines.
//
// Quick example:
//
//	s, _ := sequence.New(10, 1)
//	best, _ := s.MaxEfficiency() // RegularPolygon(n=10, R=1)
//
//	go get github.com/katalvlaran/lvpoly
package lvpoly
