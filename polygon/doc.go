// Package polygon models a regular polygon inscribed in a circle of a
// given circumradius and derives its measurements on demand.
//
// What:
//
//   - RegularPolygon is an immutable (edge count, circumradius) pair.
//   - Measurements (interior angle, side, apothem, area, perimeter,
//     efficiency) are closed-form functions of that pair, computed on read.
//   - Equality compares both fields exactly; ordering compares edge count only.
//
// Formulas (n = edge count, R = circumradius):
//
//	interior angle = (n-2)·180/n           degrees
//	side           = 2R·sin(π/n)
//	apothem        = R·cos(π/n)
//	area           = n/2 · side · apothem
//	perimeter      = n · side
//	efficiency     = area / perimeter
//
// Numeric policy:
//
//   - Plain float64 arithmetic, no rounding and no epsilon. Callers that
//     need approximate comparisons bring their own tolerance.
//   - The circumradius is stored as given; its sign is the caller's concern.
//
// Errors:
//
//   - ErrInvalidArgument: edge count below MinEdges.
//
// Concurrency: values never change after New, so any number of goroutines
// may read the same RegularPolygon.
package polygon
