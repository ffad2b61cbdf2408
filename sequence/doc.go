// Package sequence holds the regular polygons with 3..m edges that share
// one circumradius, and selects the one with the best area-to-perimeter
// ratio.
//
// What:
//
//   - Sequence owns polygon.RegularPolygon values for edge counts 3, 4, …, m,
//     built once by New and never changed afterwards.
//   - At gives indexed access; All and Values give lazy, restartable
//     traversals in ascending edge-count order.
//   - MaxEfficiency returns the member maximizing Area()/Perimeter().
//
// Complexity:
//
//   - New:           O(m) time and memory.
//   - Len, At:       O(1).
//   - All, Values:   O(m) per full traversal, O(1) extra memory.
//   - MaxEfficiency: O(m), single scan.
//
// Errors:
//
//   - polygon.ErrInvalidArgument: m below polygon.MinEdges.
//   - ErrIndexOutOfRange: At outside [0, Len()).
//   - ErrEmptySequence: MaxEfficiency on a zero-value Sequence.
package sequence
