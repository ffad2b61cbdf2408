package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/lvpoly/sequence"
)

// ExampleSequence_MaxEfficiency lists the polygons up to a hexagon and
// picks the one with the best area-to-perimeter ratio.
func ExampleSequence_MaxEfficiency() {
	s, err := sequence.New(6, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s, "len", s.Len())
	for i, p := range s.All() {
		fmt.Printf("%d: %v ratio=%.4f\n", i, p, p.Efficiency())
	}

	best, _ := s.MaxEfficiency()
	fmt.Println("best:", best)

	// Output:
	// Sequence(m=6, R=1) len 4
	// 0: RegularPolygon(n=3, R=1) ratio=0.2500
	// 1: RegularPolygon(n=4, R=1) ratio=0.3536
	// 2: RegularPolygon(n=5, R=1) ratio=0.4045
	// 3: RegularPolygon(n=6, R=1) ratio=0.4330
	// best: RegularPolygon(n=6, R=1)
}

// ExampleSequence_At shows the out-of-range error.
func ExampleSequence_At() {
	s, _ := sequence.New(4, 1)
	p, _ := s.At(1)
	fmt.Println(p)

	_, err := s.At(2)
	fmt.Println(err)

	// Output:
	// RegularPolygon(n=4, R=1)
	// sequence: index out of range: index 2, length 2
}
