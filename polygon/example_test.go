package polygon_test

import (
	"fmt"

	"github.com/katalvlaran/lvpoly/polygon"
)

// ExampleNew builds a unit square and prints its measurements.
func ExampleNew() {
	sq, err := polygon.New(4, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sq)
	fmt.Printf("angle=%.1f side=%.4f apothem=%.4f\n", sq.InteriorAngle(), sq.SideLength(), sq.Apothem())
	fmt.Printf("area=%.4f perimeter=%.4f\n", sq.Area(), sq.Perimeter())

	_, err = polygon.New(2, 1)
	fmt.Println(err)

	// Output:
	// RegularPolygon(n=4, R=1)
	// angle=90.0 side=1.4142 apothem=0.7071
	// area=2.0000 perimeter=5.6569
	// polygon: invalid argument: edge count 2, want >= 3
}

// ExampleRegularPolygon_EqualAny shows the not-comparable signal.
func ExampleRegularPolygon_EqualAny() {
	p, _ := polygon.New(3, 1)
	q, _ := polygon.New(3, 1)

	eq, ok := p.EqualAny(q)
	fmt.Println(eq, ok)
	eq, ok = p.EqualAny("triangle")
	fmt.Println(eq, ok)

	// Output:
	// true true
	// false false
}
