// Package qpsc_test provides runnable examples for constraint
// projection.
package qpsc_test

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/qpsc"
)

// ExampleProject1D demonstrates enforcing minimum horizontal spacing on
// a small layout. Variable 1 sits too close to variable 0; projection
// spreads the pair symmetrically so the gap is met with minimal
// movement.
func ExampleProject1D() {
	// 1) A one-dimensional drawing with three variables.
	d := drawing.NewEuclidean(3, 1)
	d.SetCoord(0, 0, 0)
	d.SetCoord(1, 0, 1)
	d.SetCoord(2, 0, 3)

	// 2) Require gaps of 2 between 0→1 and 1 between 1→2.
	constraints := []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 2, 1),
	}

	// 3) Project in place.
	if err := qpsc.Project1D(d, 0, constraints); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The violated pair split the correction; variable 2 was fine.
	fmt.Printf("%.1f %.1f %.1f\n", d.Coord(0, 0), d.Coord(1, 0), d.Coord(2, 0))
	// Output: -0.5 1.5 3.0
}

// ExampleRectangleNoOverlapConstraints demonstrates generating and
// applying non-overlap constraints for unit squares.
func ExampleRectangleNoOverlapConstraints() {
	// 1) Two unit squares almost on top of each other.
	d := drawing.NewEuclidean2D(2)
	d.SetCoord(1, 0, 0.2)

	// 2) One constraint per overlapping pair, along the x axis.
	constraints := qpsc.RectangleNoOverlapConstraints(d, func(i, k int) float64 { return 1 }, 0)
	fmt.Println("constraints:", len(constraints))

	// 3) Projection pushes the squares until they just touch.
	if err := qpsc.Project1D(d, 0, constraints); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("gap: %.1f\n", d.Coord(1, 0)-d.Coord(0, 0))
	// Output:
	// constraints: 1
	// gap: 1.0
}
