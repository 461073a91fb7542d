package qpsc

import "github.com/katalvlaran/lvldraw/drawing"

// Project1D projects axis k of the drawing onto the feasible region of
// the given separation constraints, in place. The other axes are
// untouched.
func Project1D(cart drawing.Cartesian, k int, constraints []Constraint) error {
	n := cart.Len()
	g, err := New(cart, k, constraints)
	if err != nil {
		return err
	}
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = cart.Coord(i, k)
	}
	g.Project(x)
	for i := 0; i < n; i++ {
		cart.SetCoord(i, k, x[i])
	}

	return nil
}
