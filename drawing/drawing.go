package drawing

// Delta is a geometry-aware difference between two node positions. Its
// norm is the geodesic distance in the underlying space. Scale returns
// a new delta multiplied by a scalar; implementations are value types
// so scaling never aliases the receiver.
type Delta[D any] interface {
	Norm() float64
	Scale(a float64) D
}

// Drawing is a coordinate container for n nodes in some geometry.
// Nodes are addressed by their stable index in [0, n).
type Drawing[D Delta[D]] interface {
	// Len returns the number of nodes.
	Len() int
	// Delta returns the difference pointing from node j toward node i.
	Delta(i, j int) D
	// Displace moves node i by the given delta.
	Displace(i int, d D)
}

// Cartesian exposes per-axis coordinate access for geometries with
// meaningful axes. Axis k is valid in [0, Dims()).
type Cartesian interface {
	Len() int
	Dims() int
	Coord(i, k int) float64
	SetCoord(i, k int, v float64)
}
