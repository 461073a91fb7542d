package drawing

import "math"

// DeltaVec is the difference between two points in n-dimensional
// Euclidean space.
type DeltaVec struct {
	V []float64
}

// Norm returns the Euclidean length of the delta.
func (d DeltaVec) Norm() float64 {
	s := 0.0
	for _, v := range d.V {
		s += v * v
	}

	return math.Sqrt(s)
}

// Scale returns a fresh delta multiplied by a.
func (d DeltaVec) Scale(a float64) DeltaVec {
	out := make([]float64, len(d.V))
	for k, v := range d.V {
		out[k] = v * a
	}

	return DeltaVec{V: out}
}

// Euclidean stores node coordinates in flat d-dimensional space as one
// contiguous row-major slice.
type Euclidean struct {
	n, dims int
	x       []float64
}

// NewEuclidean returns a drawing of n nodes in dims dimensions, all at
// the origin.
func NewEuclidean(n, dims int) *Euclidean {
	return &Euclidean{n: n, dims: dims, x: make([]float64, n*dims)}
}

// Len returns the number of nodes.
func (d *Euclidean) Len() int { return d.n }

// Dims returns the dimensionality of the space.
func (d *Euclidean) Dims() int { return d.dims }

// Coord returns the axis-k coordinate of node i.
func (d *Euclidean) Coord(i, k int) float64 { return d.x[i*d.dims+k] }

// SetCoord overwrites the axis-k coordinate of node i.
func (d *Euclidean) SetCoord(i, k int, v float64) { d.x[i*d.dims+k] = v }

// Delta returns the component-wise difference x[i] − x[j].
func (d *Euclidean) Delta(i, j int) DeltaVec {
	out := make([]float64, d.dims)
	for k := 0; k < d.dims; k++ {
		out[k] = d.x[i*d.dims+k] - d.x[j*d.dims+k]
	}

	return DeltaVec{V: out}
}

// Displace moves node i by dd.
func (d *Euclidean) Displace(i int, dd DeltaVec) {
	for k, v := range dd.V {
		d.x[i*d.dims+k] += v
	}
}
