package drawing

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Delta2D is the difference between two points in the Euclidean plane.
type Delta2D struct {
	V r2.Vec
}

// Norm returns the Euclidean length of the delta.
func (d Delta2D) Norm() float64 { return math.Hypot(d.V.X, d.V.Y) }

// Scale returns the delta multiplied by a.
func (d Delta2D) Scale(a float64) Delta2D { return Delta2D{V: r2.Scale(a, d.V)} }

// Euclidean2D stores one r2.Vec per node in the flat plane.
type Euclidean2D struct {
	pts []r2.Vec
}

// NewEuclidean2D returns a drawing of n nodes, all at the origin.
func NewEuclidean2D(n int) *Euclidean2D {
	return &Euclidean2D{pts: make([]r2.Vec, n)}
}

// InitialPlacement2D places n nodes on a phyllotaxis spiral:
// node i sits at radius 10·√i and angle π(3−√5)·i. The golden-angle
// increment spreads nodes evenly and never stacks two on one point,
// which the optimizer needs to produce a non-degenerate first sweep.
func InitialPlacement2D(n int) *Euclidean2D {
	d := NewEuclidean2D(n)
	for i := range d.pts {
		r := 10 * math.Sqrt(float64(i))
		theta := math.Pi * (3 - math.Sqrt(5)) * float64(i)
		d.pts[i] = r2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	return d
}

// Len returns the number of nodes.
func (d *Euclidean2D) Len() int { return len(d.pts) }

// Pos returns the position of node i.
func (d *Euclidean2D) Pos(i int) r2.Vec { return d.pts[i] }

// SetPos overwrites the position of node i.
func (d *Euclidean2D) SetPos(i int, p r2.Vec) { d.pts[i] = p }

// Delta returns pts[i] − pts[j].
func (d *Euclidean2D) Delta(i, j int) Delta2D {
	return Delta2D{V: r2.Sub(d.pts[i], d.pts[j])}
}

// Displace moves node i by dd.
func (d *Euclidean2D) Displace(i int, dd Delta2D) {
	d.pts[i] = r2.Add(d.pts[i], dd.V)
}

// Dims returns 2.
func (d *Euclidean2D) Dims() int { return 2 }

// Coord returns the axis-k coordinate of node i (0 = x, 1 = y).
func (d *Euclidean2D) Coord(i, k int) float64 {
	if k == 0 {
		return d.pts[i].X
	}

	return d.pts[i].Y
}

// SetCoord overwrites the axis-k coordinate of node i.
func (d *Euclidean2D) SetCoord(i, k int, v float64) {
	if k == 0 {
		d.pts[i].X = v
		return
	}
	d.pts[i].Y = v
}
