package drawing

import "math"

// DeltaTorus2D is the difference between two points on the unit torus
// along the minimum-wrap representative.
type DeltaTorus2D struct {
	X, Y float64
}

// Norm returns the Euclidean length of the wrapped delta.
func (d DeltaTorus2D) Norm() float64 { return math.Hypot(d.X, d.Y) }

// Scale returns the delta multiplied by a.
func (d DeltaTorus2D) Scale(a float64) DeltaTorus2D {
	return DeltaTorus2D{X: d.X * a, Y: d.Y * a}
}

// Torus2D stores node positions on the unit torus: both coordinates
// live in [0, 1) and wrap around.
type Torus2D struct {
	x, y []float64
}

// NewTorus2D returns a drawing of n nodes, all at (0, 0).
func NewTorus2D(n int) *Torus2D {
	return &Torus2D{x: make([]float64, n), y: make([]float64, n)}
}

// InitialPlacementTorus2D spreads n nodes over the unit square with a
// golden-ratio sequence in x and even spacing in y.
func InitialPlacementTorus2D(n int) *Torus2D {
	d := NewTorus2D(n)
	golden := (math.Sqrt(5) - 1) / 2
	for i := 0; i < n; i++ {
		d.x[i] = wrapTorus(golden * float64(i))
		d.y[i] = (float64(i) + 0.5) / float64(n)
	}

	return d
}

// Len returns the number of nodes.
func (d *Torus2D) Len() int { return len(d.x) }

// Delta returns the minimum-wrap difference pointing from node j toward
// node i: of the nine translated copies of i, the one closest to j wins.
func (d *Torus2D) Delta(i, j int) DeltaTorus2D {
	x0, y0 := d.x[j], d.y[j]
	best := math.Inf(1)
	var bx, by float64
	for wy := -1; wy <= 1; wy++ {
		y1 := d.y[i] + float64(wy)
		for wx := -1; wx <= 1; wx++ {
			x1 := d.x[i] + float64(wx)
			if dd := math.Hypot(x1-x0, y1-y0); dd < best {
				best = dd
				bx, by = x1-x0, y1-y0
			}
		}
	}

	return DeltaTorus2D{X: bx, Y: by}
}

// Displace moves node i by dd, wrapping both coordinates into [0, 1).
func (d *Torus2D) Displace(i int, dd DeltaTorus2D) {
	d.x[i] = wrapTorus(d.x[i] + dd.X)
	d.y[i] = wrapTorus(d.y[i] + dd.Y)
}

// Dims returns 2.
func (d *Torus2D) Dims() int { return 2 }

// Coord returns the axis-k coordinate of node i (0 = x, 1 = y).
func (d *Torus2D) Coord(i, k int) float64 {
	if k == 0 {
		return d.x[i]
	}

	return d.y[i]
}

// SetCoord overwrites the axis-k coordinate of node i, wrapped into [0, 1).
func (d *Torus2D) SetCoord(i, k int, v float64) {
	if k == 0 {
		d.x[i] = wrapTorus(v)
		return
	}
	d.y[i] = wrapTorus(v)
}

// wrapTorus maps any value into [0, 1).
func wrapTorus(v float64) float64 {
	f := v - math.Floor(v)
	if f == 1 { // guard against -1e-17 rounding up
		return 0
	}

	return f
}
