package drawing

import "math"

// diskLimit keeps points strictly inside the Poincaré disk; positions
// are clamped to this radius after every displacement.
const diskLimit = 0.99

// DeltaHyperbolic2D is a tangent vector at a point of the Poincaré
// disk. Its norm equals the hyperbolic distance between the two points
// it was derived from.
type DeltaHyperbolic2D struct {
	X, Y float64
}

// Norm returns the hyperbolic length of the delta.
func (d DeltaHyperbolic2D) Norm() float64 { return math.Hypot(d.X, d.Y) }

// Scale returns the delta multiplied by a.
func (d DeltaHyperbolic2D) Scale(a float64) DeltaHyperbolic2D {
	return DeltaHyperbolic2D{X: d.X * a, Y: d.Y * a}
}

// Hyperbolic2D stores node positions inside the unit Poincaré disk.
type Hyperbolic2D struct {
	x, y []float64
}

// NewHyperbolic2D returns a drawing of n nodes, all at the disk center.
func NewHyperbolic2D(n int) *Hyperbolic2D {
	return &Hyperbolic2D{x: make([]float64, n), y: make([]float64, n)}
}

// InitialPlacementHyperbolic2D places n nodes on a golden-angle spiral
// scaled into the disk, radius growing toward diskLimit·√(i/n).
func InitialPlacementHyperbolic2D(n int) *Hyperbolic2D {
	d := NewHyperbolic2D(n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		r := diskLimit * math.Sqrt(float64(i)/float64(n))
		theta := golden * float64(i)
		d.x[i] = r * math.Cos(theta)
		d.y[i] = r * math.Sin(theta)
	}

	return d
}

// Len returns the number of nodes.
func (d *Hyperbolic2D) Len() int { return len(d.x) }

// Pos returns the disk coordinates of node i.
func (d *Hyperbolic2D) Pos(i int) (float64, float64) { return d.x[i], d.y[i] }

// SetPos overwrites the coordinates of node i.
func (d *Hyperbolic2D) SetPos(i int, x, y float64) {
	d.x[i] = x
	d.y[i] = y
}

// Delta maps node j into the tangent space at node i via the Möbius
// transform that carries i to the origin.
func (d *Hyperbolic2D) Delta(i, j int) DeltaHyperbolic2D {
	zx, zy := hypToTangent(d.x[i], d.y[i], d.x[j], d.y[j])

	return DeltaHyperbolic2D{X: zx, Y: zy}
}

// Displace moves node i along the hyperbolic geodesic described by dd.
func (d *Hyperbolic2D) Displace(i int, dd DeltaHyperbolic2D) {
	d.x[i], d.y[i] = hypFromTangent(d.x[i], d.y[i], -dd.X, -dd.Y)
}

// hypToTangent carries y through the Möbius transform centered at x and
// rescales the image radius r to the hyperbolic distance ln((1+r)/(1−r)).
func hypToTangent(x0, x1, y0, y1 float64) (float64, float64) {
	dx := y0 - x0
	dy := y1 - x1
	dr := 1 - x0*y0 - x1*y1
	di := x1*y0 - x0*y1
	den := dr*dr + di*di
	zx := (dr*dx + di*dy) / den
	zy := (dr*dy - di*dx) / den
	zn := math.Hypot(zx, zy)
	if zn < 1e-4 {
		return 0, 0
	}
	e := math.Log((1 + zn) / (1 - zn))
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return zx / zn, zy / zn
	}

	return zx / zn * e, zy / zn * e
}

// hypFromTangent inverts hypToTangent: the tangent vector z is mapped
// back to disk radius |1−eᶻ|/|1+eᶻ| and carried through the inverse
// Möbius transform, clamped to diskLimit.
func hypFromTangent(x0, x1, z0, z1 float64) (float64, float64) {
	zn := math.Hypot(z0, z1)
	var y0, y1 float64
	switch {
	case zn < 1e-4:
		y0, y1 = 0, 0
	case math.IsInf(math.Exp(zn), 1):
		y0, y1 = z0/zn, z1/zn
	default:
		e := math.Abs((1 - math.Exp(zn)) / (1 + math.Exp(zn)))
		y0, y1 = z0/zn*e, z1/zn*e
	}
	dx := -y0 - x0
	dy := -y1 - x1
	dr := -1 - x0*y0 - x1*y1
	di := x1*y0 - x0*y1
	den := dr*dr + di*di
	yx := (dr*dx + di*dy) / den
	yy := (dr*dy - di*dx) / den
	if math.Hypot(yx, yy) < diskLimit {
		return yx, yy
	}

	return yx * diskLimit, yy * diskLimit
}
