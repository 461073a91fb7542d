package drawing

import "math"

// DeltaSpherical2D is a tangent vector at a point on the unit sphere.
// The tangent basis is only orthonormal on the equator, so its norm
// approximates the great-circle distance between the two points it was
// derived from.
type DeltaSpherical2D struct {
	X, Y float64
}

// Norm returns the geodesic length of the delta.
func (d DeltaSpherical2D) Norm() float64 { return math.Hypot(d.X, d.Y) }

// Scale returns the delta multiplied by a.
func (d DeltaSpherical2D) Scale(a float64) DeltaSpherical2D {
	return DeltaSpherical2D{X: d.X * a, Y: d.Y * a}
}

// Spherical2D stores node positions on the unit sphere as a longitude
// and a polar angle measured from the pole.
type Spherical2D struct {
	lon, lat []float64
}

// NewSpherical2D returns a drawing of n nodes, all at the reference
// point (0, π/2) on the equator.
func NewSpherical2D(n int) *Spherical2D {
	d := &Spherical2D{lon: make([]float64, n), lat: make([]float64, n)}
	for i := range d.lat {
		d.lat[i] = math.Pi / 2
	}

	return d
}

// InitialPlacementSpherical2D distributes n nodes on a Fibonacci
// lattice: golden-angle longitudes with polar angles spaced so that
// rings carry equal area.
func InitialPlacementSpherical2D(n int) *Spherical2D {
	d := NewSpherical2D(n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		d.lon[i] = math.Mod(golden*float64(i), 2*math.Pi)
		d.lat[i] = math.Acos(1 - 2*(float64(i)+0.5)/float64(n))
	}

	return d
}

// Len returns the number of nodes.
func (d *Spherical2D) Len() int { return len(d.lon) }

// Lon returns the longitude of node i.
func (d *Spherical2D) Lon(i int) float64 { return d.lon[i] }

// Lat returns the polar angle of node i.
func (d *Spherical2D) Lat(i int) float64 { return d.lat[i] }

// SetPos overwrites the coordinates of node i.
func (d *Spherical2D) SetPos(i int, lon, lat float64) {
	d.lon[i] = lon
	d.lat[i] = lat
}

// Delta maps node j into the tangent plane at node i.
func (d *Spherical2D) Delta(i, j int) DeltaSpherical2D {
	zx, zy := sphToTangent(d.lon[i], d.lat[i], d.lon[j], d.lat[j])

	return DeltaSpherical2D{X: zx, Y: zy}
}

// Displace moves node i along the geodesic described by dd.
func (d *Spherical2D) Displace(i int, dd DeltaSpherical2D) {
	d.lon[i], d.lat[i] = sphFromTangent(d.lon[i], d.lat[i], -dd.X, -dd.Y)
}

// sphToTangent projects point y into the tangent plane at x, scaled by
// the great-circle distance from x to y.
func sphToTangent(x0, x1, y0, y1 float64) (float64, float64) {
	ux := [3]float64{-math.Sin(x0) * math.Sin(x1), 0, math.Cos(x0) * math.Sin(x1)}
	vx := [3]float64{math.Cos(x0) * math.Cos(x1), -math.Sin(x1), math.Sin(x0) * math.Cos(x1)}
	ey := [3]float64{math.Cos(y0) * math.Sin(y1), math.Cos(y1), math.Sin(y0) * math.Sin(y1)}
	c := math.Sin(x1)*math.Sin(y1)*math.Cos(y0-x0) + math.Cos(x1)*math.Cos(y1)
	d := math.Acos(math.Max(-1, math.Min(1, c)))

	return d * (ux[0]*ey[0] + ux[1]*ey[1] + ux[2]*ey[2]),
		d * (vx[0]*ey[0] + vx[1]*ey[1] + vx[2]*ey[2])
}

// sphFromTangent walks from x along the tangent vector z and returns
// the end point, by rotating x about the axis normal to the geodesic.
func sphFromTangent(x0, x1, z0, z1 float64) (float64, float64) {
	ux := [3]float64{-math.Sin(x0) * math.Sin(x1), 0, math.Cos(x0) * math.Sin(x1)}
	vx := [3]float64{math.Cos(x0) * math.Cos(x1), -math.Sin(x1), math.Sin(x0) * math.Cos(x1)}
	p0, p1 := z1, -z0
	n := [3]float64{
		p0*ux[0] + p1*vx[0],
		p0*ux[1] + p1*vx[1],
		p0*ux[2] + p1*vx[2],
	}
	nd := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if nd == 0 {
		return x0, x1
	}
	n[0], n[1], n[2] = n[0]/nd, n[1]/nd, n[2]/nd

	ex := [3]float64{math.Cos(x0) * math.Sin(x1), math.Cos(x1), math.Sin(x0) * math.Sin(x1)}
	t := -math.Hypot(z0, z1)
	cosT, sinT := math.Cos(t), math.Sin(t)
	ey := [3]float64{
		(n[0]*n[0]*(1-cosT)+cosT)*ex[0] + (n[0]*n[1]*(1-cosT)-n[2]*sinT)*ex[1] + (n[2]*n[0]*(1-cosT)+n[1]*sinT)*ex[2],
		(n[0]*n[1]*(1-cosT)+n[2]*sinT)*ex[0] + (n[1]*n[1]*(1-cosT)+cosT)*ex[1] + (n[1]*n[2]*(1-cosT)-n[0]*sinT)*ex[2],
		(n[2]*n[0]*(1-cosT)-n[1]*sinT)*ex[0] + (n[1]*n[2]*(1-cosT)+n[0]*sinT)*ex[1] + (n[2]*n[2]*(1-cosT)+cosT)*ex[2],
	}

	return math.Atan2(ey[2], ey[0]), math.Acos(math.Max(-1, math.Min(1, ey[1])))
}
