package qpsc

import "github.com/katalvlaran/lvldraw/drawing"

// Size reports the extent of node i along axis k, in drawing units.
type Size func(i, k int) float64

// RectangleNoOverlapConstraints builds separation constraints along
// axis k that push apart every pair of node rectangles currently
// overlapping in all dimensions. The node centered earlier on axis k
// becomes the left side; the gap is the sum of the two half-extents, so
// satisfying the constraint makes the rectangles touch at most.
// O(n²) pair scan.
func RectangleNoOverlapConstraints(cart drawing.Cartesian, size Size, k int) []Constraint {
	n := cart.Len()
	dims := cart.Dims()

	// Precompute every rectangle's [lo, hi] interval per axis.
	lo := make([][]float64, n)
	hi := make([][]float64, n)
	for i := 0; i < n; i++ {
		lo[i] = make([]float64, dims)
		hi[i] = make([]float64, dims)
		for d := 0; d < dims; d++ {
			c := cart.Coord(i, d)
			half := size(i, d) / 2
			lo[i][d], hi[i][d] = c-half, c+half
		}
	}

	var constraints []Constraint
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if !rectOverlap(lo[i], hi[i], lo[j], hi[j]) {
				continue
			}
			gap := (hi[i][k] - lo[i][k] + hi[j][k] - lo[j][k]) / 2
			if cart.Coord(i, k) < cart.Coord(j, k) {
				constraints = append(constraints, NewConstraint(i, j, gap))
			} else {
				constraints = append(constraints, NewConstraint(j, i, gap))
			}
		}
	}

	return constraints
}

// rectOverlap reports whether two rectangles intersect with positive
// area, interval-wise in every dimension.
func rectOverlap(loA, hiA, loB, hiB []float64) bool {
	for d := range loA {
		if loA[d] >= hiB[d] || loB[d] >= hiA[d] {
			return false
		}
	}

	return true
}
