package sgd

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvldraw/drawing"
)

// DistanceAdjusted wraps an optimizer and rescales every ideal distance
// on the fly by a negative power of the pair's current drawing
// distance:
//
//	d' = max(MinDistance, d · ‖Δ‖^(−Alpha))
//	w' = 1/d'²
//
// Pairs that are already long in the drawing get shorter targets and
// vice versa, which evens out the edge-length distribution. The stored
// pair array is never modified; the adjustment is recomputed per pair
// on every sweep, so it tracks the moving layout.
type DistanceAdjusted struct {
	// Alpha is the adjustment exponent. 0 disables the adjustment,
	// larger values flatten the length distribution harder.
	Alpha float64

	// MinDistance floors the adjusted distance so weights stay finite.
	MinDistance float64

	base *Sgd
}

// NewDistanceAdjusted wraps base with the default Alpha and
// MinDistance. Tune the fields directly before the first sweep.
func NewDistanceAdjusted(base *Sgd) *DistanceAdjusted {
	return &DistanceAdjusted{
		Alpha:       DefaultAlpha,
		MinDistance: DefaultMinDistance,
		base:        base,
	}
}

// Base returns the wrapped optimizer.
func (a *DistanceAdjusted) Base() *Sgd { return a.base }

// Shuffle permutes the underlying pair array.
func (a *DistanceAdjusted) Shuffle(rng *rand.Rand) { a.base.Shuffle(rng) }

// Scheduler derives the learning-rate schedule from the unadjusted
// weights.
func (a *DistanceAdjusted) Scheduler(tMax int, eps float64) *ExponentialScheduler {
	return a.base.Scheduler(tMax, eps)
}

// ApplyWithDistanceAdjustment performs one sweep at learning rate eta
// with the distances of every pair adjusted against its current drawing
// distance. The delta measured for the adjustment is reused for the
// update itself.
func ApplyWithDistanceAdjustment[D drawing.Delta[D]](a *DistanceAdjusted, dr drawing.Drawing[D], eta float64) {
	for idx := range a.base.pairs {
		p := &a.base.pairs[idx]

		delta := dr.Delta(p.I, p.J)
		norm := delta.Norm()
		if norm < normFloor {
			continue
		}

		scale := math.Pow(norm, -a.Alpha)
		dij := math.Max(a.MinDistance, p.Dij*scale)
		dji := math.Max(a.MinDistance, p.Dji*scale)
		wij := 1 / (dij * dij)
		wji := 1 / (dji * dji)

		muI := math.Min(eta*wij, 1)
		muJ := math.Min(eta*wji, 1)
		rI := (norm - dij) / (2 * norm)
		rJ := (norm - dji) / (2 * norm)
		dr.Displace(p.I, delta.Scale(-rI*muI))
		dr.Displace(p.J, delta.Scale(rJ*muJ))
	}
}
