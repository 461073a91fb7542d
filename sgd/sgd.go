package sgd

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvldraw/drawing"
)

// Sgd holds the node-pair array and drives the iterative layout. The
// array has a fixed length for the lifetime of one run; entries change
// only through Shuffle (order) and the Update* transformers (values).
type Sgd struct {
	pairs []NodePair
}

// New wraps an existing pair array. The optimizer takes ownership of
// the slice.
func New(pairs []NodePair) *Sgd { return &Sgd{pairs: pairs} }

// Pairs returns the working array. Callers must treat it as read-only;
// use UpdateDistance / UpdateWeight to change entries.
func (s *Sgd) Pairs() []NodePair { return s.pairs }

// Shuffle randomly permutes the pair array in place. Shuffling between
// sweeps is the stochastic element of the algorithm.
func (s *Sgd) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(s.pairs), func(i, j int) {
		s.pairs[i], s.pairs[j] = s.pairs[j], s.pairs[i]
	})
}

// UpdateDistance rewrites both directional distances of every pair and
// commits the result to the working array.
func (s *Sgd) UpdateDistance(f Transform) {
	for idx := range s.pairs {
		p := &s.pairs[idx]
		p.Dij = f(p.I, p.J, p.Dij, p.Wij)
		p.Dji = f(p.J, p.I, p.Dji, p.Wji)
	}
}

// UpdateWeight rewrites both directional weights of every pair and
// commits the result to the working array.
func (s *Sgd) UpdateWeight(f Transform) {
	for idx := range s.pairs {
		p := &s.pairs[idx]
		p.Wij = f(p.I, p.J, p.Dij, p.Wij)
		p.Wji = f(p.J, p.I, p.Dji, p.Wji)
	}
}

// Scheduler builds the exponential scheduler for a run of tMax sweeps
// ending near the learning rate eps. The rate bounds come from the
// weight distribution: ηmax = 1/wmin so the cap μ = min(η·w, 1) binds
// only in early sweeps for the stiffest pairs, and ηmin = eps/wmax.
func (s *Sgd) Scheduler(tMax int, eps float64) *ExponentialScheduler {
	etaMin, etaMax := s.rates(eps)

	return NewExponentialScheduler(tMax, etaMin, etaMax)
}

// rates scans the non-zero weights for the learning-rate bounds. An
// array with no positive weight (or no pairs at all) degrades to the
// neutral bounds (eps, 1).
func (s *Sgd) rates(eps float64) (etaMin, etaMax float64) {
	wMin, wMax := math.Inf(1), 0.0
	for idx := range s.pairs {
		for _, w := range [2]float64{s.pairs[idx].Wij, s.pairs[idx].Wji} {
			if w <= 0 {
				continue
			}
			if w < wMin {
				wMin = w
			}
			if w > wMax {
				wMax = w
			}
		}
	}
	if wMax == 0 {
		return eps, 1
	}

	return eps / wMax, 1 / wMin
}

// Apply performs one full sweep over the drawing at learning rate eta.
// Pairs are processed in the current array order; every update is
// immediately visible to the pairs that follow. Pairs whose current
// geometric distance is below the numerical floor are skipped.
func Apply[D drawing.Delta[D]](s *Sgd, dr drawing.Drawing[D], eta float64) {
	for idx := range s.pairs {
		p := &s.pairs[idx]
		applyPair(dr, p.I, p.J, p.Dij, p.Dji, p.Wij, p.Wji, eta)
	}
}

// applyPair executes the update rule for a single pair.
func applyPair[D drawing.Delta[D]](dr drawing.Drawing[D], i, j int, dij, dji, wij, wji, eta float64) {
	// 1) Effective learning rates, capped at 1 to prevent overshoot
	//    past the midpoint.
	muI := math.Min(eta*wij, 1)
	muJ := math.Min(eta*wji, 1)

	// 2) Geometry-aware difference pointing from j to i.
	delta := dr.Delta(i, j)
	norm := delta.Norm()
	if norm < normFloor {
		return
	}

	// 3) Signed half-step magnitudes toward the ideal distances.
	rI := (norm - dij) / (2 * norm)
	rJ := (norm - dji) / (2 * norm)

	// 4) Move both endpoints. The same delta serves both half-updates.
	dr.Displace(i, delta.Scale(-rI*muI))
	dr.Displace(j, delta.Scale(rJ*muJ))
}
