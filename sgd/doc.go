// Package sgd implements stress-minimizing graph layout by stochastic
// gradient descent over node pairs.
//
// The optimizer owns a flat array of node pairs. Each pair carries two
// node indices, an ideal distance per direction, and a weight per
// direction (typically 1/d², so short pairs dominate). One sweep visits
// every pair in the current array order and nudges both endpoints
// toward their ideal distance:
//
//	Δ  = drawing.Delta(i, j)        // geometry-aware, points j → i
//	r  = (‖Δ‖ − d) / (2‖Δ‖)        // signed half-correction
//	μ  = min(η·w, 1)                // per-pair learning rate, capped
//	move i by −μ·r·Δ and j by +μ·r'·Δ
//
// The cap at 1 is essential: it stops a stiff pair from throwing a node
// past the midpoint. Pairs closer than 1e-6 in the drawing are skipped;
// the sweep itself never fails.
//
// Pair arrays come from two builders:
//
//   - NewFull: every unordered pair at its exact shortest-path distance,
//     O(n²) pairs. Exact, and only affordable for small graphs.
//   - NewSparse: distances to h k-center pivots plus pairs inside each
//     pivot's graph-Voronoi region, O(nh) pairs. Region pairs route
//     through the shared pivot and are weighted by region size.
//
// Learning-rate decay is controlled by a Scheduler; five shapes are
// provided (constant, linear, quadratic, exponential, reciprocal), all
// running η from ηmax down to ηmin over a fixed number of ticks. The
// Scheduler factory on the optimizer derives ηmax = 1/wmin and
// ηmin = ε/wmax from the weight distribution, so the cap binds only in
// early sweeps for the stiffest pairs.
//
// The DistanceAdjusted wrapper rescales every ideal distance by a
// negative power of the current drawing distance on each sweep, which
// evens out the edge-length distribution at the cost of exactness.
//
// Apply is generic over the drawing's Delta type, so the inner loop
// dispatches statically for each of the supported geometries.
package sgd
