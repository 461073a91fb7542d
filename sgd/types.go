package sgd

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/shortest"
)

// ErrDisconnectedForPivots indicates that sparse construction found a
// node with no finite distance to any pivot. This can only happen on a
// disconnected graph when the per-component pivot seeding is starved
// (fewer pivots than components). It wraps shortest.ErrDisconnected.
var ErrDisconnectedForPivots = fmt.Errorf("sgd: sparse construction: %w", shortest.ErrDisconnected)

const (
	// normFloor is the geometric floor below which a pair is skipped:
	// coincident nodes produce no usable direction.
	normFloor = 1e-6

	// DefaultAlpha is the default exponent of the distance-adjusted
	// variant: ideal distances are divided by geomD^Alpha.
	DefaultAlpha = 1.0

	// DefaultMinDistance is the default floor on adjusted distances,
	// keeping weights 1/d'² finite.
	DefaultMinDistance = 1e-3
)

// NodePair is one entry of the optimizer's working array. Dij is the
// ideal distance used for the force on I away from J, Dji likewise for
// J away from I; most constructions set them equal, the distance-
// adjusted variant records asymmetric effective distances. Wij and Wji
// weight the respective half-updates.
type NodePair struct {
	I, J     int
	Dij, Dji float64
	Wij, Wji float64
}

// Transform rewrites one directional distance or weight of a pair. It
// receives the pair's node indices and current (distance, weight) for
// the direction being rewritten and returns the new value.
type Transform func(i, j int, d, w float64) float64
