package shortest

import (
	"errors"

	"gonum.org/v1/gonum/graph"
)

// Sentinel errors for distance computations.
var (
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("shortest: graph is nil")
	// ErrNonPositiveLength indicates the length callback returned a value ≤ 0.
	ErrNonPositiveLength = errors.New("shortest: edge length must be strictly positive")
	// ErrSourceOutOfRange indicates a source index outside [0, n).
	ErrSourceOutOfRange = errors.New("shortest: source index out of range")
	// ErrDisconnected indicates a node unreachable from every chosen pivot.
	ErrDisconnected = errors.New("shortest: node unreachable from every pivot")
)

// Length maps an edge to its strictly positive length. It must be pure:
// repeated calls with the same edge return the same value. A nil Length
// means every edge has length 1 (and unweighted search is used).
type Length func(e graph.Edge) float64

// Weighted is a Length that reads gonum weighted edges. It panics when
// the edge does not carry a weight, which indicates a caller error.
func Weighted(e graph.Edge) float64 {
	return e.(graph.WeightedEdge).Weight()
}
