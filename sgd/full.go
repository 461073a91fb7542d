package sgd

import (
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvldraw/shortest"
)

// NewFull builds the exact pair array: one entry per unordered node pair
// at its shortest-path distance, weighted 1/d² in both directions.
// Unreachable pairs are omitted, so a disconnected graph still yields a
// usable (per-component) array. O(n²) pairs; use NewSparse beyond a few
// thousand nodes.
func NewFull(g graph.Graph, length shortest.Length) (*Sgd, error) {
	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	ix := shortest.NewIndex(g)
	d, err := shortest.AllPairs(g, ix, length)
	if err != nil {
		return nil, err
	}

	return NewFullWithMatrix(d), nil
}

// NewFullWithMatrix builds the exact pair array from a precomputed
// distance matrix, skipping pairs without a finite distance.
func NewFullWithMatrix(d *shortest.FullMatrix) *Sgd {
	n, _ := d.Shape()
	pairs := make([]NodePair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !d.HasFinite(i, j) {
				continue
			}
			dist := d.At(i, j)
			w := 1 / (dist * dist)
			pairs = append(pairs, NodePair{I: i, J: j, Dij: dist, Dji: dist, Wij: w, Wji: w})
		}
	}

	return New(pairs)
}
