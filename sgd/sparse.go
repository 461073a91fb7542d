package sgd

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvldraw/shortest"
)

// NewSparse builds the pivot-approximated pair array with h pivots
// selected by the greedy k-center heuristic. O(nh) pairs instead of
// O(n²). Returns ErrDisconnectedForPivots when h is too small to seed
// every connected component.
func NewSparse(g graph.Graph, length shortest.Length, h int, rng *rand.Rand) (*Sgd, error) {
	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	ix := shortest.NewIndex(g)
	pivots, d, err := shortest.KCenterPivots(g, ix, length, h, rng)
	if err != nil {
		if errors.Is(err, shortest.ErrDisconnected) {
			return nil, fmt.Errorf("%w (%d pivots requested)", ErrDisconnectedForPivots, h)
		}

		return nil, fmt.Errorf("sgd: pivot selection: %w", err)
	}

	return buildSparse(pivots, d)
}

// NewSparseWithPivots builds the pivot-approximated pair array from a
// caller-chosen pivot set, given as positions in ascending-ID node
// order.
func NewSparseWithPivots(g graph.Graph, length shortest.Length, pivots []int) (*Sgd, error) {
	if g == nil {
		return nil, shortest.ErrNilGraph
	}
	ix := shortest.NewIndex(g)
	d, err := shortest.MultiSource(g, ix, length, pivots)
	if err != nil {
		return nil, err
	}

	return buildSparse(pivots, d)
}

// buildSparse assembles the sparse pair array from a pivot set and its
// distance rows.
//
// Two kinds of pairs:
//  1. Pivot edges: every node u paired with every pivot p at the true
//     distance D[p, u], weighted 1/d². Deduplicated as unordered pairs.
//  2. Region pairs: every pair (u, v) inside one pivot's graph-Voronoi
//     region, at the routed distance D[p, u] + D[p, v], weighted by the
//     region size s_p as s_p/d². Short-range structure the pivot edges
//     alone would miss.
//
// Every node's region is its nearest pivot, ties to the lowest pivot
// row. A node with no finite pivot distance makes the approximation
// meaningless, so that is an error.
func buildSparse(pivots []int, d *shortest.SubMatrix) (*Sgd, error) {
	h, n := d.Shape()
	if n == 0 || h == 0 {
		return New(nil), nil
	}

	// 1) Assign every node to its nearest pivot and count region sizes.
	region := make([]int, n)
	sizes := make([]int, h)
	for u := 0; u < n; u++ {
		k, dist := d.Nearest(u)
		if k < 0 || math.IsInf(dist, 1) {
			return nil, fmt.Errorf("%w: node %d unreachable from every pivot", ErrDisconnectedForPivots, u)
		}
		region[u] = k
		sizes[k]++
	}

	seen := make(map[[2]int]bool, n*h)
	var pairs []NodePair
	add := func(i, j int, dist, w float64) {
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if seen[key] {
			return
		}
		seen[key] = true
		pairs = append(pairs, NodePair{I: i, J: j, Dij: dist, Dji: dist, Wij: w, Wji: w})
	}

	// 2) Pivot edges at exact distances.
	for k := 0; k < h; k++ {
		p := pivots[k]
		for u := 0; u < n; u++ {
			if u == p {
				continue
			}
			dist := d.At(k, u)
			if math.IsInf(dist, 1) {
				continue
			}
			add(p, u, dist, 1/(dist*dist))
		}
	}

	// 3) Region pairs at pivot-routed distances, weighted by region size.
	byRegion := make([][]int, h)
	for u := 0; u < n; u++ {
		byRegion[region[u]] = append(byRegion[region[u]], u)
	}
	for k := 0; k < h; k++ {
		members := byRegion[k]
		s := float64(sizes[k])
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				u, v := members[a], members[b]
				dist := d.At(k, u) + d.At(k, v)
				if dist <= 0 {
					continue
				}
				add(u, v, dist, s/(dist*dist))
			}
		}
	}

	return New(pairs), nil
}
