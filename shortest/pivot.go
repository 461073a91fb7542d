package shortest

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
)

// KCenterPivots selects h pivot nodes by the greedy k-center heuristic
// and returns them together with the h×n matrix of distances from each
// pivot to every node.
//
// Selection order:
//  1. One pivot chosen uniformly at random.
//  2. One seed pivot (lowest node index) for every connected component
//     that does not yet contain a pivot.
//  3. Greedy rounds: add the node whose minimum distance to the chosen
//     pivots is largest, ties broken by lowest index, until h pivots.
//
// h is clamped to [1, n]. ErrDisconnected is returned when the graph
// has more connected components than h allows seeds for.
func KCenterPivots(g graph.Graph, ix *Index, length Length, h int, rng *rand.Rand) ([]int, *SubMatrix, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := ix.Len()
	if n == 0 {
		return nil, NewSubMatrix(0), nil
	}
	if h < 1 {
		h = 1
	}
	if h > n {
		h = n
	}

	comp := components(g, ix)
	ncomp := 0
	for _, c := range comp {
		if c+1 > ncomp {
			ncomp = c + 1
		}
	}
	if ncomp > h {
		return nil, nil, fmt.Errorf("%w: %d components but only %d pivots", ErrDisconnected, ncomp, h)
	}

	d := NewSubMatrix(n)
	minD := make([]float64, n)
	for i := range minD {
		minD[i] = math.Inf(1)
	}
	isPivot := make([]bool, n)
	var pivots []int

	addPivot := func(p int) error {
		row, err := Row(g, ix, length, p)
		if err != nil {
			return err
		}
		d.push(p, row)
		for j, v := range row {
			if v < minD[j] {
				minD[j] = v
			}
		}
		isPivot[p] = true
		pivots = append(pivots, p)

		return nil
	}

	// 1) Random start.
	if err := addPivot(rng.Intn(n)); err != nil {
		return nil, nil, err
	}

	// 2) Seed every component that the start does not cover. Component
	//    labels are issued in ascending order of their lowest node index,
	//    so seeds are deterministic given the start pivot.
	seeded := make([]bool, ncomp)
	seeded[comp[pivots[0]]] = true
	for j := 0; j < n && len(pivots) < h; j++ {
		if seeded[comp[j]] {
			continue
		}
		if err := addPivot(j); err != nil {
			return nil, nil, err
		}
		seeded[comp[j]] = true
	}

	// 3) Greedy max-min rounds.
	for len(pivots) < h {
		best, bestD := -1, math.Inf(-1)
		for j := 0; j < n; j++ {
			if isPivot[j] {
				continue
			}
			if minD[j] > bestD {
				best, bestD = j, minD[j]
			}
		}
		if best < 0 {
			break
		}
		if err := addPivot(best); err != nil {
			return nil, nil, err
		}
	}

	return pivots, d, nil
}

// components labels every node with a connected-component ID. Labels
// are dense, starting at 0, assigned in ascending order of each
// component's lowest node index. Traversal follows neighbor enumeration
// as provided by the graph.
func components(g graph.Graph, ix *Index) []int {
	n := ix.Len()
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	next := 0
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if comp[s] >= 0 {
			continue
		}
		comp[s] = next
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			to := g.From(ix.ID(u))
			for to.Next() {
				v := ix.Of(to.Node().ID())
				if v >= 0 && comp[v] < 0 {
					comp[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return comp
}
