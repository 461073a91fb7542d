package shortest

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
)

// Row computes single-source shortest-path distances from the node at
// position source to every node, as a slice indexed by Index position.
// Unreachable nodes are +Inf. With a nil length the search degrades to
// BFS over unit lengths.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, n) (ErrSourceOutOfRange).
//  3. Every traversed edge length must be > 0 (ErrNonPositiveLength).
func Row(g graph.Graph, ix *Index, length Length, source int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= ix.Len() {
		return nil, fmt.Errorf("%w: %d with n=%d", ErrSourceOutOfRange, source, ix.Len())
	}
	if length == nil {
		return bfsRow(g, ix, source), nil
	}

	return dijkstraRow(g, ix, length, source)
}

// dijkstraRow runs Dijkstra with a lazy-decrease-key strategy: shorter
// tentative distances push duplicate heap entries, and stale entries
// are skipped on pop once the vertex is finalized.
func dijkstraRow(g graph.Graph, ix *Index, length Length, source int) ([]float64, error) {
	n := ix.Len()

	// 1) Initialize dist[v] = +Inf for all v, 0 for the source.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	visited := make([]bool, n)

	// 2) Seed the min-heap with the source at distance 0.
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{v: source, dist: 0})

	for pq.Len() > 0 {
		// 3) Pop the smallest tentative distance; skip stale entries.
		item := heap.Pop(&pq).(*nodeItem)
		u := item.v
		if visited[u] {
			continue
		}
		visited[u] = true

		// 4) Relax every outgoing edge of u.
		uid := ix.ID(u)
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			v := ix.Of(vid)
			if v < 0 || visited[v] {
				continue
			}
			e := g.Edge(uid, vid)
			if e == nil {
				continue
			}
			w := length(e)
			if w <= 0 {
				return nil, fmt.Errorf("%w: edge %d→%d length=%g", ErrNonPositiveLength, uid, vid, w)
			}
			newDist := dist[u] + w
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			heap.Push(&pq, &nodeItem{v: v, dist: newDist})
		}
	}

	return dist, nil
}

// nodeItem is one heap entry: a node position and its tentative distance.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Duplicate
// entries for one node are allowed; outdated ones are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
