package shortest

import (
	"math"

	"gonum.org/v1/gonum/graph"
)

// bfsRow computes hop-count distances from source with a FIFO queue.
// Used whenever all edge lengths are 1; O(V + E).
func bfsRow(g graph.Graph, ix *Index, source int) []float64 {
	n := ix.Len()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		to := g.From(ix.ID(u))
		for to.Next() {
			v := ix.Of(to.Node().ID())
			if v < 0 || !math.IsInf(dist[v], 1) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}
