package shortest

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// Index assigns every node of a graph a stable position in [0, n).
// Positions are issued in ascending node-ID order, so two Index values
// built from the same graph always agree. All other functions in this
// module address nodes through Index positions, never raw IDs.
type Index struct {
	ids []int64       // position → node ID, ascending
	pos map[int64]int // node ID → position
}

// NewIndex enumerates the nodes of g and fixes their ordering.
func NewIndex(g graph.Graph) *Index {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, u := range nodes {
		ids[i] = u.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	pos := make(map[int64]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return &Index{ids: ids, pos: pos}
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return len(ix.ids) }

// ID returns the node ID at position i.
func (ix *Index) ID(i int) int64 { return ix.ids[i] }

// Of returns the position of the node with the given ID, or -1 when the
// ID is not part of the graph.
func (ix *Index) Of(id int64) int {
	i, ok := ix.pos[id]
	if !ok {
		return -1
	}

	return i
}
