package sgd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/sgd"
)

func TestNewSparse_PairsAreUnique(t *testing.T) {
	s, err := sgd.NewSparse(path(10), nil, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	seen := map[[2]int]bool{}
	for _, p := range s.Pairs() {
		require.Less(t, p.I, p.J, "pairs are stored min-first")
		key := [2]int{p.I, p.J}
		require.False(t, seen[key], "duplicate pair (%d, %d)", p.I, p.J)
		seen[key] = true
	}
}

func TestNewSparse_FewerPairsThanFull(t *testing.T) {
	n := 40
	full, err := sgd.NewFull(path(n), nil)
	require.NoError(t, err)
	sparse, err := sgd.NewSparse(path(n), nil, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Less(t, len(sparse.Pairs()), len(full.Pairs()))
}

func TestNewSparse_DisconnectedWithTooFewPivots(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
	g.SetEdge(g.NewEdge(simple.Node(2), simple.Node(3)))

	_, err := sgd.NewSparse(g, nil, 1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, sgd.ErrDisconnectedForPivots)
}

func TestNewSparse_EmptyGraph(t *testing.T) {
	s, err := sgd.NewSparse(simple.NewUndirectedGraph(), nil, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Empty(t, s.Pairs())
}

func TestNewSparseWithPivots_PivotEdgesExact(t *testing.T) {
	// With pivot node 0 on a path, every pivot edge carries the true
	// distance 0→u and weight 1/d².
	s, err := sgd.NewSparseWithPivots(path(5), nil, []int{0})
	require.NoError(t, err)

	pivotPairs := map[int]sgd.NodePair{}
	for _, p := range s.Pairs() {
		if p.I == 0 {
			pivotPairs[p.J] = p
		}
	}
	for u := 1; u < 5; u++ {
		p, ok := pivotPairs[u]
		require.True(t, ok, "missing pivot edge 0—%d", u)
		assert.Equal(t, float64(u), p.Dij)
		assert.InDelta(t, 1/float64(u*u), p.Wij, 1e-12)
	}
}

func TestNewSparseWithPivots_RegionPairsRouteThroughPivot(t *testing.T) {
	// One pivot means one region holding all nodes: the pair (1, 2) gets
	// the routed distance d(0,1) + d(0,2) = 3 and weight s/d² = 5/9.
	s, err := sgd.NewSparseWithPivots(path(5), nil, []int{0})
	require.NoError(t, err)

	var found bool
	for _, p := range s.Pairs() {
		if p.I == 1 && p.J == 2 {
			found = true
			assert.Equal(t, 3.0, p.Dij)
			assert.InDelta(t, 5.0/9.0, p.Wij, 1e-12)
		}
	}
	require.True(t, found, "region pair (1, 2) missing")
}

func TestNewSparseWithPivots_PivotEdgeWinsOverRegionPair(t *testing.T) {
	// Two pivots 0 and 4: the pair (0, 4) is both a pivot edge (d=4)
	// and never a routed region pair; the exact distance must be kept.
	s, err := sgd.NewSparseWithPivots(path(5), nil, []int{0, 4})
	require.NoError(t, err)

	for _, p := range s.Pairs() {
		if p.I == 0 && p.J == 4 {
			assert.Equal(t, 4.0, p.Dij)
			return
		}
	}
	t.Fatal("pivot pair (0, 4) missing")
}

func TestSparseLayout_TriangleConverges(t *testing.T) {
	// Even the sparse approximation recovers the unit triangle: all
	// three nodes pair with the pivots at exact distances.
	s, err := sgd.NewSparse(triangle(), nil, 2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	d := drawing.InitialPlacement2D(3)
	rng := rand.New(rand.NewSource(42))
	sched := s.Scheduler(100, 0.1)
	sched.Run(func(eta float64) {
		s.Shuffle(rng)
		sgd.Apply(s, d, eta)
	})

	for _, p := range []struct{ i, j int }{{0, 1}, {1, 2}, {0, 2}} {
		got := d.Delta(p.i, p.j).Norm()
		assert.Greater(t, got, 0.9, "edge %d—%d too short: %v", p.i, p.j, got)
		assert.Less(t, got, 1.1, "edge %d—%d too long: %v", p.i, p.j, got)
	}
}
