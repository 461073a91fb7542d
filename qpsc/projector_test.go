// Package qpsc_test contains unit tests for the separation-constraint
// projector: validation, merge and expand resolution, block splitting,
// and the drawing-level driver.
package qpsc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/qpsc"
)

// line builds a 1-dimensional drawing at the given coordinates.
func line(xs ...float64) *drawing.Euclidean {
	d := drawing.NewEuclidean(len(xs), 1)
	for i, x := range xs {
		d.SetCoord(i, 0, x)
	}

	return d
}

func TestNew_DegenerateConstraint(t *testing.T) {
	d := line(0, 1)
	_, err := qpsc.New(d, 0, []qpsc.Constraint{qpsc.NewConstraint(0, 0, 1)})
	require.ErrorIs(t, err, qpsc.ErrDegenerateConstraint)

	_, err = qpsc.New(d, 0, []qpsc.Constraint{qpsc.NewConstraint(0, 5, 1)})
	require.ErrorIs(t, err, qpsc.ErrDegenerateConstraint)

	_, err = qpsc.New(d, 0, []qpsc.Constraint{qpsc.NewConstraint(-1, 1, 1)})
	require.ErrorIs(t, err, qpsc.ErrDegenerateConstraint)
}

func TestNew_NegativeGap(t *testing.T) {
	d := line(0, 1)
	_, err := qpsc.New(d, 0, []qpsc.Constraint{qpsc.NewConstraint(0, 1, -2)})
	require.ErrorIs(t, err, qpsc.ErrNegativeGap)
}

func TestProject_FeasibleInputUnchanged(t *testing.T) {
	d := line(0, 5, 10)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 2, 2),
	})
	require.NoError(t, err)

	x := []float64{0, 5, 10}
	g.Project(x)
	assert.Equal(t, []float64{0, 5, 10}, x)
}

func TestProject_SingleMerge(t *testing.T) {
	// c0 is violated by 1; merging splits the correction evenly, so the
	// two variables settle at −0.5 and 1.5 with the gap exactly met.
	d := line(0, 1, 3)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 2, 1),
	})
	require.NoError(t, err)

	x := []float64{0, 1, 3}
	g.Project(x)
	assert.InDelta(t, -0.5, x[0], 1e-9)
	assert.InDelta(t, 1.5, x[1], 1e-9)
	assert.InDelta(t, 3.0, x[2], 1e-9)
}

func TestProject_ChainedMerges(t *testing.T) {
	// Three variables forced into one block; the projection keeps the
	// mean and meets both gaps exactly.
	d := line(0, 0, 0)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 3),
		qpsc.NewConstraint(1, 2, 3),
	})
	require.NoError(t, err)

	x := []float64{0, 0, 0}
	g.Project(x)
	assert.InDelta(t, -3, x[0], 1e-9)
	assert.InDelta(t, 0, x[1], 1e-9)
	assert.InDelta(t, 3, x[2], 1e-9)
}

func TestProject_LongRangeMergeDominates(t *testing.T) {
	// The long-range constraint 0→2 is the most violated, so it merges
	// first, welding the two endpoints 5 apart. That single merge leaves
	// both chain constraints slack; no further resolution is needed.
	d := line(0, 1.8, 3.6)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 2, 2),
		qpsc.NewConstraint(0, 2, 5),
	})
	require.NoError(t, err)

	x := []float64{0, 1.8, 3.6}
	g.Project(x)

	assert.InDelta(t, -0.7, x[0], 1e-9)
	assert.InDelta(t, 1.8, x[1], 1e-9)
	assert.InDelta(t, 4.3, x[2], 1e-9)

	// All three constraints hold and the mean is unchanged.
	assert.GreaterOrEqual(t, x[1]-x[0], 2.0-1e-9)
	assert.GreaterOrEqual(t, x[2]-x[1], 2.0-1e-9)
	assert.GreaterOrEqual(t, x[2]-x[0], 5.0-1e-9)
	assert.InDelta(t, 1.8, (x[0]+x[1]+x[2])/3, 1e-9)
}

func TestProject_ExpandWithinBlock(t *testing.T) {
	// Two merges weld all three variables into one block: first 2→1
	// (most violated), then 0→1. The long-range constraint 2→0 is then
	// violated by 1.5 with both endpoints inside the block, so resolving
	// it must release the weakest chain link (2→1) and re-anchor the
	// block rather than merge.
	d := line(0.1, 0.4, 1.2)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(2, 1, 1),
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(2, 0, 0.5),
	})
	require.NoError(t, err)

	x := []float64{0.1, 0.4, 1.2}
	g.Project(x)

	assert.InDelta(t, 0.2/3, x[0], 1e-9)
	assert.InDelta(t, 6.2/3, x[1], 1e-9)
	assert.InDelta(t, -1.3/3, x[2], 1e-9)

	// Released 2→1 goes slack, the other two end exactly tight, and the
	// input mean survives.
	assert.GreaterOrEqual(t, x[1]-x[2], 1.0-1e-9)
	assert.InDelta(t, 2, x[1]-x[0], 1e-9)
	assert.InDelta(t, 0.5, x[0]-x[2], 1e-9)
	assert.InDelta(t, 1.7/3, (x[0]+x[1]+x[2])/3, 1e-9)
}

func TestProject_ExpandAfterSplit(t *testing.T) {
	// First projection merges only 0 and 1; relaxing against new desired
	// positions frees the blocks, and the second projection pulls
	// variable 2 into the pair's block, where the long-range constraint
	// 0→2 is finally resolved by an expansion. Hand-solved optimum:
	// [−5/3, 4/3, 10/3].
	d := line(0, 1, 9)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 2, 2),
		qpsc.NewConstraint(0, 2, 5),
	})
	require.NoError(t, err)

	x := []float64{0, 1, 9}
	g.Project(x)
	assert.InDelta(t, -0.5, x[0], 1e-9)
	assert.InDelta(t, 1.5, x[1], 1e-9)
	assert.InDelta(t, 9, x[2], 1e-9)

	x2 := []float64{0, 1, 2}
	assert.True(t, g.SplitBlocks(x2))

	g.Project(x2)
	assert.InDelta(t, -5.0/3, x2[0], 1e-9)
	assert.InDelta(t, 4.0/3, x2[1], 1e-9)
	assert.InDelta(t, 10.0/3, x2[2], 1e-9)

	// 1→2 and 0→2 end tight, 0→1 slack, mean 1 preserved.
	assert.GreaterOrEqual(t, x2[1]-x2[0], 2.0-1e-9)
	assert.InDelta(t, 2, x2[2]-x2[1], 1e-9)
	assert.InDelta(t, 5, x2[2]-x2[0], 1e-9)
	assert.InDelta(t, 1, (x2[0]+x2[1]+x2[2])/3, 1e-9)
}

func TestProject_CyclicConstraintsPanic(t *testing.T) {
	// Mutually contradictory gaps have no feasible point: after the first
	// merge the reversed constraint is violated inside the block with no
	// releasable link on the active path. That must fail loudly instead
	// of looping.
	d := line(0, 0)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 0, 2),
	})
	require.NoError(t, err)

	assert.Panics(t, func() {
		x := []float64{0, 0}
		g.Project(x)
	})
}

func TestProject_ChainWithLongRangeGap(t *testing.T) {
	// All three gaps are met by successive merges; the projection keeps
	// the input mean 1.5 and spaces the chain exactly.
	d := line(0, 1, 2, 3)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 3),
		qpsc.NewConstraint(1, 2, 1),
		qpsc.NewConstraint(2, 3, 1),
	})
	require.NoError(t, err)

	x := []float64{0, 1, 2, 3}
	g.Project(x)
	assert.InDelta(t, -1.5, x[0], 1e-9)
	assert.InDelta(t, 1.5, x[1], 1e-9)
	assert.InDelta(t, 2.5, x[2], 1e-9)
	assert.InDelta(t, 3.5, x[3], 1e-9)
}

func TestSplitBlocks_TrueAfterFeasibleProjection(t *testing.T) {
	// A feasible input forms no blocks, so there is nothing to split.
	d := line(0, 5, 10)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 2, 1),
	})
	require.NoError(t, err)
	x := []float64{0, 5, 10}
	g.Project(x)
	assert.True(t, g.SplitBlocks(x))
}

func TestProject_SingleVariableIdentity(t *testing.T) {
	d := line(7)
	g, err := qpsc.New(d, 0, nil)
	require.NoError(t, err)
	x := []float64{7}
	g.Project(x)
	assert.Equal(t, []float64{7}, x)
}

func TestProject_Idempotent(t *testing.T) {
	d := line(0, 1, 3)
	constraints := []qpsc.Constraint{
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(1, 2, 1),
	}
	g, err := qpsc.New(d, 0, constraints)
	require.NoError(t, err)
	x := []float64{0, 1, 3}
	g.Project(x)

	// Projecting the already-feasible result with a fresh solver moves
	// nothing.
	d2 := line(x...)
	g2, err := qpsc.New(d2, 0, constraints)
	require.NoError(t, err)
	x2 := append([]float64(nil), x...)
	g2.Project(x2)
	for i := range x {
		assert.InDelta(t, x[i], x2[i], 1e-9)
	}
}

func TestSplitBlocks_ReleasesCounterproductiveConstraint(t *testing.T) {
	// Project welds 0 and 1 into one block. New desired positions pull
	// them far apart, turning the active constraint's multiplier
	// negative; SplitBlocks must break the block once, then settle.
	d := line(0, 1)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{qpsc.NewConstraint(0, 1, 2)})
	require.NoError(t, err)
	x := []float64{0, 1}
	g.Project(x)
	assert.InDelta(t, -0.5, x[0], 1e-9)
	assert.InDelta(t, 1.5, x[1], 1e-9)

	desired := []float64{-5, 5}
	assert.False(t, g.SplitBlocks(desired), "first pass must split")
	assert.True(t, g.SplitBlocks(desired), "second pass must be stable")

	// After the split the variables are free to reach their targets.
	g.Project(desired)
	assert.InDelta(t, -5, desired[0], 1e-9)
	assert.InDelta(t, 5, desired[1], 1e-9)
}

func TestSplitBlocks_ReleaseTargetsBlockSlot(t *testing.T) {
	// Projection welds all three variables into the block slotted at
	// variable 0, with 2→0 among its active constraints. New desired
	// positions make that constraint the one to release, so the split
	// component's natural slot is the block's own; the split must not
	// empty the block, and every variable must stay reachable.
	d := line(0.1, 0.4, 1.2)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{
		qpsc.NewConstraint(2, 1, 1),
		qpsc.NewConstraint(0, 1, 2),
		qpsc.NewConstraint(2, 0, 0.5),
	})
	require.NoError(t, err)

	x := []float64{0.1, 0.4, 1.2}
	g.Project(x)
	require.InDelta(t, 0.2/3, x[0], 1e-9)
	require.InDelta(t, 6.2/3, x[1], 1e-9)
	require.InDelta(t, -1.3/3, x[2], 1e-9)

	desired := []float64{5, 2, -5}
	assert.False(t, g.SplitBlocks(desired), "first pass must split")
	assert.True(t, g.SplitBlocks(desired), "second pass must be stable")

	// Variable 2 is free to reach its target; 0 and 1 stay welded by the
	// load-bearing 0→1 constraint and meet it exactly.
	g.Project(desired)
	assert.InDelta(t, 2.5, desired[0], 1e-9)
	assert.InDelta(t, 4.5, desired[1], 1e-9)
	assert.InDelta(t, -5, desired[2], 1e-9)
}

func TestSplitBlocks_NoSplitWhenTension(t *testing.T) {
	// Desired positions squeeze the pair together: the active constraint
	// is load-bearing, its multiplier is positive, nothing splits.
	d := line(0, 1)
	g, err := qpsc.New(d, 0, []qpsc.Constraint{qpsc.NewConstraint(0, 1, 2)})
	require.NoError(t, err)
	x := []float64{0, 1}
	g.Project(x)

	desired := []float64{1, 0}
	assert.True(t, g.SplitBlocks(desired))
}

func TestProject1D_ProjectsOneAxisOnly(t *testing.T) {
	d := drawing.NewEuclidean2D(2)
	d.SetCoord(0, 0, 0)
	d.SetCoord(0, 1, 7)
	d.SetCoord(1, 0, 1)
	d.SetCoord(1, 1, 9)

	err := qpsc.Project1D(d, 0, []qpsc.Constraint{qpsc.NewConstraint(0, 1, 2)})
	require.NoError(t, err)

	assert.InDelta(t, -0.5, d.Coord(0, 0), 1e-9)
	assert.InDelta(t, 1.5, d.Coord(1, 0), 1e-9)
	// Axis 1 is untouched.
	assert.Equal(t, 7.0, d.Coord(0, 1))
	assert.Equal(t, 9.0, d.Coord(1, 1))
}

func TestProject1D_InvalidConstraint(t *testing.T) {
	d := drawing.NewEuclidean2D(2)
	err := qpsc.Project1D(d, 0, []qpsc.Constraint{qpsc.NewConstraint(0, 0, 1)})
	require.ErrorIs(t, err, qpsc.ErrDegenerateConstraint)
}
