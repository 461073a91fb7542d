// Package qpsc enforces one-dimensional separation constraints of the
// form position(left) + gap ≤ position(right) by gradient projection,
// following the QPSC block model of IPSEP-COLA.
//
// Variables are grouped into blocks that move rigidly: each block has
// one reference position and every member variable a fixed offset from
// it. Project repeatedly picks the most violated constraint and either
//
//   - merges the two blocks it spans, making the constraint active, or
//   - expands a single block, releasing the weakest active constraint
//     (smallest Lagrange multiplier) on the internal path and shifting
//     the downstream component by the violation,
//
// until no constraint is violated beyond tolerance. SplitBlocks later
// undoes active constraints whose multiplier went negative, letting the
// layout relax where rigidity is no longer needed. The projected
// positions minimize the squared deviation from the desired ones over
// the feasible region.
//
// Project1D is the drawing-level driver: it projects one coordinate
// axis of any Cartesian drawing. RectangleNoOverlapConstraints builds a
// constraint set that separates overlapping node rectangles along one
// axis, the usual source of constraints for non-overlap layouts.
//
// Complexity per Project call is near-linear in practice; the worst
// case is dominated by path searches inside large merged blocks.
package qpsc
