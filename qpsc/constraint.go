package qpsc

import "errors"

var (
	// ErrDegenerateConstraint indicates a constraint whose endpoints
	// coincide or fall outside the variable range.
	ErrDegenerateConstraint = errors.New("qpsc: degenerate constraint")

	// ErrNegativeGap indicates a constraint with a negative minimum
	// separation.
	ErrNegativeGap = errors.New("qpsc: negative gap")
)

// Constraint requires position(Left) + Gap ≤ position(Right) along the
// constrained axis. Left and Right are variable indices; Gap is in
// drawing coordinate units.
type Constraint struct {
	Left, Right int
	Gap         float64
}

// NewConstraint builds a separation constraint requiring left to sit at
// least gap before right.
func NewConstraint(left, right int, gap float64) Constraint {
	return Constraint{Left: left, Right: right, Gap: gap}
}
