package qpsc

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvldraw/drawing"
)

// tolerance below which a constraint violation is treated as satisfied.
const tolerance = 1e-1

// variable is the per-variable state: the block it belongs to and its
// fixed offset from that block's reference position.
type variable struct {
	block  int
	offset float64
}

// block is a rigidly moving group of variables. Merging can leave a
// block empty; empty slots stay in the slice and are skipped.
type block struct {
	variables map[int]bool
	active    map[int]bool
	position  float64
}

// varNeighbor is one adjacency entry: the variable at the other end of
// a constraint and that constraint's index.
type varNeighbor struct {
	v, c int
}

// ConstraintGraph is the solver state for one axis: variables, their
// blocks, the full constraint list, and a static adjacency list over
// all constraints used for path searches along the active subset.
type ConstraintGraph struct {
	variables   []variable
	constraints []Constraint
	blocks      []block
	neighbors   [][]varNeighbor
}

// New validates the constraints against the drawing and initializes the
// solver for axis k. Every variable starts in its own block at its
// current coordinate.
func New(cart drawing.Cartesian, k int, constraints []Constraint) (*ConstraintGraph, error) {
	n := cart.Len()
	for idx, c := range constraints {
		if c.Left < 0 || c.Left >= n || c.Right < 0 || c.Right >= n || c.Left == c.Right {
			return nil, fmt.Errorf("%w: constraint %d (%d, %d) over %d variables",
				ErrDegenerateConstraint, idx, c.Left, c.Right, n)
		}
		if c.Gap < 0 {
			return nil, fmt.Errorf("%w: constraint %d gap %v", ErrNegativeGap, idx, c.Gap)
		}
	}

	g := &ConstraintGraph{
		variables:   make([]variable, n),
		constraints: append([]Constraint(nil), constraints...),
		blocks:      make([]block, n),
		neighbors:   make([][]varNeighbor, n),
	}
	for i := 0; i < n; i++ {
		g.variables[i] = variable{block: i}
		g.blocks[i] = block{
			variables: map[int]bool{i: true},
			active:    map[int]bool{},
			position:  cart.Coord(i, k),
		}
	}
	for idx, c := range g.constraints {
		g.neighbors[c.Left] = append(g.neighbors[c.Left], varNeighbor{v: c.Right, c: idx})
		g.neighbors[c.Right] = append(g.neighbors[c.Right], varNeighbor{v: c.Left, c: idx})
	}

	return g, nil
}

// Project moves x onto the feasible region: it resolves violations
// most-violated-first until every constraint holds within tolerance,
// then writes the final position of every variable back into x.
func (g *ConstraintGraph) Project(x []float64) {
	for {
		c := g.mostViolated()
		if c < 0 {
			break
		}
		l := g.variables[g.constraints[c].Left].block
		r := g.variables[g.constraints[c].Right].block
		if l != r {
			g.mergeBlock(l, r, c)
		} else {
			g.expandBlock(l, c, x)
		}
	}
	for i := range g.variables {
		x[i] = g.variablePosition(i)
	}
}

// mostViolated returns the index of the constraint with the largest
// violation above tolerance, ties to the lowest index, or -1 when every
// constraint is satisfied.
func (g *ConstraintGraph) mostViolated() int {
	best, bestV := -1, tolerance
	for c := range g.constraints {
		if v := g.violation(c); v > bestV {
			best, bestV = c, v
		}
	}

	return best
}

// variablePosition is block reference position plus the variable's
// offset.
func (g *ConstraintGraph) variablePosition(i int) float64 {
	return g.blocks[g.variables[i].block].position + g.variables[i].offset
}

// violation of constraint c: pos(left) + gap − pos(right); positive
// means violated.
func (g *ConstraintGraph) violation(c int) float64 {
	return g.variablePosition(g.constraints[c].Left) + g.constraints[c].Gap -
		g.variablePosition(g.constraints[c].Right)
}

// optimalPosition returns the block reference position minimizing the
// squared deviation of its members from the desired positions x, given
// the current offsets.
func (g *ConstraintGraph) optimalPosition(b int, x []float64) float64 {
	s := 0.0
	for _, j := range sortedKeys(g.blocks[b].variables) {
		s += x[j] - g.variables[j].offset
	}

	return s / float64(len(g.blocks[b].variables))
}

// mergeBlock folds block r into block l across the violated constraint
// c, making c active. The merged reference position is the variable-
// count weighted average; r's members get their offsets shifted so that
// c holds with equality.
func (g *ConstraintGraph) mergeBlock(l, r, c int) {
	cn := g.constraints[c]
	d := g.variables[cn.Left].offset + cn.Gap - g.variables[cn.Right].offset
	nl := float64(len(g.blocks[l].variables))
	nr := float64(len(g.blocks[r].variables))

	g.blocks[l].position = (g.blocks[l].position*nl + (g.blocks[r].position-d)*nr) / (nl + nr)

	for a := range g.blocks[r].active {
		g.blocks[l].active[a] = true
	}
	g.blocks[l].active[c] = true

	for _, i := range sortedKeys(g.blocks[r].variables) {
		g.variables[i].block = l
		g.variables[i].offset += d
		g.blocks[l].variables[i] = true
	}
	g.blocks[r].variables = map[int]bool{}
	g.blocks[r].active = map[int]bool{}
}

// expandBlock resolves a violation of constraint c internal to block b.
// It releases the active constraint with the smallest Lagrange
// multiplier on the path between c's endpoints, shifts the component
// still attached to right(c) by the violation, activates c, and
// recomputes the block's reference position.
func (g *ConstraintGraph) expandBlock(b, c int, x []float64) {
	lm := map[int]float64{}
	ac := cloneSet(g.blocks[b].active)

	g.compDFDV(g.constraints[c].Left, ac, -1, lm, x)

	// Active constraints lying forward on the left→right path are the
	// candidates for release.
	vs := g.compPath(g.constraints[c].Left, g.constraints[c].Right, ac)
	if len(vs) == 0 {
		// Both endpoints are in b, so the active forest must connect
		// them.
		panic(fmt.Sprintf("qpsc: no active path between variables %d and %d of one block",
			g.constraints[c].Left, g.constraints[c].Right))
	}
	forward := map[[2]int]bool{}
	for i := 1; i < len(vs); i++ {
		forward[[2]int{vs[i-1], vs[i]}] = true
	}
	sc, scLM := -1, math.Inf(1)
	for _, a := range sortedKeys(ac) {
		cn := g.constraints[a]
		if !forward[[2]int{cn.Left, cn.Right}] {
			continue
		}
		if m, ok := lm[a]; ok && m < scLM {
			sc, scLM = a, m
		}
	}
	if sc < 0 {
		// Leaving c inactive would make Project pick it again forever.
		panic(fmt.Sprintf("qpsc: no releasable constraint on the active path between variables %d and %d",
			g.constraints[c].Left, g.constraints[c].Right))
	}

	delete(ac, sc)
	shift := g.violation(c)
	for _, v := range sortedKeys(g.connected(g.constraints[c].Right, ac)) {
		g.variables[v].offset += shift
	}
	ac[c] = true
	g.blocks[b].active = ac
	g.blocks[b].position = g.optimalPosition(b, x)
}

// compDFDV recursively computes dF/dv for variable v over the active
// forest ac, filling lm with the Lagrange multiplier of every traversed
// constraint. u is the variable v was reached from, -1 at the root.
func (g *ConstraintGraph) compDFDV(v int, ac map[int]bool, u int, lm map[int]float64, x []float64) float64 {
	dfdv := g.variablePosition(v) - x[v]
	for _, a := range sortedKeys(ac) {
		cn := g.constraints[a]
		switch {
		case v == cn.Left && u != cn.Right:
			value := g.compDFDV(cn.Right, ac, v, lm, x)
			lm[a] = value
			dfdv += value
		case v == cn.Right && u != cn.Left:
			value := -g.compDFDV(cn.Left, ac, v, lm, x)
			lm[a] = value
			dfdv -= value
		}
	}

	return dfdv
}

// compPath returns the variable sequence from s to t through the active
// forest ac, inclusive, or nil when t is unreachable. BFS with parent
// pointers.
func (g *ConstraintGraph) compPath(s, t int, ac map[int]bool) []int {
	parent := map[int]int{s: -1}
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			break
		}
		for _, nb := range g.neighbors[u] {
			if !ac[nb.c] {
				continue
			}
			if _, seen := parent[nb.v]; seen {
				continue
			}
			parent[nb.v] = u
			queue = append(queue, nb.v)
		}
	}
	if _, ok := parent[t]; !ok {
		return nil
	}
	var path []int
	for v := t; v >= 0; v = parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// connected returns every variable reachable from s through the active
// constraints ac.
func (g *ConstraintGraph) connected(s int, ac map[int]bool) map[int]bool {
	visited := map[int]bool{s: true}
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range g.neighbors[u] {
			if ac[nb.c] && !visited[nb.v] {
				visited[nb.v] = true
				queue = append(queue, nb.v)
			}
		}
	}

	return visited
}

// SplitBlocks relaxes the block structure against the desired positions
// x: any block whose weakest active constraint has a negative Lagrange
// multiplier is split there, letting the two halves move independently.
// Returns true when nothing was split, which terminates the outer
// gradient-projection loop.
func (g *ConstraintGraph) SplitBlocks(x []float64) bool {
	nosplit := true
	for i := range g.blocks {
		if len(g.blocks[i].variables) == 0 {
			continue
		}
		g.blocks[i].position = g.optimalPosition(i, x)

		lm := map[int]float64{}
		root := sortedKeys(g.blocks[i].variables)[0]
		g.compDFDV(root, g.blocks[i].active, -1, lm, x)

		sc, scLM := -1, math.Inf(1)
		for _, a := range sortedKeys(g.blocks[i].active) {
			if m, ok := lm[a]; ok && m < scLM {
				sc, scLM = a, m
			}
		}
		if sc < 0 || scLM >= 0 {
			continue
		}
		nosplit = false

		ac := cloneSet(g.blocks[i].active)
		delete(ac, sc)

		// The component on the right of the released constraint becomes
		// its own block, reusing the slot indexed by that variable. When
		// that variable indexes the block being split, the right component
		// must stay in place; the left component moves out instead.
		s := g.constraints[sc].Right
		if s == i {
			s = g.constraints[sc].Left
		}
		g.blocks[s].variables = g.connected(s, ac)
		for _, v := range sortedKeys(g.blocks[s].variables) {
			g.variables[v].block = s
		}
		remaining := map[int]bool{}
		for v := range g.blocks[i].variables {
			if !g.blocks[s].variables[v] {
				remaining[v] = true
			}
		}
		g.blocks[i].variables = remaining
		g.blocks[i].position = g.optimalPosition(i, x)
		g.blocks[s].position = g.optimalPosition(s, x)

		g.blocks[s].active = map[int]bool{}
		for a := range ac {
			cn := g.constraints[a]
			if g.blocks[s].variables[cn.Left] && g.blocks[s].variables[cn.Right] {
				g.blocks[s].active[a] = true
			}
		}
		for a := range g.blocks[s].active {
			delete(ac, a)
		}
		g.blocks[i].active = ac
	}

	return nosplit
}

// sortedKeys returns the keys of set in ascending order. Map iteration
// is randomized; every tie-breaking scan goes through this.
func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

func cloneSet(set map[int]bool) map[int]bool {
	out := make(map[int]bool, len(set))
	for k := range set {
		out[k] = true
	}

	return out
}
