// Package sgd_test provides runnable examples for the layout optimizer.
package sgd_test

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/sgd"
)

// ExampleNewFull demonstrates a complete small layout: build the exact
// pair array for a triangle, run 100 exponentially decaying sweeps, and
// check the drawn edge lengths.
// Complexity: O(n²) pairs, O(pairs) per sweep.
func ExampleNewFull() {
	// 1) Build the unweighted triangle 0—1—2—0.
	g := simple.NewUndirectedGraph()
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
	g.SetEdge(g.NewEdge(simple.Node(1), simple.Node(2)))
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(2)))

	// 2) One pair per node combination, distances from BFS (nil length).
	s, err := sgd.NewFull(g, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Non-degenerate starting positions on a spiral.
	d := drawing.InitialPlacement2D(3)

	// 4) Run the optimizer: shuffle, then sweep, once per scheduler tick.
	rng := rand.New(rand.NewSource(42))
	sched := s.Scheduler(100, 0.1)
	sched.Run(func(eta float64) {
		s.Shuffle(rng)
		sgd.Apply(s, d, eta)
	})

	// 5) Every edge should be close to its ideal unit length.
	ok := true
	for _, p := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		l := d.Delta(p[0], p[1]).Norm()
		if l < 0.9 || l > 1.1 {
			ok = false
		}
	}
	fmt.Println("edges near unit length:", ok)
	// Output: edges near unit length: true
}

// ExampleNewSparse demonstrates the pivot approximation on a larger
// path graph, where the full O(n²) array would be wasteful.
func ExampleNewSparse() {
	// 1) Build the path 0—1—…—99.
	g := simple.NewUndirectedGraph()
	for i := 0; i < 100; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i+1 < 100; i++ {
		g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(i+1)))
	}

	// 2) Ten k-center pivots give O(n·h) pairs.
	s, err := sgd.NewSparse(g, nil, 10, rand.New(rand.NewSource(42)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The sparse array is far smaller than the 4950 full pairs.
	fmt.Println("sparse is smaller:", len(s.Pairs()) < 2000)
	// Output: sparse is smaller: true
}
