// Package lvldraw is your in-memory toolkit for drawing graphs — an
// iterative stress-minimization layout engine with sparse distance
// approximation and separation-constraint projection.
//
// 🚀 What is lvldraw?
//
//	A small, deterministic library that brings together:
//		• SGD layout: pairwise stress minimization with per-pair learning-rate caps
//		• Sparse approximation: k-center pivots + graph-Voronoi regions, O(nh) pairs
//		• Schedulers: constant, linear, quadratic, exponential, reciprocal decay
//		• Geometries: Euclidean 2D/nD, spherical, hyperbolic (Poincaré disk), torus
//		• Separation constraints: QPSC gradient projection (IPSEP-COLA block model)
//
// ✨ Why choose lvldraw?
//
//   - Deterministic – every randomized step takes an explicit *rand.Rand
//   - Composable – graphs come in through gonum's graph interfaces
//   - Static dispatch – geometry is a generic parameter, no vtable in the sweep
//   - Library only – no goroutines, no globals, no I/O
//
// Under the hood, everything is organized under four subpackages:
//
//	shortest/ — Dijkstra & BFS rows, distance matrices, k-center pivot selection
//	drawing/  — coordinate containers for the five supported geometries
//	sgd/      — node-pair builders (full & sparse) and the SGD optimizer
//	qpsc/     — 1-D separation-constraint projector and constraint generators
//
// A typical layout run:
//
//	opt, _ := sgd.NewSparse(g, nil, 30, rng)
//	d := drawing.InitialPlacement2D(n)
//	sched := opt.Scheduler(100, 0.1)
//	sched.Run(func(eta float64) {
//		opt.Shuffle(rng)
//		sgd.Apply(opt, d, eta)
//	})
//
// Constraints (layering, non-overlap) are enforced between sweeps with
// qpsc.Project1D.
//
//	go get github.com/katalvlaran/lvldraw
package lvldraw
