// Package drawing holds node coordinates for the supported layout
// geometries and exposes the tiny abstraction the optimizer needs:
// a geometry-aware difference (Delta) with a norm and scalar scaling,
// and a displacement primitive that moves one node by a scaled delta.
//
// Five concrete geometries are provided:
//
//   - Euclidean2D — flat 2D plane, gonum r2.Vec coordinates
//   - Euclidean   — flat n-dimensional space
//   - Spherical2D — unit sphere, longitude/colatitude, geodesic tangent vectors
//   - Hyperbolic2D — Poincaré disk, Möbius differences
//   - Torus2D     — unit square with wrap-around, minimum-wrap differences
//
// The optimizer is generic over the Delta type, so the inner sweep
// dispatches statically; nothing in this package is called through an
// interface value at runtime.
//
// The Cartesian interface gives per-axis coordinate access for the
// geometries where an axis is meaningful (Euclidean 2D/nD, torus); the
// separation-constraint projector operates through it.
package drawing
