// Package shortest computes the graph-theoretic distances that drive
// stress-based layout: single-source rows, all-pairs matrices, and the
// pivot machinery for sparse approximation.
//
// All functions consume a read-only gonum graph.Graph together with an
// Index that pins every node to a stable position in [0, n). Distances
// are float64; unreachable entries are +Inf.
//
// Two search strategies are selected by the Length argument:
//
//   - Length == nil: every edge has length 1 and rows are computed by
//     breadth-first search in O(V + E).
//   - Length != nil: edge lengths come from the callback (strictly
//     positive, pure, repeatable) and rows are computed by Dijkstra
//     with a lazy-decrease-key min-heap in O((V + E) log V).
//
// Pivot selection (KCenterPivots) implements the greedy k-center
// heuristic: after a random start, every round adds the node farthest
// from all chosen pivots, ties broken by lowest index. When the graph
// has several connected components, one pivot is seeded per component
// before the greedy rounds so that no node is infinitely far from all
// pivots.
//
// Complexity summary (h pivots, n nodes, m edges):
//
//   - Row:           O(m log n), or O(n + m) unweighted
//   - AllPairs:      O(n·m log n)
//   - MultiSource:   O(h·m log n)
//   - KCenterPivots: O(h·m log n + h·n)
package shortest
