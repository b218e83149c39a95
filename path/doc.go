// Package path computes point-to-point shortest paths between integer
// vertex ids of a core.Graph.
//
// Two routines are provided, both bidirectional — they grow a search
// region from each endpoint and meet in the middle, which explores far
// fewer vertices than a one-sided sweep on most graphs:
//
//   - Shortest — unweighted. Alternating breadth-first expansion from both
//     endpoints, switching sides each round, stopping the first time one
//     side discovers a vertex already known to the other. O(V + E) worst
//     case, typically far less.
//   - BidirectionalDijkstra — weighted, non-negative weights only. A single
//     min-heap drives both sides (lazy decrease-key: stale entries are
//     pushed and ignored on pop); the forward side relaxes out-arcs, the
//     backward side relaxes in-arcs. The best meeting vertex minimizes the
//     sum of the two finalized distances, and the search stops once the
//     heap minimum can no longer beat it. O((V + E) log V).
//
// "No path" is an explicit empty result, not an error: both routines
// return a nil path (and zero distance) when the endpoints are in
// different components. Callers must check emptiness.
//
// Errors (sentinel):
//
//	ErrGraphNil        — nil graph.
//	ErrVertexNotFound  — an endpoint id is not an active vertex.
//	ErrNilWeightFunc   — BidirectionalDijkstra without a weight function.
//	ErrNegativeWeight  — a negative arc weight was detected; rejected
//	                     before any relaxation (Dijkstra invariant).
package path
