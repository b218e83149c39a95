// Package allpairs computes unweighted all-pairs shortest paths over the
// integer vertex ids of a core.Graph.
//
// Two routines fill the same table shape, so their outputs are directly
// comparable:
//
//   - FloydWarshall — dense n×n relaxation, n = highest active id + 1.
//     The intermediate-vertex loop is outermost (w, then v, then u); this
//     nesting order is required for correctness. O(n³) time, O(n²) memory.
//   - BFSAllPairs — one breadth-first sweep per active source vertex.
//     O(V·(V+E)) time, asymptotically better than Floyd–Warshall on
//     sparse graphs, identical results on the same graph.
//
// Distances are fixed-width uint16 with the reserved sentinel Unreachable
// meaning "no path". Because a distance table is quadratic in the id
// range and distances must stay below the sentinel, both routines reject
// graphs whose highest active id reaches the sentinel's range with
// ErrGraphTooLarge — a fatal sizing error, never a silent overflow. The
// id space is assumed packed near [0, max id]; inactive rows simply stay
// unreachable.
//
// Predecessor tables are produced under WithPaths: Pred[v][u] is the id
// preceding u on a shortest v→u path, NoPredecessor when u is v itself or
// unreachable from v.
package allpairs
