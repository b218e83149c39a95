// Package cgraph is a small in-process graph storage engine with a
// deliberately minimal, cache-friendly representation, plus the classic
// traversal and shortest-path algorithms layered on top of it.
//
// The engine stores a directed graph on a dense integer vertex-id space.
// Liveness of ids is tracked by a bitset, arcs live in one of two pluggable
// stores (adjacency maps or a packed bit-matrix), and arbitrary external
// vertex labels are virtualized onto the dense id space by a separate index.
//
// Packages:
//
//   - core     — the storage contract (core.Graph) and its two
//     implementations: Sparse (adjacency maps with multiplicities) and
//     Dense (capacity×capacity bit-matrix).
//   - backend  — the user-facing facade: arbitrary comparable labels mapped
//     to dense ids, an optional reverse-arc mirror for directed graphs, and
//     label-level wrappers for every algorithm below.
//   - traverse — a unified breadth-/depth-first one-shot iterator.
//   - path     — bidirectional unweighted shortest path and bidirectional
//     Dijkstra.
//   - allpairs — Floyd–Warshall and repeated-BFS all-pairs shortest paths
//     on fixed-width distance tables.
//   - connect  — connectivity, strong connectivity, strongly-connected
//     components and acyclicity certificates.
//
// All algorithm packages operate purely on the core.Graph contract and
// never assume a concrete backend. The execution model is single-threaded
// and synchronous: the engine provides no internal locking, and concurrent
// use of one graph instance requires external mutual exclusion.
package cgraph
