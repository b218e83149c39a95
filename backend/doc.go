// Package backend presents a graph keyed by arbitrary external vertex
// labels on top of the integer-id storage engine in core.
//
// A Backend owns one forward core.Graph, a reverse-arc mirror when the
// graph is directed (same vertices, every arc flipped — it makes
// in-neighbor queries O(in-degree) instead of a scan), and the label
// index: a bijection between labels and dense internal ids over the
// currently labeled subset of active vertices.
//
// Labels follow a hashable-equality contract: any comparable Go value may
// be a label. One fast path is resolved by a single tagged check at
// insertion time: a label that is itself a non-negative int inside the
// current capacity, with its id not claimed by a different label, becomes
// its own id and needs no index entry. This keeps graphs with small
// consecutive integer vertices free of indirection; it is an
// optimization, never a correctness requirement.
//
// Undirected graphs are emulated on the directed store by writing each
// edge as the arc pair (u,v)+(v,u); a self-loop is written once. The
// degree, arc and algorithm surfaces account for that convention — in the
// undirected sense a self-loop counts twice, once per end.
//
// Every algorithm of the traverse, path, allpairs and connect packages is
// re-exposed here at the label level; the Backend translates labels to
// ids on the way in and ids back to labels on the way out. Checks that
// only make sense on directed graphs (strong connectivity, acyclicity,
// strongly-connected components) fail on an undirected Backend with
// ErrUndirectedGraph before doing any work.
//
// Errors (sentinel):
//
//	ErrUnknownVertex   — label does not name a vertex where one is required.
//	ErrUnusableLabel   — label is not comparable (unhashable).
//	ErrDuplicateLabel  — a relabeling maps two vertices to one label.
//	ErrUndirectedGraph — directed-only operation on an undirected Backend.
//	ErrNilWeightFunc   — Dijkstra without a weight function.
package backend
