// Package core defines the storage contract for a directed graph on a dense
// integer vertex-id space, together with its two concrete arc stores.
//
// A graph owns a contiguous id space [0, capacity). Only a subset of ids is
// active at any time; that subset is exactly the set bits of a liveness
// bitset, and the cached vertex count always equals its popcount. Extra
// capacity beyond the ids ever used allows O(1) amortized vertex insertion
// through a first-free-bit search. In- and out-degrees are maintained
// incrementally, one slot per allocated id.
//
// Two implementations satisfy the contract:
//
//   - Sparse — per-vertex adjacency maps of (neighbor, multiplicity)
//     entries, sized near an expected-degree hint. Arc operations run in
//     O(1) expected time, neighbor snapshots in O(degree). Parallel arcs
//     are supported via multiplicities. Preferred for large sparse graphs.
//   - Dense — one bit per (u, v) pair in a capacity×capacity matrix packed
//     in machine words, plus its transpose. Arc operations are O(1) bit
//     twiddling, neighbor snapshots scan a bounded row of words (a
//     speed/memory trade-off, not a contract violation). No multiplicity.
//
// Both implementations behave identically from the caller's point of view;
// the traversal and path packages in this module depend only on the Graph
// interface and never on a concrete store.
//
// Failure model:
//
//	ErrVertexOutOfRange — id negative or ≥ capacity where a valid id is required.
//	ErrVertexInactive   — operation requires an active vertex.
//	ErrCapacityExceeded — requested id ≥ 2×capacity; fatal sizing misuse.
//	ErrShrinkActive     — Realloc below the highest active id; refused, no-op.
//	ErrBadCapacity      — non-positive capacity requested.
//
// Usage errors never corrupt state: a failed operation leaves the graph
// exactly as it was. There is no internal locking; see the module doc for
// the single-threaded execution model.
package core
