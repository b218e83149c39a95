// Package connect answers connectivity questions over the integer vertex
// ids of a core.Graph.
//
// Everything here is built on depth-/breadth-first exploration through the
// traverse iterator and the storage contract's in-neighbor queries; no
// routine assumes a concrete arc store.
//
//   - Reachable — the forward- or reverse-reachable vertex set from one
//     vertex, as a bitset over the id space.
//   - IsConnected — one direction-blind sweep covers every active vertex.
//     The empty graph counts as connected.
//   - IsStronglyConnected — a forward and a reverse sweep from one vertex
//     must each cover the graph.
//   - ComponentContaining — the strongly-connected component of a vertex
//     is the intersection of its forward- and reverse-reachable sets.
//   - IsAcyclic — iterative depth-first three-color scan (unvisited /
//     on-stack / finished). A back edge to an on-stack vertex proves a
//     cycle, reconstructed through recorded parent pointers; otherwise
//     the reverse finish order is a topological ordering.
//
// Directedness is a property of the caller's facade, not of the storage
// layer, so the directed-only precondition checks (strong connectivity,
// acyclicity on an undirected graph) live in the backend package.
package connect
