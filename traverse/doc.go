// Package traverse provides a unified breadth-first / depth-first iterator
// over the integer-id vertices of a core.Graph.
//
// One worklist and one seen-bitset serve both disciplines: breadth-first
// removes from the front of the worklist (FIFO), depth-first removes from
// the end (LIFO). The iterator is lazy and one-shot: each Next call pops
// until it finds an unseen vertex, marks it seen, pushes its neighbors
// according to the direction flags, and yields it. Cycles are handled
// naturally by the seen-bitset; exhaustion is signaled by ok == false and
// is permanent.
//
// Direction flags select which arcs are walked: out-neighbors by default,
// in-neighbors under WithReverse, both under WithIgnoreDirection.
//
// Complexity: O(V + E) over a full drain; each vertex is yielded at most
// once and each arc is inspected at most once per direction walked.
//
// The traversal order is deterministic given a fixed adjacency enumeration
// order, which itself depends on the concrete store (insertion history for
// Sparse, increasing ids for Dense).
package traverse
