// Package core: public storage contract and construction surface.
//
// The Graph interface is the only dependency of every algorithm package in
// this module. Concrete stores are selected by a factory at construction
// time, never through type hierarchies: callers that care about
// store-specific extras (e.g. Sparse multiplicities) use the concrete
// constructors, everyone else goes through New.

package core

// AutoVertex requests automatic id selection in AddVertex: the lowest
// currently unset bit of the liveness bitset is chosen.
const AutoVertex = -1

// Kind selects a concrete arc store at construction time.
type Kind int

const (
	// SparseKind stores arcs in per-vertex adjacency maps with
	// multiplicities. Preferred when the graph is large and sparse.
	SparseKind Kind = iota

	// DenseKind stores arcs as a packed capacity×capacity bit-matrix.
	// Preferred when the graph is small or dense, or when O(1) arc
	// queries dominate.
	DenseKind
)

// Graph is the storage contract for a directed graph on a dense integer
// vertex-id space. All ids are non-negative and below Capacity; only
// active ids (set liveness bits) may carry arcs.
//
// Implementations must keep three invariants after every call:
//
//	I1: VertexCount() equals the popcount of the liveness bitset.
//	I2: no arc (u, v) exists with u or v inactive.
//	I3: deleting a vertex removes all its incident arcs first.
type Graph interface {
	// Capacity reports the size of the id space [0, capacity).
	Capacity() int

	// VertexCount reports the number of active vertices.
	VertexCount() int

	// ArcCount reports the number of stored arcs, each parallel copy
	// counted.
	ArcCount() int

	// HasVertex reports whether id is in range and active. It has no side
	// effects and never fails.
	HasVertex(id int) bool

	// AddVertex activates a vertex and returns its id. Passing AutoVertex
	// selects the lowest free id, growing capacity by doubling when the
	// space is full. An explicit id in [capacity, 2*capacity) triggers the
	// same doubling; an id ≥ 2*capacity returns ErrCapacityExceeded.
	// Activating an already-active id is a no-op returning the same id.
	AddVertex(id int) (int, error)

	// DeleteVertex removes every arc incident to id (both directions),
	// then clears its liveness bit. A no-op when id is out of range or
	// inactive.
	DeleteVertex(id int)

	// Realloc resizes the id space to newCapacity. Shrinking below the
	// highest active id returns ErrShrinkActive and leaves the graph
	// unchanged.
	Realloc(newCapacity int) error

	// AddArc stores the arc (u, v). Both endpoints must be active.
	// Multiplicity semantics are store-specific: Sparse adds a parallel
	// copy, Dense is idempotent.
	AddArc(u, v int) error

	// HasArc reports whether at least one arc (u, v) is stored. Both
	// endpoints must be active.
	HasArc(u, v int) (bool, error)

	// Multiplicity reports the number of parallel copies of the arc
	// (u, v); zero when absent. Both endpoints must be active.
	Multiplicity(u, v int) (int, error)

	// DeleteAllArcs removes every parallel copy of the arc (u, v). Both
	// endpoints must be active.
	DeleteAllArcs(u, v int) error

	// OutNeighbors returns an unordered snapshot of the distinct heads of
	// arcs leaving u. u must be active.
	OutNeighbors(u int) ([]int, error)

	// InNeighbors returns an unordered snapshot of the distinct tails of
	// arcs entering u. u must be active.
	InNeighbors(u int) ([]int, error)

	// OutDegree reports the number of arcs leaving u, parallel copies
	// counted. u must be active.
	OutDegree(u int) (int, error)

	// InDegree reports the number of arcs entering u, parallel copies
	// counted. u must be active.
	InDegree(u int) (int, error)

	// Vertices returns all active ids in increasing order.
	Vertices() []int

	// FirstFreeVertex returns the lowest inactive id, or -1 when the id
	// space is fully active.
	FirstFreeVertex() int
}

// Options holds construction parameters shared by both stores.
//
// ExtraCapacity — id slots allocated beyond the requested vertex count,
// postponing the first reallocation. Default 0.
// ExpectedDegree — sizing hint for the per-vertex adjacency maps of the
// Sparse store; ignored by Dense. Default 0 (lazy allocation).
type Options struct {
	ExtraCapacity  int
	ExpectedDegree int
}

// Option is a functional option for graph construction.
type Option func(*Options)

// WithExtraCapacity reserves extra id slots beyond the requested vertex
// count. Negative values are ignored.
func WithExtraCapacity(extra int) Option {
	return func(o *Options) {
		if extra > 0 {
			o.ExtraCapacity = extra
		}
	}
}

// WithExpectedDegree hints the expected out-degree of vertices in a Sparse
// store, pre-sizing its adjacency maps. Negative values are ignored.
func WithExpectedDegree(deg int) Option {
	return func(o *Options) {
		if deg > 0 {
			o.ExpectedDegree = deg
		}
	}
}

// DefaultOptions returns the baseline construction parameters.
func DefaultOptions() Options {
	return Options{ExtraCapacity: 0, ExpectedDegree: 0}
}

// New constructs a graph with nverts initially inactive id slots using the
// store selected by kind. Capacity is nverts plus any WithExtraCapacity
// slack, and must end up positive (ErrBadCapacity otherwise).
// Complexity: O(capacity) for Sparse, O(capacity²/64) words for Dense.
func New(kind Kind, nverts int, opts ...Option) (Graph, error) {
	switch kind {
	case SparseKind:
		return NewSparse(nverts, opts...)
	case DenseKind:
		return NewDense(nverts, opts...)
	default:
		return nil, ErrUnknownKind
	}
}
