// Package backend: sentinel errors, options, and construction.

package backend

import (
	"errors"

	"github.com/ostrenko/cgraph/core"
)

var (
	// ErrUnknownVertex indicates a label that does not name a vertex in
	// an operation that requires one.
	ErrUnknownVertex = errors.New("backend: unknown vertex label")

	// ErrUnusableLabel indicates a label value that is not comparable and
	// therefore cannot satisfy the hashable-equality contract.
	ErrUnusableLabel = errors.New("backend: label is not hashable")

	// ErrDuplicateLabel indicates a relabeling that would assign the same
	// label to two distinct vertices.
	ErrDuplicateLabel = errors.New("backend: duplicate label in relabeling")

	// ErrUndirectedGraph indicates a directed-only operation (strong
	// connectivity, components, acyclicity) on an undirected Backend.
	ErrUndirectedGraph = errors.New("backend: operation requires a directed graph")

	// ErrNilWeightFunc indicates BidirectionalDijkstra was called without
	// a weight function.
	ErrNilWeightFunc = errors.New("backend: weight function is nil")
)

// Options configures a Backend at construction.
//
// Directed       — arcs are one-way; a reverse mirror store is kept for
//                  fast in-neighbor queries. Default false (undirected).
// Kind           — concrete arc store, core.SparseKind by default.
// ExtraCapacity  — id slots reserved beyond the requested vertex count.
// ExpectedDegree — sizing hint forwarded to the Sparse store.
type Options struct {
	Directed       bool
	Kind           core.Kind
	ExtraCapacity  int
	ExpectedDegree int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns an undirected Sparse configuration with no
// capacity slack.
func DefaultOptions() Options {
	return Options{Directed: false, Kind: core.SparseKind}
}

// WithDirected makes arcs one-way and provisions the reverse mirror.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithDense selects the packed bit-matrix store.
func WithDense() Option {
	return func(o *Options) { o.Kind = core.DenseKind }
}

// WithExtraCapacity reserves extra id slots beyond the requested vertex
// count, postponing the first reallocation.
func WithExtraCapacity(extra int) Option {
	return func(o *Options) { o.ExtraCapacity = extra }
}

// WithExpectedDegree hints the expected vertex degree for the Sparse
// store's adjacency maps.
func WithExpectedDegree(deg int) Option {
	return func(o *Options) { o.ExpectedDegree = deg }
}

// Backend is a label-keyed graph facade over the storage engine. It
// exclusively owns its stores and index; all access goes through its
// methods. Single-threaded like everything else in this module.
type Backend struct {
	directed bool
	cg       core.Graph // forward store
	rev      core.Graph // reverse-arc mirror, nil unless directed

	// Label index: a bijection over the labeled subset of active ids.
	// Vertices whose label is their own id carry no entry.
	vertexInt   map[any]int
	vertexLabel map[int]any
}

// New constructs a Backend with nverts initially inactive id slots.
func New(nverts int, opts ...Option) (*Backend, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	coreOpts := []core.Option{
		core.WithExtraCapacity(o.ExtraCapacity),
		core.WithExpectedDegree(o.ExpectedDegree),
	}
	cg, err := core.New(o.Kind, nverts, coreOpts...)
	if err != nil {
		return nil, err
	}
	var rev core.Graph
	if o.Directed {
		if rev, err = core.New(o.Kind, nverts, coreOpts...); err != nil {
			return nil, err
		}
	}

	return &Backend{
		directed:    o.Directed,
		cg:          cg,
		rev:         rev,
		vertexInt:   make(map[any]int),
		vertexLabel: make(map[int]any),
	}, nil
}

// Directed reports whether arcs are one-way.
func (b *Backend) Directed() bool { return b.directed }

// Order reports the number of vertices.
func (b *Backend) Order() int { return b.cg.VertexCount() }

// ArcCount reports the number of stored arcs, parallel copies counted.
// Undirected edges between distinct endpoints are stored as two arcs.
func (b *Backend) ArcCount() int { return b.cg.ArcCount() }

// Capacity reports the size of the underlying id space.
func (b *Backend) Capacity() int { return b.cg.Capacity() }

// Store exposes the forward storage contract, for callers that want to
// run id-level algorithms directly.
func (b *Backend) Store() core.Graph { return b.cg }
