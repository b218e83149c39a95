// Package traverse: sentinel errors, order selection, and options.

package traverse

import "errors"

var (
	// ErrGraphNil indicates a nil core.Graph was passed to New.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartVertexNotFound indicates the start id is out of range or
	// names an inactive vertex.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not active")
)

// Order selects the worklist discipline of the iterator.
type Order int

const (
	// BreadthFirst removes from the front of the worklist (FIFO).
	BreadthFirst Order = iota

	// DepthFirst removes from the end of the worklist (LIFO).
	DepthFirst
)

// Options configures a traversal.
//
// Order           — worklist discipline; BreadthFirst by default.
// Reverse         — walk in-neighbors instead of out-neighbors.
// IgnoreDirection — walk both in- and out-neighbors; overrides Reverse.
type Options struct {
	Order           Order
	Reverse         bool
	IgnoreDirection bool
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a forward breadth-first configuration.
func DefaultOptions() Options {
	return Options{Order: BreadthFirst}
}

// WithOrder selects the worklist discipline.
func WithOrder(o Order) Option {
	return func(opts *Options) { opts.Order = o }
}

// WithReverse walks arcs tail-ward: neighbors of v are the tails of arcs
// entering v.
func WithReverse() Option {
	return func(opts *Options) { opts.Reverse = true }
}

// WithIgnoreDirection walks arcs both ways, treating the graph as
// undirected. Takes precedence over WithReverse.
func WithIgnoreDirection() Option {
	return func(opts *Options) { opts.IgnoreDirection = true }
}
