// Package path: sentinel errors and the weight contract.

package path

import "errors"

var (
	// ErrGraphNil indicates a nil core.Graph argument.
	ErrGraphNil = errors.New("path: graph is nil")

	// ErrVertexNotFound indicates an endpoint id that is out of range or
	// names an inactive vertex.
	ErrVertexNotFound = errors.New("path: endpoint vertex not active")

	// ErrNilWeightFunc indicates BidirectionalDijkstra was called without
	// a weight function.
	ErrNilWeightFunc = errors.New("path: weight function is nil")

	// ErrNegativeWeight indicates a negative arc weight. Dijkstra's
	// correctness invariant requires non-negative weights, so the search
	// is rejected before any relaxation.
	ErrNegativeWeight = errors.New("path: negative arc weight")
)

// WeightFunc reports the weight of the arc (u, v). It is consulted once
// per arc during the upfront negative-weight scan and once per relaxation.
// Weights only need the usual numeric contract: addable, comparable, with
// zero meaning "free".
type WeightFunc func(u, v int) (int64, error)
