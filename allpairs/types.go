// SPDX-License-Identifier: MIT
// Package allpairs: sentinels, options, and the shared result shape.

package allpairs

import (
	"errors"
	"math"
)

// Unreachable is the reserved "infinity" distance: no path exists.
const Unreachable uint16 = math.MaxUint16

// NoPredecessor marks table entries with no preceding vertex: the source
// itself, unreachable targets, and rows of inactive ids.
const NoPredecessor int32 = -1

var (
	// ErrGraphNil indicates a nil core.Graph argument.
	ErrGraphNil = errors.New("allpairs: graph is nil")

	// ErrGraphTooLarge indicates the highest active vertex id reaches the
	// uint16 sentinel range, so the fixed-width distance table cannot
	// represent the graph. Fatal sizing error; choose a point-to-point
	// routine instead.
	ErrGraphTooLarge = errors.New("allpairs: vertex id range exceeds 16-bit distance table")
)

// Options configures which tables a routine produces.
//
// Paths — also fill the predecessor table (the distance table is always
// produced; the relaxation needs it anyway). Default false.
type Options struct {
	Paths bool
}

// Option is a functional option for the all-pairs routines.
type Option func(*Options)

// DefaultOptions returns the distances-only configuration.
func DefaultOptions() Options {
	return Options{Paths: false}
}

// WithPaths also fills the predecessor table for path reconstruction.
func WithPaths() Option {
	return func(o *Options) { o.Paths = true }
}

// Result holds the all-pairs tables, indexed [v][u] by vertex id over the
// range [0, N). Rows of inactive ids are entirely Unreachable /
// NoPredecessor.
type Result struct {
	// N is the table order: highest active id + 1 (0 on an empty graph).
	N int

	// Dist[v][u] is the arc count of a shortest v→u path, Unreachable
	// when none exists. Dist[v][v] == 0 for active v.
	Dist [][]uint16

	// Pred[v][u] is the id preceding u on a shortest v→u path,
	// NoPredecessor at the diagonal and for unreachable pairs. Nil unless
	// WithPaths was requested.
	Pred [][]int32
}

// PathBetween reconstructs a shortest v→u id path from the predecessor
// table, nil when u is unreachable from v or no predecessor table was
// produced. O(path length).
func (r *Result) PathBetween(v, u int) []int {
	if r.Pred == nil || v < 0 || u < 0 || v >= r.N || u >= r.N {
		return nil
	}
	if v == u {
		if r.Dist[v][v] != 0 { // inactive row: no trivial path either
			return nil
		}

		return []int{v}
	}
	if r.Pred[v][u] == NoPredecessor {
		return nil
	}

	// Walk predecessors u → v, then reverse.
	var rev []int
	for at := u; at != v; at = int(r.Pred[v][at]) {
		rev = append(rev, at)
	}
	rev = append(rev, v)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
