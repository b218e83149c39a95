// Package connect: reachability, connectivity, and strongly-connected
// components.

package connect

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/ostrenko/cgraph/core"
	"github.com/ostrenko/cgraph/traverse"
)

// sweep drains a traversal rooted at start into a bitset over the id
// space.
func sweep(g core.Graph, start int, opts ...traverse.Option) (bits.Bits, error) {
	it, err := traverse.New(g, start, opts...)
	if err != nil {
		return bits.Bits{}, fmt.Errorf("connect: %w", err)
	}
	seen := bits.New(g.Capacity())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		seen.SetBit(v, 1)
	}
	if err = it.Err(); err != nil {
		return bits.Bits{}, err
	}

	return seen, nil
}

// Reachable returns the set of vertices reachable from v — following arcs
// head-ward, or tail-ward when reverse is set — as a bitset over the id
// space. The set always contains v itself. O(V + E).
func Reachable(g core.Graph, v int, reverse bool) (bits.Bits, error) {
	if g == nil {
		return bits.Bits{}, ErrGraphNil
	}
	if !g.HasVertex(v) {
		return bits.Bits{}, fmt.Errorf("connect: id=%d: %w", v, ErrVertexNotFound)
	}

	if reverse {
		return sweep(g, v, traverse.WithReverse())
	}

	return sweep(g, v)
}

// IsConnected reports whether a single direction-blind sweep covers every
// active vertex. The empty graph is connected. O(V + E).
func IsConnected(g core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	verts := g.Vertices()
	if len(verts) == 0 {
		return true, nil
	}
	seen, err := sweep(g, verts[0], traverse.WithIgnoreDirection())
	if err != nil {
		return false, err
	}

	return seen.OnesCount() == g.VertexCount(), nil
}

// IsStronglyConnected reports whether every vertex reaches and is reached
// by every other: a forward and a reverse sweep from the lowest active
// vertex must each cover the graph. Graphs with fewer than two vertices
// are trivially strongly connected. O(V + E).
func IsStronglyConnected(g core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	verts := g.Vertices()
	if len(verts) < 2 {
		return true, nil
	}
	n := g.VertexCount()

	fwd, err := sweep(g, verts[0])
	if err != nil {
		return false, err
	}
	if fwd.OnesCount() != n {
		return false, nil
	}
	rev, err := sweep(g, verts[0], traverse.WithReverse())
	if err != nil {
		return false, err
	}

	return rev.OnesCount() == n, nil
}

// ComponentContaining returns the strongly-connected component of v in
// increasing id order: the intersection of the forward-reachable and
// reverse-reachable sets from v. O(V + E).
func ComponentContaining(g core.Graph, v int) ([]int, error) {
	fwd, err := Reachable(g, v, false)
	if err != nil {
		return nil, err
	}
	rev, err := Reachable(g, v, true)
	if err != nil {
		return nil, err
	}

	var both bits.Bits
	both.And(fwd, rev)

	comp := make([]int, 0, both.OnesCount())
	both.IterateOnes(func(id int) bool {
		comp = append(comp, id)

		return true
	})

	return comp, nil
}
