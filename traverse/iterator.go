// Package traverse: the worklist iterator.

package traverse

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/ostrenko/cgraph/core"
)

// Iterator is a lazy, one-shot traversal over the vertices reachable from
// a start id. It is not restartable: once Next reports ok == false the
// sequence is exhausted for good.
//
// The graph must not be mutated while the iterator is live; the engine's
// execution model is single-threaded and the iterator snapshots neighbor
// lists only as it reaches each vertex.
type Iterator struct {
	g        core.Graph
	worklist []int
	seen     bits.Bits
	opts     Options
	err      error
}

// New builds an iterator rooted at start. The start id must name an
// active vertex (ErrStartVertexNotFound otherwise).
func New(g core.Graph, start int, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("traverse: id=%d: %w", start, ErrStartVertexNotFound)
	}

	return &Iterator{
		g:        g,
		worklist: []int{start},
		seen:     bits.New(g.Capacity()),
		opts:     o,
	}, nil
}

// Next yields the next vertex in traversal order. It pops from the
// worklist per the configured Order, skips vertices already seen, marks
// the survivor seen, pushes its neighbors, and returns it. ok == false
// signals permanent exhaustion.
func (it *Iterator) Next() (int, bool) {
	for len(it.worklist) > 0 {
		var v int
		if it.opts.Order == DepthFirst {
			// LIFO: remove from the end.
			v = it.worklist[len(it.worklist)-1]
			it.worklist = it.worklist[:len(it.worklist)-1]
		} else {
			// FIFO: remove from the front.
			v = it.worklist[0]
			it.worklist = it.worklist[1:]
		}
		if it.seen.Bit(v) == 1 {
			continue
		}
		it.seen.SetBit(v, 1)
		it.push(v)

		return v, true
	}

	return 0, false
}

// Err reports a neighbor-fetch failure observed during iteration. Under
// the single-threaded execution model every pushed id stays active, so a
// non-nil result indicates the graph was mutated mid-traversal.
func (it *Iterator) Err() error { return it.err }

// push appends the neighbors of v selected by the direction flags.
func (it *Iterator) push(v int) {
	if it.opts.IgnoreDirection || !it.opts.Reverse {
		nbrs, err := it.g.OutNeighbors(v)
		if err != nil {
			it.err = fmt.Errorf("traverse: out-neighbors of %d: %w", v, err)

			return
		}
		it.worklist = append(it.worklist, nbrs...)
	}
	if it.opts.IgnoreDirection || it.opts.Reverse {
		nbrs, err := it.g.InNeighbors(v)
		if err != nil {
			it.err = fmt.Errorf("traverse: in-neighbors of %d: %w", v, err)

			return
		}
		it.worklist = append(it.worklist, nbrs...)
	}
}

// Drain exhausts the iterator, returning the remaining vertices in
// traversal order. A convenience for callers that want the whole
// reachable set at once.
func (it *Iterator) Drain() []int {
	out := make([]int, 0, it.g.VertexCount())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	return out
}
