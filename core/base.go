// Package core: bookkeeping shared by both arc stores.
//
// graphCore owns everything the contract prescribes independently of arc
// representation: the liveness bitset, the cached vertex and arc counts,
// and the incrementally maintained degree arrays. Sparse and Dense embed
// it and add only their arc primitives.

package core

import (
	"fmt"

	"github.com/soniakeys/bits"
)

// graphCore carries the store-independent state of a graph.
// Invariant I1 (VertexCount == popcount of active) holds between any two
// exported calls on the embedding store.
type graphCore struct {
	capacity int       // size of the id space [0, capacity)
	active   bits.Bits // liveness bitset, one bit per id slot
	numVerts int       // cached popcount of active
	numArcs  int       // stored arcs, parallel copies counted
	inDeg    []int     // per-slot in-degree, valid while the slot is active
	outDeg   []int     // per-slot out-degree, valid while the slot is active
}

// newGraphCore validates construction parameters and allocates the shared
// state. Capacity is nverts plus slack, and must be positive.
func newGraphCore(nverts int, o Options) (graphCore, error) {
	if nverts < 0 {
		return graphCore{}, fmt.Errorf("core: nverts=%d: %w", nverts, ErrBadCapacity)
	}
	capacity := nverts + o.ExtraCapacity
	if capacity <= 0 {
		return graphCore{}, fmt.Errorf("core: capacity=%d: %w", capacity, ErrBadCapacity)
	}

	return graphCore{
		capacity: capacity,
		active:   bits.New(capacity),
		inDeg:    make([]int, capacity),
		outDeg:   make([]int, capacity),
	}, nil
}

// Capacity reports the size of the id space.
func (c *graphCore) Capacity() int { return c.capacity }

// VertexCount reports the number of active vertices.
func (c *graphCore) VertexCount() int { return c.numVerts }

// ArcCount reports the number of stored arcs, parallel copies counted.
func (c *graphCore) ArcCount() int { return c.numArcs }

// HasVertex reports whether id is in range and its liveness bit is set.
// Never fails; out-of-range ids are simply not vertices.
func (c *graphCore) HasVertex(id int) bool {
	return id >= 0 && id < c.capacity && c.active.Bit(id) == 1
}

// FirstFreeVertex returns the lowest unset liveness bit, or -1 when the id
// space is fully active. O(capacity/64) words.
func (c *graphCore) FirstFreeVertex() int {
	return c.active.ZeroFrom(0)
}

// Vertices returns all active ids in increasing order.
// Complexity: O(capacity/64 + numVerts).
func (c *graphCore) Vertices() []int {
	out := make([]int, 0, c.numVerts)
	c.active.IterateOnes(func(id int) bool {
		out = append(out, id)

		return true
	})

	return out
}

// OutDegree reports the number of arcs leaving u.
func (c *graphCore) OutDegree(u int) (int, error) {
	if err := c.checkActive(u); err != nil {
		return 0, err
	}

	return c.outDeg[u], nil
}

// InDegree reports the number of arcs entering u.
func (c *graphCore) InDegree(u int) (int, error) {
	if err := c.checkActive(u); err != nil {
		return 0, err
	}

	return c.inDeg[u], nil
}

// checkActive classifies id as a usage error when it cannot name an active
// vertex: ErrVertexOutOfRange outside [0, capacity), ErrVertexInactive for
// a clear liveness bit.
func (c *graphCore) checkActive(id int) error {
	if id < 0 || id >= c.capacity {
		return fmt.Errorf("core: id=%d capacity=%d: %w", id, c.capacity, ErrVertexOutOfRange)
	}
	if c.active.Bit(id) == 0 {
		return fmt.Errorf("core: id=%d: %w", id, ErrVertexInactive)
	}

	return nil
}

// checkPair validates both endpoints of an arc operation, tail first.
func (c *graphCore) checkPair(u, v int) error {
	if err := c.checkActive(u); err != nil {
		return err
	}

	return c.checkActive(v)
}

// activate sets the liveness bit for id and reports whether it was
// previously clear. The caller has already validated the range.
func (c *graphCore) activate(id int) bool {
	if c.active.Bit(id) == 1 {
		return false
	}
	c.active.SetBit(id, 1)
	c.numVerts++

	return true
}

// deactivate clears the liveness bit for id. The caller has already
// removed all incident arcs (invariant I3) and validated activity.
func (c *graphCore) deactivate(id int) {
	c.active.SetBit(id, 0)
	c.numVerts--
}

// maxActive returns the highest active id, or -1 on an empty graph.
func (c *graphCore) maxActive() int {
	max := -1
	c.active.IterateOnes(func(id int) bool {
		max = id

		return true
	})

	return max
}

// growPlan validates an explicit AddVertex id against the growth policy.
// It returns the capacity the store must reach before activating id:
// the current capacity when no growth is needed, double the capacity for
// ids in [capacity, 2*capacity), and ErrCapacityExceeded beyond that.
func (c *graphCore) growPlan(id int) (int, error) {
	if id < 0 {
		return 0, fmt.Errorf("core: id=%d: %w", id, ErrVertexOutOfRange)
	}
	if id < c.capacity {
		return c.capacity, nil
	}
	if id < 2*c.capacity {
		return 2 * c.capacity, nil
	}

	return 0, fmt.Errorf("core: id=%d capacity=%d: %w", id, c.capacity, ErrCapacityExceeded)
}

// reallocCore resizes the shared state to newCapacity. Refuses to shrink
// below the highest active id (ErrShrinkActive) so live vertices are never
// truncated. The embedding store resizes its arc arrays after this call
// succeeds.
func (c *graphCore) reallocCore(newCapacity int) error {
	if newCapacity <= 0 {
		return fmt.Errorf("core: realloc to %d: %w", newCapacity, ErrBadCapacity)
	}
	if top := c.maxActive(); top >= newCapacity {
		return fmt.Errorf("core: realloc to %d with active id %d: %w", newCapacity, top, ErrShrinkActive)
	}

	// Rebuild the bitset at the new size. Words beyond the new length are
	// guaranteed zero by the shrink check above, so a plain copy is exact.
	next := bits.New(newCapacity)
	copy(next.Bits, c.active.Bits)
	c.active = next

	c.inDeg = resizeInts(c.inDeg, newCapacity)
	c.outDeg = resizeInts(c.outDeg, newCapacity)
	c.capacity = newCapacity

	return nil
}

// resizeInts returns s resized to n entries, preserving the prefix and
// zero-filling any growth.
func resizeInts(s []int, n int) []int {
	if n <= len(s) {
		return s[:n]
	}
	next := make([]int, n)
	copy(next, s)

	return next
}
