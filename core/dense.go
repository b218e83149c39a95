// Package core: Dense arc store.
//
// Arcs are one bit per (u, v) pair in a capacity×capacity matrix packed in
// 64-bit words, row-major; arc (u, v) is bit v of row u. A transposed
// matrix is kept in lockstep so InNeighbors scans a row of the transpose
// instead of a column of the matrix. Arc operations are O(1); neighbor
// snapshots scan one row of words, O(capacity/64).

package core

import "math/bits"

const wordBits = 64

// Dense implements Graph with a packed bit-matrix. It stores at most one
// copy of each arc: AddArc on a present arc is a no-op and Multiplicity is
// always 0 or 1.
type Dense struct {
	graphCore
	words int      // 64-bit words per row
	arcs  []uint64 // row-major matrix: arc (u, v) = bit v of row u
	rarcs []uint64 // transpose:        arc (u, v) = bit u of row v
}

// compile-time contract check
var _ Graph = (*Dense)(nil)

// NewDense constructs a Dense store with nverts initially inactive id
// slots. The expected-degree hint is meaningless for a bit-matrix and is
// ignored. Memory is capacity²/64 words, twice (matrix and transpose).
func NewDense(nverts int, opts ...Option) (*Dense, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gc, err := newGraphCore(nverts, o)
	if err != nil {
		return nil, err
	}
	words := (gc.capacity + wordBits - 1) / wordBits

	return &Dense{
		graphCore: gc,
		words:     words,
		arcs:      make([]uint64, gc.capacity*words),
		rarcs:     make([]uint64, gc.capacity*words),
	}, nil
}

// AddVertex activates id, or the lowest free id when id == AutoVertex,
// with the same doubling growth policy as the Sparse store.
func (g *Dense) AddVertex(id int) (int, error) {
	if id == AutoVertex {
		id = g.FirstFreeVertex()
		if id < 0 {
			id = g.capacity
			if err := g.Realloc(2 * g.capacity); err != nil {
				return 0, err
			}
		}
		g.activate(id)

		return id, nil
	}

	need, err := g.growPlan(id)
	if err != nil {
		return 0, err
	}
	if need > g.capacity {
		if err = g.Realloc(need); err != nil {
			return 0, err
		}
	}
	g.activate(id)

	return id, nil
}

// DeleteVertex clears row and column id in both matrices, adjusting
// degrees of every neighbor, then clears the liveness bit. A no-op when id
// is out of range or inactive. O(capacity/64) words per matrix.
func (g *Dense) DeleteVertex(id int) {
	if !g.HasVertex(id) {
		return
	}

	// Outgoing arcs: walk row id of the matrix, clear the mirrored bit in
	// the transpose.
	g.scanRow(g.arcs, id, func(v int) {
		g.clearBit(g.rarcs, v, id)
		g.numArcs--
		g.inDeg[v]--
	})
	// Incoming arcs: walk row id of the transpose. The self-loop bit, if
	// any, was already cleared from the transpose by the pass above.
	g.scanRow(g.rarcs, id, func(u int) {
		g.clearBit(g.arcs, u, id)
		g.numArcs--
		g.outDeg[u]--
	})
	clearRow(g.arcs, id, g.words)
	clearRow(g.rarcs, id, g.words)
	g.inDeg[id] = 0
	g.outDeg[id] = 0

	g.deactivate(id)
}

// Realloc resizes the id space, re-packing every surviving row into the
// new row width. Refuses to truncate live vertices. O(capacity²/64).
func (g *Dense) Realloc(newCapacity int) error {
	oldCapacity, oldWords := g.capacity, g.words
	if err := g.reallocCore(newCapacity); err != nil {
		return err
	}
	words := (newCapacity + wordBits - 1) / wordBits
	g.arcs = repackRows(g.arcs, oldCapacity, oldWords, newCapacity, words)
	g.rarcs = repackRows(g.rarcs, oldCapacity, oldWords, newCapacity, words)
	g.words = words

	return nil
}

// AddArc stores the arc (u, v). Idempotent: a present arc is left as is.
func (g *Dense) AddArc(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return err
	}
	if g.testBit(g.arcs, u, v) {
		return nil
	}
	g.setBit(g.arcs, u, v)
	g.setBit(g.rarcs, v, u)
	g.numArcs++
	g.outDeg[u]++
	g.inDeg[v]++

	return nil
}

// HasArc reports whether the arc (u, v) is stored. O(1).
func (g *Dense) HasArc(u, v int) (bool, error) {
	if err := g.checkPair(u, v); err != nil {
		return false, err
	}

	return g.testBit(g.arcs, u, v), nil
}

// Multiplicity reports 1 when the arc (u, v) is stored, else 0; the
// bit-matrix cannot hold parallel copies.
func (g *Dense) Multiplicity(u, v int) (int, error) {
	ok, err := g.HasArc(u, v)
	if err != nil {
		return 0, err
	}
	if ok {
		return 1, nil
	}

	return 0, nil
}

// DeleteAllArcs removes the arc (u, v). A no-op when absent. O(1).
func (g *Dense) DeleteAllArcs(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return err
	}
	if !g.testBit(g.arcs, u, v) {
		return nil
	}
	g.clearBit(g.arcs, u, v)
	g.clearBit(g.rarcs, v, u)
	g.numArcs--
	g.outDeg[u]--
	g.inDeg[v]--

	return nil
}

// OutNeighbors returns the heads of arcs leaving u, scanning row u of the
// matrix. O(capacity/64) words.
func (g *Dense) OutNeighbors(u int) ([]int, error) {
	if err := g.checkActive(u); err != nil {
		return nil, err
	}
	out := make([]int, 0, g.outDeg[u])
	g.scanRow(g.arcs, u, func(v int) { out = append(out, v) })

	return out, nil
}

// InNeighbors returns the tails of arcs entering u, scanning row u of the
// transpose. O(capacity/64) words.
func (g *Dense) InNeighbors(u int) ([]int, error) {
	if err := g.checkActive(u); err != nil {
		return nil, err
	}
	out := make([]int, 0, g.inDeg[u])
	g.scanRow(g.rarcs, u, func(v int) { out = append(out, v) })

	return out, nil
}

// testBit reports bit col of row in matrix m.
func (g *Dense) testBit(m []uint64, row, col int) bool {
	return m[row*g.words+col/wordBits]&(1<<(uint(col)%wordBits)) != 0
}

// setBit sets bit col of row in matrix m.
func (g *Dense) setBit(m []uint64, row, col int) {
	m[row*g.words+col/wordBits] |= 1 << (uint(col) % wordBits)
}

// clearBit clears bit col of row in matrix m.
func (g *Dense) clearBit(m []uint64, row, col int) {
	m[row*g.words+col/wordBits] &^= 1 << (uint(col) % wordBits)
}

// scanRow visits every set bit of the given row in increasing column
// order via trailing-zero counts, one word at a time.
func (g *Dense) scanRow(m []uint64, row int, visit func(col int)) {
	base := row * g.words
	for w := 0; w < g.words; w++ {
		word := m[base+w]
		for word != 0 {
			visit(w*wordBits + bits.TrailingZeros64(word))
			word &= word - 1 // clear the lowest set bit
		}
	}
}

// clearRow zeroes an entire row of a matrix.
func clearRow(m []uint64, row, words int) {
	base := row * words
	for w := 0; w < words; w++ {
		m[base+w] = 0
	}
}

// repackRows copies a row-major bit-matrix into a new geometry. Rows and
// columns beyond the old capacity start empty; the shrink guard in
// reallocCore guarantees no set bit is dropped when narrowing.
func repackRows(m []uint64, oldRows, oldWords, newRows, newWords int) []uint64 {
	next := make([]uint64, newRows*newWords)
	rows := oldRows
	if newRows < rows {
		rows = newRows
	}
	words := oldWords
	if newWords < words {
		words = newWords
	}
	for r := 0; r < rows; r++ {
		copy(next[r*newWords:r*newWords+words], m[r*oldWords:r*oldWords+words])
	}

	return next
}
