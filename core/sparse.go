// Package core: Sparse arc store.
//
// Each vertex owns two small adjacency maps — out-arcs and in-arcs — whose
// values are arc multiplicities, so parallel arcs cost one counter rather
// than one entry each. The in-arc map is the mirror of every out-arc map
// entry pointing at the vertex; keeping it makes InNeighbors O(in-degree)
// instead of a scan of the whole id space.

package core

// Sparse implements Graph with per-vertex adjacency maps.
//
// Arc operations run in O(1) expected time, neighbor snapshots in
// O(degree). Memory is proportional to the number of distinct arcs plus
// one map header per touched vertex.
type Sparse struct {
	graphCore
	hint int           // expected-degree sizing hint for new adjacency maps
	out  []map[int]int // out[u][v] = multiplicity of arc (u, v)
	in   []map[int]int // in[v][u]  = multiplicity of arc (u, v)
}

// compile-time contract check
var _ Graph = (*Sparse)(nil)

// NewSparse constructs a Sparse store with nverts initially inactive id
// slots. WithExpectedDegree pre-sizes adjacency maps; WithExtraCapacity
// reserves slack slots that postpone the first reallocation.
func NewSparse(nverts int, opts ...Option) (*Sparse, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gc, err := newGraphCore(nverts, o)
	if err != nil {
		return nil, err
	}

	return &Sparse{
		graphCore: gc,
		hint:      o.ExpectedDegree,
		out:       make([]map[int]int, gc.capacity),
		in:        make([]map[int]int, gc.capacity),
	}, nil
}

// AddVertex activates id, or the lowest free id when id == AutoVertex.
// Growth doubles capacity: automatically when the space is full in AUTO
// mode, and for explicit ids in [capacity, 2*capacity). Explicit ids at or
// beyond 2*capacity fail with ErrCapacityExceeded.
func (g *Sparse) AddVertex(id int) (int, error) {
	if id == AutoVertex {
		id = g.FirstFreeVertex()
		if id < 0 {
			// Id space fully active: double and take the first new slot.
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
	g.activate(id) // idempotent on already-active ids

	return id, nil
}

// DeleteVertex removes every arc incident to id, then clears its liveness
// bit. A no-op when id is out of range or inactive.
// Complexity: O(in-degree + out-degree).
func (g *Sparse) DeleteVertex(id int) {
	if !g.HasVertex(id) {
		return
	}

	// Strip outgoing arcs, unhooking each head's in-map.
	for v, m := range g.out[id] {
		delete(g.in[v], id)
		g.numArcs -= m
		g.inDeg[v] -= m
	}
	// Strip incoming arcs, unhooking each tail's out-map. A self-loop was
	// already removed from g.in[id] by the pass above.
	for u, m := range g.in[id] {
		delete(g.out[u], id)
		g.numArcs -= m
		g.outDeg[u] -= m
	}
	g.out[id] = nil
	g.in[id] = nil
	g.inDeg[id] = 0
	g.outDeg[id] = 0

	g.deactivate(id)
}

// Realloc resizes the id space, refusing to truncate live vertices.
func (g *Sparse) Realloc(newCapacity int) error {
	if err := g.reallocCore(newCapacity); err != nil {
		return err
	}
	g.out = resizeArcMaps(g.out, newCapacity)
	g.in = resizeArcMaps(g.in, newCapacity)

	return nil
}

// AddArc stores one more parallel copy of the arc (u, v).
func (g *Sparse) AddArc(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return err
	}
	if g.out[u] == nil {
		g.out[u] = make(map[int]int, g.hint)
	}
	if g.in[v] == nil {
		g.in[v] = make(map[int]int, g.hint)
	}
	g.out[u][v]++
	g.in[v][u]++
	g.numArcs++
	g.outDeg[u]++
	g.inDeg[v]++

	return nil
}

// HasArc reports whether at least one copy of (u, v) is stored.
func (g *Sparse) HasArc(u, v int) (bool, error) {
	if err := g.checkPair(u, v); err != nil {
		return false, err
	}
	_, ok := g.out[u][v]

	return ok, nil
}

// Multiplicity reports the number of parallel copies of (u, v).
func (g *Sparse) Multiplicity(u, v int) (int, error) {
	if err := g.checkPair(u, v); err != nil {
		return 0, err
	}

	return g.out[u][v], nil
}

// DeleteAllArcs removes every parallel copy of (u, v). A no-op when the
// arc is absent.
func (g *Sparse) DeleteAllArcs(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return err
	}
	m, ok := g.out[u][v]
	if !ok {
		return nil
	}
	delete(g.out[u], v)
	delete(g.in[v], u)
	g.numArcs -= m
	g.outDeg[u] -= m
	g.inDeg[v] -= m

	return nil
}

// OutNeighbors returns an unordered snapshot of the distinct heads of arcs
// leaving u. O(out-degree).
func (g *Sparse) OutNeighbors(u int) ([]int, error) {
	if err := g.checkActive(u); err != nil {
		return nil, err
	}

	return mapKeys(g.out[u]), nil
}

// InNeighbors returns an unordered snapshot of the distinct tails of arcs
// entering u. O(in-degree).
func (g *Sparse) InNeighbors(u int) ([]int, error) {
	if err := g.checkActive(u); err != nil {
		return nil, err
	}

	return mapKeys(g.in[u]), nil
}

// mapKeys snapshots the key set of an adjacency map.
func mapKeys(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

// resizeArcMaps returns s resized to n slots, preserving the prefix.
func resizeArcMaps(s []map[int]int, n int) []map[int]int {
	if n <= len(s) {
		return s[:n]
	}
	next := make([]map[int]int, n)
	copy(next, s)

	return next
}
