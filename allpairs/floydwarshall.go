// SPDX-License-Identifier: MIT
// Package allpairs: dense Floyd–Warshall on flat row-major tables.
//
// The tables are flat []uint16 / []int32 buffers rather than slices of
// slices in the hot loop; row bases are computed once per row and no
// allocation happens inside the triple nest.

package allpairs

import (
	"fmt"

	"github.com/ostrenko/cgraph/core"
)

// FloydWarshall computes all-pairs shortest arc counts by relaxing every
// pair through every intermediate vertex.
//
// The relaxation is dist[v][u] = min(dist[v][u], dist[v][w] + dist[w][u])
// with w in the OUTERMOST loop, v middle, u inner — w must be outermost
// for the recurrence to be correct.
//
// Complexity: O(n³) time, O(n²) memory, n = highest active id + 1.
// Graphs whose highest active id reaches the uint16 sentinel are rejected
// with ErrGraphTooLarge.
func FloydWarshall(g core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n, err := tableOrder(g)
	if err != nil {
		return nil, err
	}
	res, dist, pred := newTables(n, o.Paths)
	if n == 0 {
		return res, nil
	}
	if err = seedDirectArcs(g, n, dist, pred); err != nil {
		return nil, err
	}

	// Triple nest, w outermost. Distances are summed in int to sidestep
	// uint16 wraparound; real distances stay below the sentinel because
	// a shortest path has at most n-1 < Unreachable arcs.
	var (
		w, v, u      int
		baseW, baseV int
		dvw, dwu     uint16
		cand         int
	)
	for w = 0; w < n; w++ {
		baseW = w * n
		for v = 0; v < n; v++ {
			baseV = v * n
			dvw = dist[baseV+w]
			if dvw == Unreachable { // v cannot reach w: nothing improves via w
				continue
			}
			for u = 0; u < n; u++ {
				dwu = dist[baseW+u]
				if dwu == Unreachable { // w cannot reach u
					continue
				}
				cand = int(dvw) + int(dwu)
				if cand < int(dist[baseV+u]) {
					dist[baseV+u] = uint16(cand)
					if pred != nil {
						// The arc into u on the improved path is the one
						// ending the w→u leg.
						pred[baseV+u] = pred[baseW+u]
					}
				}
			}
		}
	}

	return res, nil
}

// tableOrder validates g and computes the table order: highest active id
// plus one. Rejects id ranges the uint16 sentinel cannot index.
func tableOrder(g core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	verts := g.Vertices()
	if len(verts) == 0 {
		return 0, nil
	}
	top := verts[len(verts)-1] // Vertices is sorted ascending
	if top >= int(Unreachable) {
		return 0, fmt.Errorf("allpairs: max id %d: %w", top, ErrGraphTooLarge)
	}

	return top + 1, nil
}

// newTables allocates the result and its flat backing buffers, fully
// initialized to Unreachable / NoPredecessor.
func newTables(n int, paths bool) (*Result, []uint16, []int32) {
	res := &Result{N: n}
	if n == 0 {
		return res, nil, nil
	}

	dist := make([]uint16, n*n)
	for i := range dist {
		dist[i] = Unreachable
	}
	res.Dist = rowsOf16(dist, n)

	var pred []int32
	if paths {
		pred = make([]int32, n*n)
		for i := range pred {
			pred[i] = NoPredecessor
		}
		res.Pred = rowsOf32(pred, n)
	}

	return res, dist, pred
}

// seedDirectArcs writes the zero diagonal for active vertices and the
// unit distance of every stored arc.
func seedDirectArcs(g core.Graph, n int, dist []uint16, pred []int32) error {
	for _, v := range g.Vertices() {
		base := v * n
		dist[base+v] = 0
		nbrs, err := g.OutNeighbors(v)
		if err != nil {
			return fmt.Errorf("allpairs: out-neighbors of %d: %w", v, err)
		}
		for _, u := range nbrs {
			if u == v {
				continue // a self-loop never shortens anything
			}
			dist[base+u] = 1
			if pred != nil {
				pred[base+u] = int32(v)
			}
		}
	}

	return nil
}

// rowsOf16 carves a flat buffer into n row views sharing the backing
// array, so callers index Dist[v][u] while the hot loop stays flat.
func rowsOf16(flat []uint16, n int) [][]uint16 {
	rows := make([][]uint16, n)
	for i := 0; i < n; i++ {
		rows[i] = flat[i*n : (i+1)*n]
	}

	return rows
}

// rowsOf32 is rowsOf16 for the predecessor buffer.
func rowsOf32(flat []int32, n int) [][]int32 {
	rows := make([][]int32, n)
	for i := 0; i < n; i++ {
		rows[i] = flat[i*n : (i+1)*n]
	}

	return rows
}
