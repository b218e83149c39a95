// SPDX-License-Identifier: MIT
// Package allpairs: repeated breadth-first sweeps.

package allpairs

import (
	"fmt"

	"github.com/ostrenko/cgraph/core"
)

// BFSAllPairs computes all-pairs shortest arc counts by running one
// breadth-first sweep per active source vertex. It fills tables of the
// same shape as FloydWarshall, so the two are interchangeable; prefer
// this routine when the graph is sparse.
//
// Complexity: O(V·(V+E)) time, O(n²) memory for the tables plus O(n) per
// sweep. The same uint16 sizing limit applies (ErrGraphTooLarge).
func BFSAllPairs(g core.Graph, opts ...Option) (*Result, error) {
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

	// One queue reused across sweeps; per-sweep state lives in the table
	// row itself (Unreachable doubles as the "not visited" marker).
	queue := make([]int, 0, n)
	for _, s := range g.Vertices() {
		base := s * n
		dist[base+s] = 0
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			nbrs, nerr := g.OutNeighbors(v)
			if nerr != nil {
				return nil, fmt.Errorf("allpairs: out-neighbors of %d: %w", v, nerr)
			}
			for _, u := range nbrs {
				if dist[base+u] != Unreachable {
					continue
				}
				dist[base+u] = dist[base+v] + 1
				if pred != nil {
					pred[base+u] = int32(v)
				}
				queue = append(queue, u)
			}
		}
	}

	return res, nil
}
