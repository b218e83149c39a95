// Package backend: label-level algorithm wrappers.
//
// Each wrapper translates labels to internal ids, delegates to the
// id-level routine of the traverse/path/allpairs/connect packages, and
// translates ids in the answer back to labels. Directed-only checks fail
// before any work is done.

package backend

import (
	"fmt"

	"github.com/ostrenko/cgraph/allpairs"
	"github.com/ostrenko/cgraph/connect"
	"github.com/ostrenko/cgraph/path"
)

// LabelWeightFunc reports the weight of the arc (u, v) at the label
// level. It is consulted once per stored arc during validation and again
// during relaxation.
type LabelWeightFunc func(u, v any) (int64, error)

// labels translates an id sequence in place-order to its label sequence.
func (b *Backend) labels(ids []int) []any {
	if ids == nil {
		return nil
	}
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = b.labelOf(id)
	}

	return out
}

// requireDirected guards the operations that are meaningless on an
// undirected Backend.
func (b *Backend) requireDirected(op string) error {
	if !b.directed {
		return fmt.Errorf("backend: %s: %w", op, ErrUndirectedGraph)
	}

	return nil
}

// ShortestPath returns a shortest (fewest-arcs) path from x to y as a
// label sequence, nil when y is unreachable from x. Both endpoints must
// name vertices. O(V + E) worst case, typically far less: the search
// runs from both ends and stops at first contact.
func (b *Backend) ShortestPath(x, y any) ([]any, error) {
	xid, err := b.require(x)
	if err != nil {
		return nil, err
	}
	yid, err := b.require(y)
	if err != nil {
		return nil, err
	}
	ids, err := path.Shortest(b.cg, xid, yid)
	if err != nil {
		return nil, err
	}

	return b.labels(ids), nil
}

// BidirectionalDijkstra returns a minimum-weight path from x to y and
// its total weight. The weight function must be non-nil and must report
// a non-negative weight for every stored arc. A nil path means no path
// exists. O((V + E) log V).
func (b *Backend) BidirectionalDijkstra(x, y any, weight LabelWeightFunc) ([]any, int64, error) {
	if weight == nil {
		return nil, 0, ErrNilWeightFunc
	}
	xid, err := b.require(x)
	if err != nil {
		return nil, 0, err
	}
	yid, err := b.require(y)
	if err != nil {
		return nil, 0, err
	}
	idWeight := func(u, v int) (int64, error) {
		return weight(b.labelOf(u), b.labelOf(v))
	}
	ids, total, err := path.BidirectionalDijkstra(b.cg, xid, yid, idWeight)
	if err != nil {
		return nil, 0, err
	}

	return b.labels(ids), total, nil
}

// FloydWarshall computes all-pairs shortest arc counts between every
// ordered pair of vertices. The distance map holds an entry only for
// reachable pairs; the predecessor map (nil unless wantPaths) names, for
// each reachable pair (v, u), the label preceding u on a shortest v→u
// path, with the diagonal omitted. O(n³) time and O(n²) memory in the id
// range; graphs whose id range outgrows the 16-bit distance table are
// rejected with allpairs.ErrGraphTooLarge.
func (b *Backend) FloydWarshall(wantPaths bool) (map[any]map[any]int, map[any]map[any]any, error) {
	var opts []allpairs.Option
	if wantPaths {
		opts = append(opts, allpairs.WithPaths())
	}
	res, err := allpairs.FloydWarshall(b.cg, opts...)
	if err != nil {
		return nil, nil, err
	}

	return b.tablesToMaps(res, wantPaths)
}

// AllPairsBFS computes the same tables as FloydWarshall by running one
// breadth-first scan per vertex. O(V·(V+E)) time, the better choice on
// sparse graphs.
func (b *Backend) AllPairsBFS(wantPaths bool) (map[any]map[any]int, map[any]map[any]any, error) {
	var opts []allpairs.Option
	if wantPaths {
		opts = append(opts, allpairs.WithPaths())
	}
	res, err := allpairs.BFSAllPairs(b.cg, opts...)
	if err != nil {
		return nil, nil, err
	}

	return b.tablesToMaps(res, wantPaths)
}

// tablesToMaps converts the id-indexed flat tables into label-keyed maps,
// dropping unreachable pairs and inactive rows.
func (b *Backend) tablesToMaps(res *allpairs.Result, wantPaths bool) (map[any]map[any]int, map[any]map[any]any, error) {
	verts := b.cg.Vertices()
	dist := make(map[any]map[any]int, len(verts))
	var pred map[any]map[any]any
	if wantPaths {
		pred = make(map[any]map[any]any, len(verts))
	}

	for _, v := range verts {
		vl := b.labelOf(v)
		row := make(map[any]int, len(verts))
		var prow map[any]any
		if wantPaths {
			prow = make(map[any]any, len(verts))
		}
		for _, u := range verts {
			d := res.Dist[v][u]
			if d == allpairs.Unreachable {
				continue
			}
			ul := b.labelOf(u)
			row[ul] = int(d)
			if wantPaths && u != v {
				prow[ul] = b.labelOf(int(res.Pred[v][u]))
			}
		}
		dist[vl] = row
		if wantPaths {
			pred[vl] = prow
		}
	}

	return dist, pred, nil
}

// IsConnected reports whether the graph is connected in the
// direction-blind sense. The empty graph is connected. O(V + E).
func (b *Backend) IsConnected() (bool, error) {
	return connect.IsConnected(b.cg)
}

// IsStronglyConnected reports whether every vertex reaches and is
// reached by every other, following arc directions. Directed backends
// only. O(V + E).
func (b *Backend) IsStronglyConnected() (bool, error) {
	if err := b.requireDirected("strong connectivity"); err != nil {
		return false, err
	}

	return connect.IsStronglyConnected(b.cg)
}

// StronglyConnectedComponentContaining returns the labels of the
// strongly-connected component containing the vertex named by label, in
// increasing internal-id order. Directed backends only. O(V + E).
func (b *Backend) StronglyConnectedComponentContaining(label any) ([]any, error) {
	if err := b.requireDirected("strongly-connected component"); err != nil {
		return nil, err
	}
	id, err := b.require(label)
	if err != nil {
		return nil, err
	}
	ids, err := connect.ComponentContaining(b.cg, id)
	if err != nil {
		return nil, err
	}

	return b.labels(ids), nil
}

// IsDirectedAcyclic reports whether the graph has no directed cycle,
// with a label-level certificate either way: a topological ordering of
// all vertices when acyclic, one cycle (without the closing repeat)
// when not. Directed backends only. O(V + E).
func (b *Backend) IsDirectedAcyclic() (bool, []any, error) {
	if err := b.requireDirected("acyclicity"); err != nil {
		return false, nil, err
	}
	ok, cert, err := connect.IsAcyclic(b.cg)
	if err != nil {
		return false, nil, err
	}

	return ok, b.labels(cert), nil
}
